package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/alternativafozthiago/financas/config"
	"github.com/alternativafozthiago/financas/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newContactRepository,
		newTransactionRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newContactRepository(db *gorm.DB) *infrastructure.ContactRepository {
	return &infrastructure.ContactRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}
