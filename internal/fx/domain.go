package fx

import (
	"go.uber.org/fx"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/domain/dashboard"
	"github.com/alternativafozthiago/financas/internal/domain/report"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/infrastructure"
	"github.com/alternativafozthiago/financas/internal/session"
)

// DomainModule fornece o gerenciador de sessões e os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		session.NewManager,

		newContactService,
		newTransactionService,
		newDashboardService,
		newReportService,
	),
)

func newContactService(repo *infrastructure.ContactRepository, sessions *session.Manager) *contact.Service {
	return contact.NewService(repo, sessions)
}

func newTransactionService(repo *infrastructure.TransactionRepository, sessions *session.Manager) *transaction.Service {
	return transaction.NewService(repo, sessions)
}

func newDashboardService(
	transactionSvc *transaction.Service,
	contactSvc *contact.Service,
) *dashboard.Service {
	return &dashboard.Service{
		Transactions: transactionSvc,
		Contacts:     contactSvc,
	}
}

func newReportService(transactionSvc *transaction.Service) *report.Service {
	return &report.Service{
		Transactions: transactionSvc,
	}
}
