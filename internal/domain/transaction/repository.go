package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// ListByOwner devolve as transações da identidade, vencimento mais
	// distante primeiro, cada linha com o contato desnormalizado quando a
	// referência existe. Referência pendente ou ausente resulta em contato
	// nulo na linha, nunca em falha da listagem.
	ListByOwner(ctx context.Context, owner string) ([]*Transaction, error)
	Create(ctx context.Context, transaction *Transaction) error
	// Update substitui os campos editáveis do registro com o mesmo id e
	// dono. Devolve gorm.ErrRecordNotFound quando nenhuma linha casa.
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID, owner string) error
	// GetByIDAndOwner devolve a transação com o contato desnormalizado.
	GetByIDAndOwner(ctx context.Context, transactionID ulid.ULID, owner string) (*Transaction, error)
}
