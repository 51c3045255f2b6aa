package contact

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// ListByOwner devolve os contatos da identidade, mais recentes primeiro.
	ListByOwner(ctx context.Context, owner string) ([]*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	// Update substitui os campos editáveis do registro com o mesmo id e
	// dono. Devolve gorm.ErrRecordNotFound quando nenhuma linha casa.
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, contactID ulid.ULID, owner string) error
	GetByIDAndOwner(ctx context.Context, contactID ulid.ULID, owner string) (*Contact, error)
}
