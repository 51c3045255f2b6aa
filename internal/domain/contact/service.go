package contact

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
	"github.com/alternativafozthiago/financas/internal/session"
)

type Service struct {
	Repository Repository
	Sessions   *session.Manager

	cache *session.Collection[*Contact]
}

func NewService(repo Repository, sessions *session.Manager) *Service {
	return &Service{
		Repository: repo,
		Sessions:   sessions,
		cache: session.NewCollection(sessions, func(c *Contact) string {
			return c.Id.String()
		}),
	}
}

// List devolve todos os contatos da identidade, mais recentes primeiro.
// Serve do cache da sessão quando carregado; caso contrário busca do banco
// e instala o resultado, descartando respostas de geração antiga.
func (s *Service) List(ctx context.Context, owner string) ([]*Contact, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	if snapshot, ok := s.cache.Snapshot(owner); ok {
		return snapshot, nil
	}

	gen := s.Sessions.Generation(owner)
	contacts, err := s.Repository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, appErrors.NewFetchError("contatos", err)
	}

	s.cache.Prime(owner, gen, contacts)
	return contacts, nil
}

// Create persiste um novo contato da identidade. O dono é injetado aqui,
// nunca vem do chamador externo. Sucesso prefixa o registro na coleção da
// sessão sem rebuscar a lista.
func (s *Service) Create(ctx context.Context, owner string, draft Draft) (*Contact, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	entity := &Contact{
		Id:              pkg.GenerateULIDObject(),
		UserId:          owner,
		CreatedAt:       pkg.SetTimestamps(),
		Name:            draft.Name,
		Type:            draft.Type,
		Email:           draft.Email,
		RecurringCharge: draft.NormalizedRecurringCharge(),
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewStoreRejection(err)
	}

	s.cache.Prepend(owner, entity)
	return entity, nil
}

// Update substitui os campos editáveis do contato, restrito a id e dono.
// Id de outro dono não casa nenhuma linha e devolve contato não encontrado;
// a coleção da sessão permanece intacta nesse caso.
func (s *Service) Update(ctx context.Context, owner string, contactID ulid.ULID, draft Draft) (*Contact, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	entity := &Contact{
		Id:              contactID,
		UserId:          owner,
		Name:            draft.Name,
		Type:            draft.Type,
		Email:           draft.Email,
		RecurringCharge: draft.NormalizedRecurringCharge(),
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrContactNotFound
		}
		return nil, appErrors.NewStoreRejection(err)
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, contactID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrContactNotFound
		}
		return nil, appErrors.NewStoreRejection(err)
	}

	s.cache.Replace(owner, stored)
	return stored, nil
}

func (s *Service) Get(ctx context.Context, owner string, contactID ulid.ULID) (*Contact, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, contactID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrContactNotFound
		}
		return nil, appErrors.NewFetchError("contatos", err)
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, owner string, contactID ulid.ULID) error {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return appErrors.ErrUnauthorized
	}

	if err := s.Repository.Delete(ctx, contactID, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrContactNotFound
		}
		return appErrors.NewStoreRejection(err)
	}

	s.cache.Remove(owner, contactID.String())
	return nil
}

// FilterByType aplica o filtro da listagem de contatos. Tipo vazio ou
// inválido devolve a coleção inteira.
func FilterByType(contacts []*Contact, contactType Types) []*Contact {
	if !contactType.IsValid() {
		return contacts
	}
	filtered := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Type == contactType {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
