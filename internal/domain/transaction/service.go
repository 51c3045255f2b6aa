package transaction

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

	cache *session.Collection[*Transaction]
}

func NewService(repo Repository, sessions *session.Manager) *Service {
	return &Service{
		Repository: repo,
		Sessions:   sessions,
		cache: session.NewCollection(sessions, func(t *Transaction) string {
			return t.Id.String()
		}),
	}
}

// List devolve todas as transações da identidade, vencimento mais distante
// primeiro, cada uma com o contato desnormalizado. Serve do cache da sessão
// quando carregado.
func (s *Service) List(ctx context.Context, owner string) ([]*Transaction, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	if snapshot, ok := s.cache.Snapshot(owner); ok {
		return snapshot, nil
	}

	gen := s.Sessions.Generation(owner)
	transactions, err := s.Repository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, appErrors.NewFetchError("transações", err)
	}

	s.cache.Prime(owner, gen, transactions)
	return transactions, nil
}

// Create persiste uma nova transação da identidade e devolve o registro
// gravado já com o contato desnormalizado. A invariante de pagamento é
// aplicada aqui: paid_date presente se e somente se is_paid.
func (s *Service) Create(ctx context.Context, owner string, draft Draft) (*Transaction, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	entity := &Transaction{
		Id:          pkg.GenerateULIDObject(),
		UserId:      owner,
		CreatedAt:   pkg.SetTimestamps(),
		Description: draft.Description,
		Amount:      draft.Amount,
		Date:        draft.Date,
		DueDate:     draft.DueDate,
		Type:        draft.Type,
		IsPaid:      draft.IsPaid,
		PaidDate:    normalizePaidDate(draft.IsPaid, draft.PaidDate),
		IsRecurring: draft.IsRecurring,
		ContactId:   draft.ContactId,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewStoreRejection(err)
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, entity.Id, owner)
	if err != nil {
		// A escrita já aconteceu; devolve o registro local sem o contato
		// desnormalizado em vez de falhar a criação.
		stored = entity
	}

	s.cache.Prepend(owner, stored)
	return stored, nil
}

// Update substitui os campos editáveis da transação, restrito a id e dono.
func (s *Service) Update(ctx context.Context, owner string, transactionID ulid.ULID, draft Draft) (*Transaction, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	entity := &Transaction{
		Id:          transactionID,
		UserId:      owner,
		Description: draft.Description,
		Amount:      draft.Amount,
		Date:        draft.Date,
		DueDate:     draft.DueDate,
		Type:        draft.Type,
		IsPaid:      draft.IsPaid,
		PaidDate:    normalizePaidDate(draft.IsPaid, draft.PaidDate),
		IsRecurring: draft.IsRecurring,
		ContactId:   draft.ContactId,
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewStoreRejection(err)
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, transactionID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewStoreRejection(err)
	}

	s.cache.Replace(owner, stored)
	return stored, nil
}

// Get devolve a transação com o contato desnormalizado.
func (s *Service) Get(ctx context.Context, owner string, transactionID ulid.ULID) (*Transaction, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, transactionID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewFetchError("transações", err)
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, owner string, transactionID ulid.ULID) error {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return appErrors.ErrUnauthorized
	}

	if err := s.Repository.Delete(ctx, transactionID, owner); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrTransactionNotFound
		}
		return appErrors.NewStoreRejection(err)
	}

	s.cache.Remove(owner, transactionID.String())
	return nil
}

// TogglePaid marca ou desmarca a transação como paga. Marcar registra a
// data de pagamento de hoje; desmarcar limpa a data, na mesma escrita.
func (s *Service) TogglePaid(ctx context.Context, owner string, transactionID ulid.ULID, isPaid bool) (*Transaction, error) {
	if s.Sessions.Resolve(owner) != session.StateAuthenticated {
		return nil, appErrors.ErrUnauthorized
	}

	stored, err := s.Repository.GetByIDAndOwner(ctx, transactionID, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewStoreRejection(err)
	}

	draft := Draft{
		Description: stored.Description,
		Amount:      stored.Amount,
		Date:        stored.Date,
		DueDate:     stored.DueDate,
		Type:        stored.Type,
		IsPaid:      isPaid,
		IsRecurring: stored.IsRecurring,
		ContactId:   stored.ContactId,
	}
	if isPaid {
		today := pkg.Today()
		draft.PaidDate = &today
	}

	return s.Update(ctx, owner, transactionID, draft)
}

// normalizePaidDate aplica a invariante: data de pagamento presente se e
// somente se a transação está paga. Pago sem data recebe hoje.
func normalizePaidDate(isPaid bool, paidDate *pkg.Date) *pkg.Date {
	if !isPaid {
		return nil
	}
	if paidDate == nil || paidDate.IsZero() {
		today := pkg.Today()
		return &today
	}
	copied := *paidDate
	return &copied
}
