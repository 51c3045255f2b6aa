package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/session"
)

type fakeContactRepository struct {
	listFn   func(ctx context.Context, owner string) ([]*contact.Contact, error)
	createFn func(ctx context.Context, c *contact.Contact) error
	updateFn func(ctx context.Context, c *contact.Contact) error
	deleteFn func(ctx context.Context, id ulid.ULID, owner string) error
	getFn    func(ctx context.Context, id ulid.ULID, owner string) (*contact.Contact, error)
}

func (f *fakeContactRepository) ListByOwner(ctx context.Context, owner string) ([]*contact.Contact, error) {
	if f.listFn != nil {
		return f.listFn(ctx, owner)
	}
	return nil, nil
}

func (f *fakeContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeContactRepository) Delete(ctx context.Context, id ulid.ULID, owner string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id, owner)
	}
	return nil
}

func (f *fakeContactRepository) GetByIDAndOwner(ctx context.Context, id ulid.ULID, owner string) (*contact.Contact, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, owner)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestServiceListRequiresIdentity(t *testing.T) {
	t.Parallel()

	svc := contact.NewService(&fakeContactRepository{}, session.NewManager())

	_, err := svc.List(context.Background(), "")
	if err == nil {
		t.Fatalf("expected error for empty identity")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUnauthorized.Code {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceListFetchFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepository{
		listFn: func(ctx context.Context, owner string) ([]*contact.Contact, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := contact.NewService(repo, session.NewManager())

	_, err := svc.List(context.Background(), "owner-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Message != "Erro ao carregar contatos" {
		t.Fatalf("expected fetch error message, got %q", appErr.Message)
	}
}

func TestServiceCreateNormalizesRecurringCharge(t *testing.T) {
	t.Parallel()

	var stored *contact.Contact
	repo := &fakeContactRepository{
		createFn: func(ctx context.Context, c *contact.Contact) error {
			stored = c
			return nil
		},
	}
	svc := contact.NewService(repo, session.NewManager())
	ctx := context.Background()

	tests := []struct {
		name    string
		charge  *contact.RecurringCharge
		wantNil bool
	}{
		{
			name:    "absent charge persists as nil",
			charge:  nil,
			wantNil: true,
		},
		{
			name:    "inactive charge persists as nil",
			charge:  &contact.RecurringCharge{IsActive: false, Amount: 150, LaunchDay: 1, DueDay: 10},
			wantNil: true,
		},
		{
			name:   "active charge persists as written",
			charge: &contact.RecurringCharge{IsActive: true, Amount: 150, LaunchDay: 1, DueDay: 10},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stored = nil
			draft := contact.Draft{
				Name:            "Imobiliária Central",
				Type:            contact.TypeEmpresa,
				RecurringCharge: tt.charge,
			}

			if _, err := svc.Create(ctx, "owner-1", draft); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if stored.RecurringCharge != nil {
					t.Fatalf("expected nil recurring charge, got %+v", stored.RecurringCharge)
				}
				return
			}
			if stored.RecurringCharge == nil || stored.RecurringCharge.Amount != 150 {
				t.Fatalf("expected active charge persisted, got %+v", stored.RecurringCharge)
			}
		})
	}
}

func TestServiceCreatePrependsToCollection(t *testing.T) {
	t.Parallel()

	owner := "owner-1"
	existing := &contact.Contact{Id: ulid.Make(), UserId: owner, Name: "Antigo", Type: contact.TypeCliente}
	repo := &fakeContactRepository{
		listFn: func(ctx context.Context, o string) ([]*contact.Contact, error) {
			return []*contact.Contact{existing}, nil
		},
	}
	svc := contact.NewService(repo, session.NewManager())
	ctx := context.Background()

	if _, err := svc.List(ctx, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	created, err := svc.Create(ctx, owner, contact.Draft{Name: "Novo", Type: contact.TypeEmpresa})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contacts, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 || contacts[0].Id != created.Id {
		t.Fatalf("expected created contact first in the collection, got %+v", contacts)
	}
}

func TestServiceUpdateWrongOwnerLeavesCollectionIntact(t *testing.T) {
	t.Parallel()

	owner := "owner-1"
	existing := &contact.Contact{Id: ulid.Make(), UserId: owner, Name: "Cliente A", Type: contact.TypeCliente}
	repo := &fakeContactRepository{
		listFn: func(ctx context.Context, o string) ([]*contact.Contact, error) {
			return []*contact.Contact{existing}, nil
		},
		updateFn: func(ctx context.Context, c *contact.Contact) error {
			// Id de outro dono não casa nenhuma linha.
			return gorm.ErrRecordNotFound
		},
	}
	svc := contact.NewService(repo, session.NewManager())
	ctx := context.Background()

	if _, err := svc.List(ctx, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	foreignID := ulid.Make()
	_, err := svc.Update(ctx, owner, foreignID, contact.Draft{Name: "Invasor", Type: contact.TypeCliente})
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != appErrors.ErrContactNotFound.Code {
		t.Fatalf("expected contact not found, got %s", appErr.Code)
	}

	contacts, _ := svc.List(ctx, owner)
	if len(contacts) != 1 || contacts[0].Name != "Cliente A" {
		t.Fatalf("collection must stay intact after failed update, got %+v", contacts)
	}
}

func TestServiceDeleteRemovesFromCollection(t *testing.T) {
	t.Parallel()

	owner := "owner-1"
	keep := &contact.Contact{Id: ulid.Make(), UserId: owner, Name: "Mantido", Type: contact.TypeEmpresa}
	drop := &contact.Contact{Id: ulid.Make(), UserId: owner, Name: "Removido", Type: contact.TypeCliente}
	repo := &fakeContactRepository{
		listFn: func(ctx context.Context, o string) ([]*contact.Contact, error) {
			return []*contact.Contact{drop, keep}, nil
		},
	}
	svc := contact.NewService(repo, session.NewManager())
	ctx := context.Background()

	if _, err := svc.List(ctx, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(ctx, owner, drop.Id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contacts, _ := svc.List(ctx, owner)
	if len(contacts) != 1 || contacts[0].Id != keep.Id {
		t.Fatalf("expected only the remaining contact, got %+v", contacts)
	}
}

func TestFilterByType(t *testing.T) {
	t.Parallel()

	contacts := []*contact.Contact{
		{Id: ulid.Make(), Name: "Imobiliária", Type: contact.TypeEmpresa},
		{Id: ulid.Make(), Name: "João", Type: contact.TypeCliente},
		{Id: ulid.Make(), Name: "Fornecedor", Type: contact.TypeEmpresa},
	}

	empresas := contact.FilterByType(contacts, contact.TypeEmpresa)
	if len(empresas) != 2 {
		t.Fatalf("expected 2 empresas, got %d", len(empresas))
	}

	all := contact.FilterByType(contacts, contact.Types(""))
	if len(all) != 3 {
		t.Fatalf("expected unknown type to return everything, got %d", len(all))
	}
}
