package forms_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/forms"
)

type fakeContactSaver struct {
	createFn func(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error)
	updateFn func(ctx context.Context, owner string, id ulid.ULID, draft contact.Draft) (*contact.Contact, error)
}

func (f *fakeContactSaver) Create(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error) {
	if f.createFn != nil {
		return f.createFn(ctx, owner, draft)
	}
	return &contact.Contact{Id: ulid.Make(), UserId: owner, Name: draft.Name, Type: draft.Type}, nil
}

func (f *fakeContactSaver) Update(ctx context.Context, owner string, id ulid.ULID, draft contact.Draft) (*contact.Contact, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, owner, id, draft)
	}
	return &contact.Contact{Id: id, UserId: owner, Name: draft.Name, Type: draft.Type}, nil
}

func TestContactFormOpenSeedsCreationDefaults(t *testing.T) {
	t.Parallel()

	form := forms.NewContactForm(&fakeContactSaver{}, "owner-1")
	form.Open(nil)

	if form.State() != forms.StateEditing {
		t.Fatalf("expected editing state, got %s", form.State())
	}
	if form.Draft.Type != contact.TypeEmpresa {
		t.Fatalf("expected default type empresa, got %s", form.Draft.Type)
	}
	charge := form.Draft.RecurringCharge
	if charge == nil || charge.IsActive || charge.LaunchDay != 1 || charge.DueDay != 10 {
		t.Fatalf("expected inactive default charge with launch day 1 and due day 10, got %+v", charge)
	}
}

func TestContactFormOpenSeedsFromExisting(t *testing.T) {
	t.Parallel()

	existing := &contact.Contact{
		Id:     ulid.Make(),
		UserId: "owner-1",
		Name:   "Imobiliária Central",
		Type:   contact.TypeEmpresa,
		RecurringCharge: &contact.RecurringCharge{
			IsActive:  true,
			Amount:    1200,
			LaunchDay: 1,
			DueDay:    5,
		},
	}

	form := forms.NewContactForm(&fakeContactSaver{}, "owner-1")
	form.Open(existing)

	if form.Draft.Name != "Imobiliária Central" {
		t.Fatalf("expected draft seeded from entity, got %q", form.Draft.Name)
	}
	if form.Draft.RecurringCharge == nil || form.Draft.RecurringCharge.Amount != 1200 {
		t.Fatalf("expected recurring charge copied, got %+v", form.Draft.RecurringCharge)
	}

	// O rascunho é uma cópia: editar não altera a entidade.
	form.Draft.RecurringCharge.Amount = 999
	if existing.RecurringCharge.Amount != 1200 {
		t.Fatalf("editing the draft must not touch the entity")
	}
}

func TestContactFormDeactivateKeepsValuesInMemory(t *testing.T) {
	t.Parallel()

	var sent contact.Draft
	saver := &fakeContactSaver{
		createFn: func(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error) {
			sent = draft
			return &contact.Contact{Id: ulid.Make(), UserId: owner, Name: draft.Name, Type: draft.Type}, nil
		},
	}

	form := forms.NewContactForm(saver, "owner-1")
	form.Open(nil)
	form.Draft.Name = "Imobiliária Central"
	form.SetRecurringActive(true)
	form.Draft.RecurringCharge.Amount = 1200
	form.Draft.RecurringCharge.DueDay = 5

	form.SetRecurringActive(false)

	// Os valores continuam no rascunho para uma eventual reativação.
	if form.Draft.RecurringCharge.Amount != 1200 || form.Draft.RecurringCharge.DueDay != 5 {
		t.Fatalf("deactivating must keep the last values in the draft, got %+v", form.Draft.RecurringCharge)
	}

	if !form.Submit(context.Background()) {
		t.Fatalf("unexpected submit failure: %s", form.Err())
	}

	// A normalização de persistência é do service; o formulário envia o
	// rascunho como está, com a cobrança desativada.
	if sent.RecurringCharge == nil || sent.RecurringCharge.IsActive {
		t.Fatalf("expected inactive charge in the submitted draft, got %+v", sent.RecurringCharge)
	}
	if sent.NormalizedRecurringCharge() != nil {
		t.Fatalf("inactive charge must normalize to nil at persistence")
	}
}

func TestContactFormValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		draft   contact.Draft
		wantErr string
	}{
		{
			name:    "name required",
			draft:   contact.Draft{Name: "   ", Type: contact.TypeCliente},
			wantErr: "nome é obrigatório",
		},
		{
			name:    "type must be valid",
			draft:   contact.Draft{Name: "João", Type: contact.Types("fornecedor")},
			wantErr: "tipo deve ser empresa ou cliente",
		},
		{
			name: "recurring fields checked only while active",
			draft: contact.Draft{
				Name: "João",
				Type: contact.TypeCliente,
				RecurringCharge: &contact.RecurringCharge{
					IsActive:  false,
					LaunchDay: 0,
					DueDay:    99,
				},
			},
		},
		{
			name: "active charge validates launch day",
			draft: contact.Draft{
				Name: "João",
				Type: contact.TypeCliente,
				RecurringCharge: &contact.RecurringCharge{
					IsActive:  true,
					LaunchDay: 0,
					DueDay:    10,
				},
			},
			wantErr: "dia de lançamento deve estar entre 1 e 31",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := forms.ValidateContactDraft(tt.draft)
			if tt.wantErr == "" {
				if len(fieldErrors) != 0 {
					t.Fatalf("expected valid draft, got %+v", fieldErrors)
				}
				return
			}
			found := false
			for _, msg := range fieldErrors {
				if msg == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected error %q, got %+v", tt.wantErr, fieldErrors)
			}
		})
	}
}

func TestContactFormSubmitValidationFailureKeepsEditing(t *testing.T) {
	t.Parallel()

	form := forms.NewContactForm(&fakeContactSaver{}, "owner-1")
	form.Open(nil)
	form.Draft.Name = ""

	if form.Submit(context.Background()) {
		t.Fatalf("expected submit to fail")
	}
	if form.State() != forms.StateEditing {
		t.Fatalf("expected form to stay open, got %s", form.State())
	}
	if form.Err() != "nome é obrigatório" {
		t.Fatalf("expected first validation message, got %q", form.Err())
	}
}

func TestContactFormSubmitShowsStoreMessage(t *testing.T) {
	t.Parallel()

	saver := &fakeContactSaver{
		createFn: func(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error) {
			return nil, appErrors.NewStoreRejection(errors.New(`duplicate key value violates unique constraint "contacts_pkey"`))
		},
	}

	form := forms.NewContactForm(saver, "owner-1")
	form.Open(nil)
	form.Draft.Name = "João"
	form.Draft.Type = contact.TypeCliente

	if form.Submit(context.Background()) {
		t.Fatalf("expected submit to fail")
	}
	if form.Err() != `duplicate key value violates unique constraint "contacts_pkey"` {
		t.Fatalf("expected store message verbatim, got %q", form.Err())
	}
	if form.State() != forms.StateEditing {
		t.Fatalf("expected form reopened for editing, got %s", form.State())
	}
}

func TestContactFormSubmitRecoversFromPanic(t *testing.T) {
	t.Parallel()

	saver := &fakeContactSaver{
		createFn: func(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error) {
			panic("conexão perdida")
		},
	}

	form := forms.NewContactForm(saver, "owner-1")
	form.Open(nil)
	form.Draft.Name = "João"
	form.Draft.Type = contact.TypeCliente

	if form.Submit(context.Background()) {
		t.Fatalf("expected submit to fail")
	}
	if form.Err() != "Erro inesperado. Tente novamente." {
		t.Fatalf("expected generic message after panic, got %q", form.Err())
	}
	if form.State() != forms.StateEditing {
		t.Fatalf("expected form still editable, got %s", form.State())
	}
}

func TestContactFormReopenClearsError(t *testing.T) {
	t.Parallel()

	form := forms.NewContactForm(&fakeContactSaver{}, "owner-1")
	form.Open(nil)
	form.Submit(context.Background())
	if form.Err() == "" {
		t.Fatalf("expected a validation error to be present")
	}

	form.Open(nil)
	if form.Err() != "" {
		t.Fatalf("reopening must clear the error, got %q", form.Err())
	}
}

func TestContactFormSuccessCloses(t *testing.T) {
	t.Parallel()

	form := forms.NewContactForm(&fakeContactSaver{}, "owner-1")
	form.Open(nil)
	form.Draft.Name = "João"
	form.Draft.Type = contact.TypeCliente

	if !form.Submit(context.Background()) {
		t.Fatalf("unexpected failure: %s", form.Err())
	}
	if form.State() != forms.StateClosed {
		t.Fatalf("expected form closed after success, got %s", form.State())
	}
}
