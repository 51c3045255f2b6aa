package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
)

// ContactSaver é a fatia da camada de acesso que o formulário usa.
type ContactSaver interface {
	Create(ctx context.Context, owner string, draft contact.Draft) (*contact.Contact, error)
	Update(ctx context.Context, owner string, contactID ulid.ULID, draft contact.Draft) (*contact.Contact, error)
}

var _ ContactSaver = (*contact.Service)(nil)

type ContactForm struct {
	saver ContactSaver
	owner string

	state   State
	editing *contact.Contact
	errMsg  string

	Draft contact.Draft
}

func NewContactForm(saver ContactSaver, owner string) *ContactForm {
	return &ContactForm{
		saver: saver,
		owner: owner,
		state: StateClosed,
	}
}

// Open abre o formulário. Com um contato existente, o rascunho é semeado a
// partir dele; sem contato, recebe os padrões de criação. Reabrir sempre
// limpa a mensagem de erro.
func (f *ContactForm) Open(existing *contact.Contact) {
	f.editing = existing
	f.errMsg = ""
	f.state = StateEditing

	if existing == nil {
		f.Draft = contact.Draft{
			Type: contact.TypeEmpresa,
			RecurringCharge: &contact.RecurringCharge{
				IsActive:  false,
				Amount:    0,
				LaunchDay: 1,
				DueDay:    10,
			},
		}
		return
	}

	f.Draft = contact.Draft{
		Name:  existing.Name,
		Type:  existing.Type,
		Email: existing.Email,
	}
	if existing.RecurringCharge != nil {
		charge := *existing.RecurringCharge
		f.Draft.RecurringCharge = &charge
	} else {
		f.Draft.RecurringCharge = &contact.RecurringCharge{
			IsActive:  false,
			Amount:    0,
			LaunchDay: 1,
			DueDay:    10,
		}
	}
}

func (f *ContactForm) Close() {
	f.state = StateClosed
	f.editing = nil
	f.errMsg = ""
	f.Draft = contact.Draft{}
}

func (f *ContactForm) State() State {
	return f.state
}

func (f *ContactForm) Err() string {
	return f.errMsg
}

// SetRecurringActive liga ou desliga a cobrança recorrente no rascunho.
// Desligar mantém os últimos valores numéricos em memória; só a escrita
// persistida é anulada.
func (f *ContactForm) SetRecurringActive(active bool) {
	if f.Draft.RecurringCharge == nil {
		f.Draft.RecurringCharge = &contact.RecurringCharge{LaunchDay: 1, DueDay: 10}
	}
	f.Draft.RecurringCharge.IsActive = active
}

// Submit valida o rascunho completo e envia. Falha de validação ou do
// banco mantém o formulário aberto com a mensagem; pânico na camada de
// acesso vira a mensagem genérica.
func (f *ContactForm) Submit(ctx context.Context) (ok bool) {
	if f.state != StateEditing {
		return false
	}

	if fieldErrors := ValidateContactDraft(f.Draft); len(fieldErrors) > 0 {
		f.errMsg = firstError(fieldErrors)
		return false
	}

	f.state = StateSubmitting
	f.errMsg = ""

	defer func() {
		if recovered := recover(); recovered != nil {
			f.state = StateEditing
			f.errMsg = genericErrorMessage
			ok = false
		}
	}()

	var err error
	if f.editing != nil {
		_, err = f.saver.Update(ctx, f.owner, f.editing.Id, f.Draft)
	} else {
		_, err = f.saver.Create(ctx, f.owner, f.Draft)
	}

	if err != nil {
		f.state = StateEditing
		if appErr, isAppErr := appErrors.AsAppError(err); isAppErr {
			f.errMsg = appErr.Message
		} else {
			f.errMsg = genericErrorMessage
		}
		return false
	}

	f.Close()
	return true
}

// ValidateContactDraft valida o rascunho inteiro de uma vez, independente
// de quais campos estão visíveis. Os campos da cobrança recorrente só são
// obrigatórios enquanto ela está ativa.
func ValidateContactDraft(draft contact.Draft) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(draft.Name) == "" {
		fieldErrors["name"] = "nome é obrigatório"
	}
	if !draft.Type.IsValid() {
		fieldErrors["type"] = fmt.Sprintf("tipo deve ser %s ou %s", contact.TypeEmpresa, contact.TypeCliente)
	}

	charge := draft.RecurringCharge
	if charge != nil && charge.IsActive {
		if charge.Amount < 0 {
			fieldErrors["amount"] = "valor deve ser maior ou igual a zero"
		}
		if charge.LaunchDay < 1 || charge.LaunchDay > 31 {
			fieldErrors["launch_day"] = "dia de lançamento deve estar entre 1 e 31"
		}
		if charge.DueDay < 1 || charge.DueDay > 31 {
			fieldErrors["due_day"] = "dia de vencimento deve estar entre 1 e 31"
		}
	}

	return fieldErrors
}

func firstError(fieldErrors FieldErrors) string {
	// Ordem estável para mensagens determinísticas.
	for _, field := range []string{"name", "type", "description", "amount", "date", "due_date", "launch_day", "due_day"} {
		if msg, ok := fieldErrors[field]; ok {
			return msg
		}
	}
	for _, msg := range fieldErrors {
		return msg
	}
	return ""
}
