package forms

import (
	"context"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

// TransactionSaver é a fatia da camada de acesso que o formulário usa.
type TransactionSaver interface {
	Create(ctx context.Context, owner string, draft transaction.Draft) (*transaction.Transaction, error)
	Update(ctx context.Context, owner string, transactionID ulid.ULID, draft transaction.Draft) (*transaction.Transaction, error)
}

var _ TransactionSaver = (*transaction.Service)(nil)

type TransactionForm struct {
	saver TransactionSaver
	owner string

	state   State
	editing *transaction.Transaction
	errMsg  string

	Draft transaction.Draft
}

func NewTransactionForm(saver TransactionSaver, owner string) *TransactionForm {
	return &TransactionForm{
		saver: saver,
		owner: owner,
		state: StateClosed,
	}
}

// Open abre o formulário. Sem transação, o rascunho recebe os padrões de
// criação: despesa, data e vencimento de hoje, não paga, não recorrente.
// Reabrir sempre limpa a mensagem de erro.
func (f *TransactionForm) Open(existing *transaction.Transaction) {
	f.editing = existing
	f.errMsg = ""
	f.state = StateEditing

	if existing == nil {
		today := pkg.Today()
		f.Draft = transaction.Draft{
			Type:    transaction.TypeExpense,
			Date:    today,
			DueDate: today,
		}
		return
	}

	f.Draft = transaction.Draft{
		Description: existing.Description,
		Amount:      existing.Amount,
		Date:        existing.Date,
		DueDate:     existing.DueDate,
		Type:        existing.Type,
		IsPaid:      existing.IsPaid,
		IsRecurring: existing.IsRecurring,
		ContactId:   existing.ContactId,
	}
	if existing.PaidDate != nil {
		paidDate := *existing.PaidDate
		f.Draft.PaidDate = &paidDate
	}
}

func (f *TransactionForm) Close() {
	f.state = StateClosed
	f.editing = nil
	f.errMsg = ""
	f.Draft = transaction.Draft{}
}

func (f *TransactionForm) State() State {
	return f.state
}

func (f *TransactionForm) Err() string {
	return f.errMsg
}

// TogglePaid marca ou desmarca o rascunho como pago, sincronizando a data
// de pagamento na mesma edição: hoje quando marca, ausente quando desmarca.
func (f *TransactionForm) TogglePaid(isPaid bool) {
	f.Draft.IsPaid = isPaid
	if isPaid {
		today := pkg.Today()
		f.Draft.PaidDate = &today
		return
	}
	f.Draft.PaidDate = nil
}

// Submit valida o rascunho completo e envia. Falha mantém o formulário
// aberto com a mensagem retornada; pânico vira a mensagem genérica.
func (f *TransactionForm) Submit(ctx context.Context) (ok bool) {
	if f.state != StateEditing {
		return false
	}

	if fieldErrors := ValidateTransactionDraft(f.Draft); len(fieldErrors) > 0 {
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

// ValidateTransactionDraft valida o rascunho inteiro de uma vez.
func ValidateTransactionDraft(draft transaction.Draft) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(draft.Description) == "" {
		fieldErrors["description"] = "descrição é obrigatória"
	}
	if draft.Amount < 0 {
		fieldErrors["amount"] = "valor deve ser maior ou igual a zero"
	}
	if !draft.Type.IsValid() {
		fieldErrors["type"] = fmt.Sprintf("tipo deve ser %s ou %s", transaction.TypeIncome, transaction.TypeExpense)
	}
	if draft.Date.IsZero() {
		fieldErrors["date"] = "data é obrigatória"
	}
	if draft.DueDate.IsZero() {
		fieldErrors["due_date"] = "data de vencimento é obrigatória"
	}

	return fieldErrors
}
