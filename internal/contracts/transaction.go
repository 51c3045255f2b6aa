package contracts

import (
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	appErrors "github.com/alternativafozthiago/financas/internal/errors"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type TransactionCreateRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Date        string  `json:"date" binding:"required"`
	DueDate     string  `json:"due_date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	IsPaid      bool    `json:"is_paid"`
	PaidDate    *string `json:"paid_date" binding:"omitempty"`
	IsRecurring bool    `json:"is_recurring"`
	ContactId   *string `json:"contact_id" binding:"omitempty,len=26"`
}

type TransactionUpdateRequest struct {
	Description string  `json:"description" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Date        string  `json:"date" binding:"required"`
	DueDate     string  `json:"due_date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	IsPaid      bool    `json:"is_paid"`
	PaidDate    *string `json:"paid_date" binding:"omitempty"`
	IsRecurring bool    `json:"is_recurring"`
	ContactId   *string `json:"contact_id" binding:"omitempty,len=26"`
}

type TransactionTogglePaidRequest struct {
	IsPaid bool `json:"is_paid"`
}

func (r *TransactionCreateRequest) ToDraft() (transaction.Draft, error) {
	return transactionDraft(r.Description, r.Amount, r.Date, r.DueDate, r.Type, r.IsPaid, r.PaidDate, r.IsRecurring, r.ContactId)
}

func (r *TransactionUpdateRequest) ToDraft() (transaction.Draft, error) {
	return transactionDraft(r.Description, r.Amount, r.Date, r.DueDate, r.Type, r.IsPaid, r.PaidDate, r.IsRecurring, r.ContactId)
}

func transactionDraft(description string, amount float64, date, dueDate, transactionType string, isPaid bool, paidDate *string, isRecurring bool, contactID *string) (transaction.Draft, error) {
	parsedDate, err := pkg.ParseDate(date)
	if err != nil {
		return transaction.Draft{}, appErrors.NewValidationError("date", "data deve estar no formato AAAA-MM-DD")
	}

	parsedDueDate, err := pkg.ParseDate(dueDate)
	if err != nil {
		return transaction.Draft{}, appErrors.NewValidationError("due_date", "data de vencimento deve estar no formato AAAA-MM-DD")
	}

	var parsedPaidDate *pkg.Date
	if paidDate != nil && *paidDate != "" {
		parsed, err := pkg.ParseDate(*paidDate)
		if err != nil {
			return transaction.Draft{}, appErrors.NewValidationError("paid_date", "data de pagamento deve estar no formato AAAA-MM-DD")
		}
		parsedPaidDate = &parsed
	}

	parsedContactID, err := pkg.MustParseULIDPtr(contactID)
	if err != nil {
		return transaction.Draft{}, appErrors.NewValidationError("contact_id", "contato inválido")
	}

	return transaction.Draft{
		Description: description,
		Amount:      amount,
		Date:        parsedDate,
		DueDate:     parsedDueDate,
		Type:        transaction.Types(transactionType),
		IsPaid:      isPaid,
		PaidDate:    parsedPaidDate,
		IsRecurring: isRecurring,
		ContactId:   parsedContactID,
	}, nil
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionUpdateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Total        int                        `json:"total"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
