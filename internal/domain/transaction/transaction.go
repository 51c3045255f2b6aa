package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type Transaction struct {
	Id          ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      string     `gorm:"type:varchar(64);index:idx_transactions_user_id;not null" json:"user_id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;not null" json:"created_at"`
	Description string     `gorm:"type:varchar(255);not null" json:"description"`
	Amount      float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        pkg.Date   `gorm:"type:date;not null" json:"date"`
	DueDate     pkg.Date   `gorm:"type:date;not null;index:idx_transactions_due_date" json:"due_date"`
	Type        Types      `gorm:"type:varchar(10);not null" json:"type"`
	IsPaid      bool       `gorm:"not null;default:false" json:"is_paid"`
	PaidDate    *pkg.Date  `gorm:"type:date" json:"paid_date,omitempty"`
	IsRecurring bool       `gorm:"not null;default:false" json:"is_recurring"`
	ContactId   *ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_contact_id" json:"contact_id,omitempty"`

	// Contact é o contato referenciado, desnormalizado na leitura para
	// exibição. Nunca faz parte da escrita.
	Contact *contact.Contact `gorm:"-" json:"contact,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

type Types string

const (
	TypeIncome  Types = "income"
	TypeExpense Types = "expense"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense:
		return true
	}
	return false
}

type Status string

const (
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
	StatusPending Status = "PENDING"
)

// Label devolve o rótulo de exibição do status em pt-BR.
func (s Status) Label() string {
	switch s {
	case StatusPaid:
		return "Pago"
	case StatusOverdue:
		return "Vencido"
	default:
		return "Pendente"
	}
}

// StatusOn classifica a transação na data dada. Pago sempre vence a
// comparação de datas; vencida exige vencimento estritamente anterior a
// hoje — vencer hoje ainda é pendente.
func (t *Transaction) StatusOn(today pkg.Date) Status {
	if t.IsPaid {
		return StatusPaid
	}
	if t.DueDate.Before(today) {
		return StatusOverdue
	}
	return StatusPending
}

// Draft é o estado editável de uma transação antes de persistir.
type Draft struct {
	Description string
	Amount      float64
	Date        pkg.Date
	DueDate     pkg.Date
	Type        Types
	IsPaid      bool
	PaidDate    *pkg.Date
	IsRecurring bool
	ContactId   *ulid.ULID
}
