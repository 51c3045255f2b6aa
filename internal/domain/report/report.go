package report

import (
	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/pkg"
)

type Kind string

const (
	KindPayable    Kind = "payable"
	KindReceivable Kind = "receivable"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPayable, KindReceivable:
		return true
	}
	return false
}

// Title devolve o título de exibição do relatório.
func (k Kind) Title() string {
	if k == KindPayable {
		return "Contas a Pagar"
	}
	return "Contas a Receber"
}

type Report struct {
	Kind       Kind    `json:"kind"`
	Title      string  `json:"title"`
	Rows       []Row   `json:"rows"`
	Total      float64 `json:"total"`
	TotalLabel string  `json:"total_label"`
}

type Row struct {
	Id           ulid.ULID `json:"id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	AmountLabel  string    `json:"amount_label"`
	DueDate      pkg.Date  `json:"due_date"`
	DueDateLabel string    `json:"due_date_label"`
	ContactName  string    `json:"contact_name"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
}
