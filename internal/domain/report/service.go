package report

import (
	"context"

	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type Service struct {
	Transactions *transaction.Service
}

// Payable monta o relatório de contas a pagar: despesas em aberto,
// vencimento mais próximo primeiro.
func (s *Service) Payable(ctx context.Context, owner string) (*Report, error) {
	return s.build(ctx, owner, KindPayable)
}

// Receivable monta o relatório de contas a receber: receitas em aberto,
// vencimento mais próximo primeiro.
func (s *Service) Receivable(ctx context.Context, owner string) (*Report, error) {
	return s.build(ctx, owner, KindReceivable)
}

func (s *Service) build(ctx context.Context, owner string, kind Kind) (*Report, error) {
	transactions, err := s.Transactions.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	var open []*transaction.Transaction
	if kind == KindPayable {
		open = transaction.Payable(transactions)
	} else {
		open = transaction.Receivable(transactions)
	}

	today := pkg.Today()
	rows := make([]Row, 0, len(open))
	for _, t := range open {
		status := t.StatusOn(today)
		contactName := "-"
		if t.Contact != nil {
			contactName = t.Contact.Name
		}
		rows = append(rows, Row{
			Id:           t.Id,
			Description:  t.Description,
			Amount:       t.Amount,
			AmountLabel:  pkg.FormatBRL(t.Amount),
			DueDate:      t.DueDate,
			DueDateLabel: pkg.FormatDateBR(t.DueDate),
			ContactName:  contactName,
			Status:       string(status),
			StatusLabel:  status.Label(),
		})
	}

	total := transaction.Sum(open)
	return &Report{
		Kind:       kind,
		Title:      kind.Title(),
		Rows:       rows,
		Total:      total,
		TotalLabel: pkg.FormatBRL(total),
	}, nil
}
