package dashboard

import (
	"context"
	"time"

	"github.com/alternativafozthiago/financas/internal/domain/contact"
	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

type Service struct {
	Transactions *transaction.Service
	Contacts     *contact.Service
}

// GetDashboard monta o resumo do painel para o mês/ano dados. Mês ou ano
// fora de faixa caem no mês corrente.
func (s *Service) GetDashboard(ctx context.Context, owner string, month, year int) (*DashboardResponse, error) {
	if month <= 0 || month > 12 {
		month = int(time.Now().Month())
	}
	if year <= 0 {
		year = time.Now().Year()
	}

	transactions, err := s.Transactions.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	contacts, err := s.Contacts.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	today := pkg.Today()
	totals := MonthlyTotals(transactions, year, time.Month(month))

	return &DashboardResponse{
		Month:               month,
		Year:                year,
		MonthIncome:         totals.Income,
		MonthIncomeLabel:    pkg.FormatBRL(totals.Income),
		MonthExpenses:       totals.Expense,
		MonthExpensesLabel:  pkg.FormatBRL(totals.Expense),
		MonthBalance:        totals.Balance,
		MonthBalanceLabel:   pkg.FormatBRL(totals.Balance),
		TotalContacts:       len(contacts),
		PendingTransactions: len(transaction.Pending(transactions)),
		OverdueTransactions: len(transaction.Overdue(transactions, today)),
	}, nil
}

type DashboardResponse struct {
	Month               int     `json:"month"`
	Year                int     `json:"year"`
	MonthIncome         float64 `json:"month_income"`
	MonthIncomeLabel    string  `json:"month_income_label"`
	MonthExpenses       float64 `json:"month_expenses"`
	MonthExpensesLabel  string  `json:"month_expenses_label"`
	MonthBalance        float64 `json:"month_balance"`
	MonthBalanceLabel   string  `json:"month_balance_label"`
	TotalContacts       int     `json:"total_contacts"`
	PendingTransactions int     `json:"pending_transactions"`
	OverdueTransactions int     `json:"overdue_transactions"`
}

type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthlyTotals soma receitas e despesas cuja data cai no mês/ano de
// calendário dados, pagas ou não, e calcula o saldo. Função pura.
func MonthlyTotals(transactions []*transaction.Transaction, year int, month time.Month) Totals {
	var totals Totals
	for _, t := range transactions {
		if !t.Date.InMonth(year, month) {
			continue
		}
		switch t.Type {
		case transaction.TypeIncome:
			totals.Income += t.Amount
		case transaction.TypeExpense:
			totals.Expense += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}
