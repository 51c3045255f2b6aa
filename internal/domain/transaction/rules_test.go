package transaction_test

import (
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/alternativafozthiago/financas/internal/domain/transaction"
	"github.com/alternativafozthiago/financas/internal/pkg"
)

func newTransaction(description string, transactionType transaction.Types, dueDate pkg.Date, isPaid bool) *transaction.Transaction {
	return &transaction.Transaction{
		Id:          ulid.Make(),
		UserId:      "owner-1",
		Description: description,
		Amount:      100,
		Date:        dueDate,
		DueDate:     dueDate,
		Type:        transactionType,
		IsPaid:      isPaid,
	}
}

func TestStatusOn(t *testing.T) {
	t.Parallel()

	today := pkg.NewDate(2024, 3, 10)
	paidDate := pkg.NewDate(2024, 3, 1)

	tests := []struct {
		name    string
		dueDate pkg.Date
		isPaid  bool
		want    transaction.Status
	}{
		{
			name:    "paid wins over past due date",
			dueDate: pkg.NewDate(2024, 3, 5),
			isPaid:  true,
			want:    transaction.StatusPaid,
		},
		{
			name:    "unpaid past due is overdue",
			dueDate: pkg.NewDate(2024, 3, 5),
			want:    transaction.StatusOverdue,
		},
		{
			name:    "due today is still pending",
			dueDate: pkg.NewDate(2024, 3, 10),
			want:    transaction.StatusPending,
		},
		{
			name:    "due tomorrow is pending",
			dueDate: pkg.NewDate(2024, 3, 11),
			want:    transaction.StatusPending,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			entity := newTransaction("Aluguel", transaction.TypeExpense, tt.dueDate, tt.isPaid)
			if tt.isPaid {
				entity.PaidDate = &paidDate
			}
			if got := entity.StatusOn(today); got != tt.want {
				t.Fatalf("expected status %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status transaction.Status
		want   string
	}{
		{transaction.StatusPaid, "Pago"},
		{transaction.StatusOverdue, "Vencido"},
		{transaction.StatusPending, "Pendente"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Fatalf("expected label %q for %s, got %q", tt.want, tt.status, got)
		}
	}
}

func TestPayableAndReceivableAreDisjoint(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		newTransaction("Aluguel", transaction.TypeExpense, pkg.NewDate(2024, 3, 20), false),
		newTransaction("Consultoria", transaction.TypeIncome, pkg.NewDate(2024, 3, 15), false),
		newTransaction("Internet", transaction.TypeExpense, pkg.NewDate(2024, 3, 5), false),
		newTransaction("Mensalidade", transaction.TypeIncome, pkg.NewDate(2024, 3, 25), false),
		newTransaction("Luz paga", transaction.TypeExpense, pkg.NewDate(2024, 3, 1), true),
		newTransaction("Venda recebida", transaction.TypeIncome, pkg.NewDate(2024, 3, 2), true),
	}

	payable := transaction.Payable(transactions)
	receivable := transaction.Receivable(transactions)

	if len(payable) != 2 {
		t.Fatalf("expected 2 payable rows, got %d", len(payable))
	}
	if len(receivable) != 2 {
		t.Fatalf("expected 2 receivable rows, got %d", len(receivable))
	}

	seen := make(map[string]bool)
	for _, p := range payable {
		if p.IsPaid {
			t.Fatalf("payable must not include paid transactions: %s", p.Description)
		}
		seen[p.Id.String()] = true
	}
	for _, r := range receivable {
		if seen[r.Id.String()] {
			t.Fatalf("transaction %s appears in both reports", r.Description)
		}
	}
}

func TestPayableSortedByNearestDueDate(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		newTransaction("Aluguel", transaction.TypeExpense, pkg.NewDate(2024, 3, 20), false),
		newTransaction("Internet", transaction.TypeExpense, pkg.NewDate(2024, 3, 5), false),
		newTransaction("Energia", transaction.TypeExpense, pkg.NewDate(2024, 3, 12), false),
	}

	payable := transaction.Payable(transactions)

	want := []string{"Internet", "Energia", "Aluguel"}
	for i, description := range want {
		if payable[i].Description != description {
			t.Fatalf("expected %s at position %d, got %s", description, i, payable[i].Description)
		}
	}
}

func TestOverdueUsesStrictComparison(t *testing.T) {
	t.Parallel()

	today := pkg.NewDate(2024, 3, 10)
	transactions := []*transaction.Transaction{
		newTransaction("Vencida", transaction.TypeExpense, pkg.NewDate(2024, 3, 9), false),
		newTransaction("Vence hoje", transaction.TypeExpense, pkg.NewDate(2024, 3, 10), false),
		newTransaction("Paga atrasada", transaction.TypeExpense, pkg.NewDate(2024, 3, 1), true),
	}

	overdue := transaction.Overdue(transactions, today)
	if len(overdue) != 1 || overdue[0].Description != "Vencida" {
		t.Fatalf("expected only the strictly past-due unpaid transaction, got %+v", overdue)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		newTransaction("Receita paga", transaction.TypeIncome, pkg.NewDate(2024, 3, 1), true),
		newTransaction("Receita pendente", transaction.TypeIncome, pkg.NewDate(2024, 3, 2), false),
		newTransaction("Despesa paga", transaction.TypeExpense, pkg.NewDate(2024, 3, 3), true),
		newTransaction("Despesa pendente", transaction.TypeExpense, pkg.NewDate(2024, 3, 4), false),
	}

	tests := []struct {
		filter transaction.ListFilter
		want   int
	}{
		{transaction.FilterAll, 4},
		{transaction.FilterIncome, 2},
		{transaction.FilterExpense, 2},
		{transaction.FilterPaid, 2},
		{transaction.FilterPending, 2},
		{transaction.ListFilter(""), 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.filter), func(t *testing.T) {
			got := transaction.Filter(transactions, tt.filter)
			if len(got) != tt.want {
				t.Fatalf("expected %d transactions for filter %q, got %d", tt.want, tt.filter, len(got))
			}
		})
	}
}

func TestRulesDoNotMutateInput(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		newTransaction("Aluguel", transaction.TypeExpense, pkg.NewDate(2024, 3, 20), false),
		newTransaction("Internet", transaction.TypeExpense, pkg.NewDate(2024, 3, 5), false),
	}
	first := transactions[0]

	transaction.Payable(transactions)
	transaction.Filter(transactions, transaction.FilterExpense)
	transaction.Sum(transactions)

	if transactions[0] != first {
		t.Fatalf("input slice was reordered")
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		newTransaction("A", transaction.TypeExpense, pkg.NewDate(2024, 3, 1), false),
		newTransaction("B", transaction.TypeExpense, pkg.NewDate(2024, 3, 2), false),
	}
	transactions[0].Amount = 1200.50
	transactions[1].Amount = 99.50

	if got := transaction.Sum(transactions); got != 1300 {
		t.Fatalf("expected total 1300, got %v", got)
	}
}
