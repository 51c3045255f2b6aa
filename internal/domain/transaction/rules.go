package transaction

import (
	"sort"

	"github.com/alternativafozthiago/financas/internal/pkg"
)

// Regras derivadas sobre a coleção de transações. Todas são funções puras:
// operam sobre a fatia recebida e devolvem subsequências ou cópias
// ordenadas, nunca alteram a entrada.

// Pending devolve as transações não pagas, na ordem recebida.
func Pending(transactions []*Transaction) []*Transaction {
	pending := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.IsPaid {
			pending = append(pending, t)
		}
	}
	return pending
}

// Overdue devolve as transações não pagas com vencimento estritamente
// anterior a hoje.
func Overdue(transactions []*Transaction, today pkg.Date) []*Transaction {
	overdue := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.IsPaid && t.DueDate.Before(today) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// Payable devolve as despesas em aberto, vencimento mais próximo primeiro —
// ordem oposta à da listagem bruta.
func Payable(transactions []*Transaction) []*Transaction {
	return sortByDueDate(filterOpen(transactions, TypeExpense))
}

// Receivable devolve as receitas em aberto, vencimento mais próximo primeiro.
func Receivable(transactions []*Transaction) []*Transaction {
	return sortByDueDate(filterOpen(transactions, TypeIncome))
}

// Sum devolve o total dos valores da coleção.
func Sum(transactions []*Transaction) float64 {
	var total float64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

func filterOpen(transactions []*Transaction, transactionType Types) []*Transaction {
	open := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == transactionType && !t.IsPaid {
			open = append(open, t)
		}
	}
	return open
}

func sortByDueDate(transactions []*Transaction) []*Transaction {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].DueDate.Before(transactions[j].DueDate)
	})
	return transactions
}

// ListFilter é o filtro da página de transações.
type ListFilter string

const (
	FilterAll     ListFilter = "all"
	FilterIncome  ListFilter = "income"
	FilterExpense ListFilter = "expense"
	FilterPaid    ListFilter = "paid"
	FilterPending ListFilter = "pending"
)

func (f ListFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterIncome, FilterExpense, FilterPaid, FilterPending:
		return true
	}
	return false
}

// Filter aplica o filtro da listagem. Filtro vazio ou desconhecido devolve
// a coleção inteira.
func Filter(transactions []*Transaction, filter ListFilter) []*Transaction {
	switch filter {
	case FilterIncome:
		return byType(transactions, TypeIncome)
	case FilterExpense:
		return byType(transactions, TypeExpense)
	case FilterPaid:
		paid := make([]*Transaction, 0, len(transactions))
		for _, t := range transactions {
			if t.IsPaid {
				paid = append(paid, t)
			}
		}
		return paid
	case FilterPending:
		return Pending(transactions)
	default:
		return transactions
	}
}

func byType(transactions []*Transaction, transactionType Types) []*Transaction {
	matched := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Type == transactionType {
			matched = append(matched, t)
		}
	}
	return matched
}
