package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/GustavoCaso/budget/internal/record"
)

const noExpense = "(none)"

type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

type Summary struct {
	Count        int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	// ByCategory only has entries for categories with at least one expense.
	ByCategory map[string]decimal.Decimal
	// MaxExpense is nil when there are no expense records.
	MaxExpense *record.Record
}

// Summarize computes totals, per-category expenses and the largest expense.
// The first expense seeds the maximum, even with a zero amount, and only a
// strictly greater amount replaces it.
func Summarize(records []record.Record) Summary {
	summary := Summary{
		Count:        len(records),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		ByCategory:   make(map[string]decimal.Decimal),
	}

	for _, r := range records {
		switch r.Kind {
		case record.Income:
			summary.TotalIncome = summary.TotalIncome.Add(r.Amount)
		case record.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(r.Amount)

			summary.ByCategory[r.Category] = summary.ByCategory[r.Category].Add(r.Amount)

			if summary.MaxExpense == nil || r.Amount.GreaterThan(summary.MaxExpense.Amount) {
				maxExpense := r
				summary.MaxExpense = &maxExpense
			}
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary
}

// Categories returns the expense totals ordered by category name.
func (s Summary) Categories() []CategoryTotal {
	names := make([]string, 0, len(s.ByCategory))
	for name := range s.ByCategory {
		names = append(names, name)
	}
	slices.Sort(names)

	categories := make([]CategoryTotal, 0, len(names))
	for _, name := range names {
		categories = append(categories, CategoryTotal{
			Name:   name,
			Amount: s.ByCategory[name],
		})
	}

	return categories
}

func (s Summary) MaxExpenseAmount() decimal.Decimal {
	if s.MaxExpense == nil {
		return decimal.Zero
	}
	return s.MaxExpense.Amount
}

func (s Summary) MaxExpenseDescription() string {
	if s.MaxExpense == nil {
		return noExpense
	}
	return s.MaxExpense.Describe()
}

// Search returns the records whose date contains needle, in stored order.
// An empty needle matches nothing.
func Search(records []record.Record, needle string) []record.Record {
	matches := []record.Record{}
	if needle == "" {
		return matches
	}

	for _, r := range records {
		if strings.Contains(r.Date, needle) {
			matches = append(matches, r)
		}
	}

	return matches
}
