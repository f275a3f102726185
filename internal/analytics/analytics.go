// Package analytics computes aggregate statistics over a user's expenses
// and incomes.
//
// All functions in this package are pure: they operate only on the records
// passed in, perform no I/O and return deterministic results. Monetary
// values are summed as exact decimals, rounding happens at the presentation
// boundary only.
package analytics

import (
	"sort"

	"github.com/finsmart/backend/internal/models"
	"github.com/finsmart/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Uncategorized is the category that expenses without a category are
// reported under.
const Uncategorized = "Uncategorized"

// Totals holds the overall sums for a set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"` // Income - Expense
}

// ComputeTotals sums all incomes and expenses.
func ComputeTotals(expenses []models.Expense, incomes []models.Income) Totals {
	var income, expense decimal.Decimal

	for _, i := range incomes {
		income = income.Add(i.Amount)
	}

	for _, e := range expenses {
		expense = expense.Add(e.Amount)
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryAggregate is the total amount spent in one category.
type CategoryAggregate struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ByCategory groups expenses by category and sums each group.
//
// Expenses without a category are grouped under Uncategorized. The result
// is sorted by total descending, with ties broken by category name
// ascending so that the order is deterministic.
func ByCategory(expenses []models.Expense) []CategoryAggregate {
	totals := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = Uncategorized
		}

		totals[category] = totals[category].Add(e.Amount)
	}

	aggregates := make([]CategoryAggregate, 0, len(totals))
	for category, total := range totals {
		aggregates = append(aggregates, CategoryAggregate{Category: category, Total: total})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if !aggregates[i].Total.Equal(aggregates[j].Total) {
			return aggregates[i].Total.GreaterThan(aggregates[j].Total)
		}
		return aggregates[i].Category < aggregates[j].Category
	})

	return aggregates
}

// MonthlyBucket holds the income, expense and balance sums for one month.
type MonthlyBucket struct {
	Month   types.Month     `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyEvolution buckets incomes and expenses by the calendar month of
// their date.
//
// The result contains exactly one bucket for every month that occurs in
// either series, in ascending order. Months without any records are not
// synthesized.
func MonthlyEvolution(expenses []models.Expense, incomes []models.Income) []MonthlyBucket {
	income := make(map[types.Month]decimal.Decimal)
	expense := make(map[types.Month]decimal.Decimal)

	// Months are keyed by the calendar fields of the record's own
	// timestamp so that values are comparable regardless of location.
	for _, i := range incomes {
		month := types.NewMonth(i.Date.Year(), i.Date.Month())
		income[month] = income[month].Add(i.Amount)
	}

	for _, e := range expenses {
		month := types.NewMonth(e.Date.Year(), e.Date.Month())
		expense[month] = expense[month].Add(e.Amount)
	}

	months := make([]types.Month, 0, len(income)+len(expense))
	for month := range income {
		months = append(months, month)
	}
	for month := range expense {
		if _, ok := income[month]; !ok {
			months = append(months, month)
		}
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Before(months[j])
	})

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, month := range months {
		buckets = append(buckets, MonthlyBucket{
			Month:   month,
			Income:  income[month],
			Expense: expense[month],
			Balance: income[month].Sub(expense[month]),
		})
	}

	return buckets
}

// PercentageOf returns part as a percentage of whole.
//
// A whole of zero yields zero, never a division error.
func PercentageOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100))
}
