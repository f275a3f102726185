package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finsmart/backend/internal/models"
)

// Caps for the transaction samples embedded in the compiled context.
const (
	contextRecentExpenses = 5
	contextRecentIncomes  = 3
)

// CompileContext renders a user's financial state into a compact text
// block that is embedded into AI prompts.
//
// The output is a pure function of the records passed in: no timestamps
// are stamped into it and no database identifiers appear in it, only
// human readable labels and numbers. Calling it twice on the same data
// yields byte-identical text.
func CompileContext(expenses []models.Expense, incomes []models.Income, budgets []models.Budget) string {
	totals := ComputeTotals(expenses, incomes)
	categories := ByCategory(expenses)

	var b strings.Builder

	b.WriteString("USER FINANCIAL DATA:\n\n")
	b.WriteString("General summary:\n")
	fmt.Fprintf(&b, "- Total income: $%s\n", totals.Income.StringFixed(2))
	fmt.Fprintf(&b, "- Total expenses: $%s\n", totals.Expense.StringFixed(2))
	fmt.Fprintf(&b, "- Current balance: $%s\n", totals.Balance.StringFixed(2))
	fmt.Fprintf(&b, "- Percentage of income spent: %s%%\n", PercentageOf(totals.Expense, totals.Income).StringFixed(1))
	fmt.Fprintf(&b, "- Savings rate: %s%%\n", SavingsRate(totals).StringFixed(1))

	if len(categories) > 0 {
		b.WriteString("\nExpenses by category:\n")
		for _, aggregate := range categories {
			fmt.Fprintf(&b, "- %s: $%s (%s%%)\n",
				aggregate.Category,
				aggregate.Total.StringFixed(2),
				PercentageOf(aggregate.Total, totals.Expense).StringFixed(1))
		}
	}

	fmt.Fprintf(&b, "\nActive budgets: %d\n", len(budgets))
	for _, budget := range budgets {
		fmt.Fprintf(&b, "- %s: $%s (%s)\n", budget.Category, budget.LimitAmount.StringFixed(2), budget.Month)
	}

	if len(expenses) > 0 {
		fmt.Fprintf(&b, "\nLast %d expenses:\n", min(contextRecentExpenses, len(expenses)))
		for _, e := range recentExpenses(expenses, contextRecentExpenses) {
			category := e.Category
			if category == "" {
				category = Uncategorized
			}

			description := e.Description
			if description == "" {
				description = "No description"
			}

			fmt.Fprintf(&b, "- %s: %s: $%s - %s\n", e.Date.Format("2006-01-02"), category, e.Amount.StringFixed(2), description)
		}
	}

	if len(incomes) > 0 {
		fmt.Fprintf(&b, "\nLast %d incomes:\n", min(contextRecentIncomes, len(incomes)))
		for _, i := range recentIncomes(incomes, contextRecentIncomes) {
			fmt.Fprintf(&b, "- %s: %s: $%s\n", i.Date.Format("2006-01-02"), i.Source, i.Amount.StringFixed(2))
		}
	}

	return b.String()
}

// recentExpenses returns up to limit expenses, most recent first. The
// input slice is not modified.
func recentExpenses(expenses []models.Expense, limit int) []models.Expense {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

func recentIncomes(incomes []models.Income, limit int) []models.Income {
	sorted := make([]models.Income, len(incomes))
	copy(sorted, incomes)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}
