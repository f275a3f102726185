package analytics

import (
	"errors"

	"github.com/finsmart/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetState classifies how much of a budget's limit has been used.
type BudgetState string

const (
	// BudgetStateNormal means less than 80% of the limit is used.
	BudgetStateNormal BudgetState = "normal"
	// BudgetStateWarning means at least 80%, but less than 100% of the limit is used.
	BudgetStateWarning BudgetState = "warning"
	// BudgetStateExceeded means the limit is reached or exceeded.
	BudgetStateExceeded BudgetState = "exceeded"
)

var ErrBudgetLimitNegative = errors.New("budget limits must not be negative")

// Thresholds for the budget states, in percent.
var (
	warningThreshold  = decimal.NewFromInt(80)
	exceededThreshold = decimal.NewFromInt(100)
)

// BudgetStatus is the evaluation of one budget against the expenses of
// its month. It is recomputed on every read and never persisted.
type BudgetStatus struct {
	Budget      models.Budget   `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`   // LimitAmount - Spent, may be negative
	Utilization decimal.Decimal `json:"utilization"` // Spent as a percentage of LimitAmount
	State       BudgetState     `json:"state"`
}

// EvaluateBudget sums the expenses that match the budget's category and
// month and classifies the result.
//
// A limit of exactly zero is not an error: spending nothing against it
// is normal, spending anything exceeds it. The zero case never reaches
// the division.
func EvaluateBudget(budget models.Budget, expenses []models.Expense) (BudgetStatus, error) {
	if budget.LimitAmount.IsNegative() {
		return BudgetStatus{}, ErrBudgetLimitNegative
	}

	var spent decimal.Decimal
	for _, e := range expenses {
		if e.Category == budget.Category && budget.Month.Contains(e.Date) {
			spent = spent.Add(e.Amount)
		}
	}

	status := BudgetStatus{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.LimitAmount.Sub(spent),
	}

	if budget.LimitAmount.IsZero() {
		status.Utilization = decimal.Zero
		status.State = BudgetStateNormal
		if spent.IsPositive() {
			status.State = BudgetStateExceeded
		}
		return status, nil
	}

	status.Utilization = spent.Div(budget.LimitAmount).Mul(decimal.NewFromInt(100))

	switch {
	case status.Utilization.GreaterThanOrEqual(exceededThreshold):
		status.State = BudgetStateExceeded
	case status.Utilization.GreaterThanOrEqual(warningThreshold):
		status.State = BudgetStateWarning
	default:
		status.State = BudgetStateNormal
	}

	return status, nil
}

// EvaluateBudgets evaluates all budgets against the expense set.
//
// A budget that cannot be evaluated is skipped, it does not abort the
// evaluation of the others.
func EvaluateBudgets(budgets []models.Budget, expenses []models.Expense) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))

	for _, budget := range budgets {
		status, err := EvaluateBudget(budget, expenses)
		if err != nil {
			continue
		}

		statuses = append(statuses, status)
	}

	return statuses
}
