package controllers

import (
	"net/http"

	"github.com/finsmart/backend/internal/analytics"
	"github.com/finsmart/backend/internal/httputil"
	"github.com/finsmart/backend/internal/models"
	"github.com/finsmart/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterStatsRoutes registers the routes for statistics with the
// RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.GET("/summary", co.GetSummary)
	r.GET("/categories", co.GetCategoryBreakdown)
	r.GET("/evolution", co.GetMonthlyEvolution)
	r.GET("/budgets", co.GetBudgetStatuses)
}

// All monetary values in statistics responses are rendered as fixed
// 2-decimal strings, percentages as 1-decimal strings. Rounding happens
// here and nowhere earlier.

type SummaryResponse struct {
	TotalIncome   string `json:"totalIncome" example:"2000.00"`
	TotalExpenses string `json:"totalExpenses" example:"800.00"`
	Balance       string `json:"balance" example:"1200.00"`
	IncomeCount   int    `json:"incomeCount" example:"1"`
	ExpenseCount  int    `json:"expenseCount" example:"3"`
}

type CategoryAggregateResponse struct {
	Category string `json:"category" example:"Groceries"`
	Total    string `json:"total" example:"312.45"`
}

type CategoryBreakdownResponse struct {
	Data []CategoryAggregateResponse `json:"data"`
}

type MonthlyBucketResponse struct {
	Month   types.Month `json:"month" example:"2024-01"`
	Income  string      `json:"income" example:"2000.00"`
	Expense string      `json:"expense" example:"500.00"`
	Balance string      `json:"balance" example:"1500.00"`
}

type MonthlyEvolutionResponse struct {
	Data []MonthlyBucketResponse `json:"data"`
}

type BudgetStatusResponse struct {
	ID          uuid.UUID             `json:"id"`
	Category    string                `json:"category" example:"Groceries"`
	Month       types.Month           `json:"month" example:"2024-01"`
	LimitAmount string                `json:"limitAmount" example:"400.00"`
	Spent       string                `json:"spent" example:"320.00"`
	Remaining   string                `json:"remaining" example:"80.00"`
	Utilization string                `json:"utilization" example:"80.0"`
	State       analytics.BudgetState `json:"state" example:"warning"`
}

type BudgetStatusListResponse struct {
	Data []BudgetStatusResponse `json:"data"`
}

// userRecords loads the expense and income records for the authenticated
// user, honoring an optional date range filter. On failure, the error
// response has been written.
func (co Controller) userRecords(c *gin.Context) (expenses []models.Expense, incomes []models.Income, ok bool) {
	var filter DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return nil, nil, false
	}

	from, to := filter.bounds()

	expenses, err := models.ExpensesForUser(models.DB, userID(c), from, to)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return nil, nil, false
	}

	incomes, err = models.IncomesForUser(models.DB, userID(c), from, to)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return nil, nil, false
	}

	return expenses, incomes, true
}

// GetSummary returns the overall totals for the authenticated user.
// Without any records, all totals are zero.
func (co Controller) GetSummary(c *gin.Context) {
	expenses, incomes, ok := co.userRecords(c)
	if !ok {
		return
	}

	totals := analytics.ComputeTotals(expenses, incomes)

	c.JSON(http.StatusOK, SummaryResponse{
		TotalIncome:   totals.Income.StringFixed(2),
		TotalExpenses: totals.Expense.StringFixed(2),
		Balance:       totals.Balance.StringFixed(2),
		IncomeCount:   len(incomes),
		ExpenseCount:  len(expenses),
	})
}

// GetCategoryBreakdown returns the expense totals per category, largest
// first.
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	expenses, _, ok := co.userRecords(c)
	if !ok {
		return
	}

	aggregates := analytics.ByCategory(expenses)

	response := CategoryBreakdownResponse{Data: make([]CategoryAggregateResponse, 0, len(aggregates))}
	for _, aggregate := range aggregates {
		response.Data = append(response.Data, CategoryAggregateResponse{
			Category: aggregate.Category,
			Total:    aggregate.Total.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetMonthlyEvolution returns one bucket per month that has income or
// expense records, in chronological order.
func (co Controller) GetMonthlyEvolution(c *gin.Context) {
	expenses, incomes, ok := co.userRecords(c)
	if !ok {
		return
	}

	buckets := analytics.MonthlyEvolution(expenses, incomes)

	response := MonthlyEvolutionResponse{Data: make([]MonthlyBucketResponse, 0, len(buckets))}
	for _, bucket := range buckets {
		response.Data = append(response.Data, MonthlyBucketResponse{
			Month:   bucket.Month,
			Income:  bucket.Income.StringFixed(2),
			Expense: bucket.Expense.StringFixed(2),
			Balance: bucket.Balance.StringFixed(2),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetBudgetStatuses evaluates all budgets of the authenticated user
// against their current expenses.
func (co Controller) GetBudgetStatuses(c *gin.Context) {
	expenses, err := models.ExpensesForUser(models.DB, userID(c), nil, nil)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	budgets, err := models.BudgetsForUser(models.DB, userID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	statuses := analytics.EvaluateBudgets(budgets, expenses)

	response := BudgetStatusListResponse{Data: make([]BudgetStatusResponse, 0, len(statuses))}
	for _, s := range statuses {
		response.Data = append(response.Data, BudgetStatusResponse{
			ID:          s.Budget.ID,
			Category:    s.Budget.Category,
			Month:       s.Budget.Month,
			LimitAmount: s.Budget.LimitAmount.StringFixed(2),
			Spent:       s.Spent.StringFixed(2),
			Remaining:   s.Remaining.StringFixed(2),
			Utilization: s.Utilization.StringFixed(1),
			State:       s.State,
		})
	}

	c.JSON(http.StatusOK, response)
}
