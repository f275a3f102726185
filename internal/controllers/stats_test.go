package controllers_test

import (
	"net/http"
	"time"

	"github.com/finsmart/backend/internal/analytics"
	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/internal/types"
	"github.com/finsmart/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Without any records all totals are zero, not an error.
func (suite *TestSuiteStandard) TestSummaryEmpty() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/summary", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "0.00", response.TotalIncome)
	assert.Equal(suite.T(), "0.00", response.TotalExpenses)
	assert.Equal(suite.T(), "0.00", response.Balance)
	assert.Equal(suite.T(), 0, response.IncomeCount)
	assert.Equal(suite.T(), 0, response.ExpenseCount)
}

func (suite *TestSuiteStandard) TestSummary() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	suite.createIncome(co, auth, controllers.IncomeEditable{
		Amount: decimal.NewFromFloat(2000),
		Source: "Salary",
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(500.5),
		Category: "Rent",
		Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(299.5),
		Category: "Groceries",
		Date:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/summary", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.SummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "2000.00", response.TotalIncome)
	assert.Equal(suite.T(), "800.00", response.TotalExpenses)
	assert.Equal(suite.T(), "1200.00", response.Balance)
	assert.Equal(suite.T(), 1, response.IncomeCount)
	assert.Equal(suite.T(), 2, response.ExpenseCount)
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(100),
		Category: "Groceries",
		Date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(250),
		Category: "Rent",
		Date:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(10),
		Date:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/categories", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.CategoryBreakdownResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Largest category first, expenses without a category are grouped
	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Rent", response.Data[0].Category)
		assert.Equal(suite.T(), "250.00", response.Data[0].Total)
		assert.Equal(suite.T(), "Groceries", response.Data[1].Category)
		assert.Equal(suite.T(), analytics.Uncategorized, response.Data[2].Category)
	}
}

func (suite *TestSuiteStandard) TestMonthlyEvolution() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	suite.createIncome(co, auth, controllers.IncomeEditable{
		Amount: decimal.NewFromFloat(2000),
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(500),
		Date:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(300),
		Date:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/evolution", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.MonthlyEvolutionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.True(suite.T(), response.Data[0].Month.Equal(types.NewMonth(2024, 1)))
		assert.Equal(suite.T(), "2000.00", response.Data[0].Income)
		assert.Equal(suite.T(), "500.00", response.Data[0].Expense)
		assert.Equal(suite.T(), "1500.00", response.Data[0].Balance)

		assert.True(suite.T(), response.Data[1].Month.Equal(types.NewMonth(2024, 2)))
		assert.Equal(suite.T(), "0.00", response.Data[1].Income)
		assert.Equal(suite.T(), "300.00", response.Data[1].Expense)
		assert.Equal(suite.T(), "-300.00", response.Data[1].Balance)
	}
}

func (suite *TestSuiteStandard) TestBudgetStatuses() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	budget := suite.createBudget(co, auth, controllers.BudgetEditable{
		Category:    "Groceries",
		LimitAmount: decimal.NewFromFloat(1000),
		Month:       types.NewMonth(2024, 1),
	})

	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(800),
		Category: "Groceries",
		Date:     time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
	})

	// Outside the budget month, must not count
	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(500),
		Category: "Groceries",
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/budgets", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.BudgetStatusListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		status := response.Data[0]
		assert.Equal(suite.T(), budget.Data.ID, status.ID)
		assert.Equal(suite.T(), "800.00", status.Spent)
		assert.Equal(suite.T(), "200.00", status.Remaining)
		assert.Equal(suite.T(), "80.0", status.Utilization)
		assert.Equal(suite.T(), analytics.BudgetStateWarning, status.State)
	}
}

func (suite *TestSuiteStandard) TestStatsInvalidDateFilter() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/stats/summary?from=not-a-date", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}
