package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/internal/types"
	"github.com/finsmart/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createBudget(co controllers.Controller, auth map[string]string, editable controllers.BudgetEditable) controllers.BudgetResponse {
	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/budgets", editable, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestBudgetCreateAndList() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	created := suite.createBudget(co, auth, controllers.BudgetEditable{
		Category:    "Groceries",
		LimitAmount: decimal.NewFromFloat(400),
		Month:       types.NewMonth(2024, 1),
	})

	assert.Equal(suite.T(), "Groceries", created.Data.Category)
	assert.True(suite.T(), created.Data.Month.Equal(types.NewMonth(2024, 1)))

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/budgets", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, 1)

	// The month round trips through JSON as "YYYY-MM"
	assert.Contains(suite.T(), recorder.Body.String(), `"month":"2024-01"`)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	// Missing month
	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/budgets", controllers.BudgetEditable{
		Category:    "Groceries",
		LimitAmount: decimal.NewFromFloat(400),
	}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	// Zero limit
	recorder = test.Request(co, suite.T(), http.MethodPost, "/v1/budgets", controllers.BudgetEditable{
		Category: "Groceries",
		Month:    types.NewMonth(2024, 1),
	}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetUpdateAndDelete() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	created := suite.createBudget(co, auth, controllers.BudgetEditable{
		Category:    "Groceries",
		LimitAmount: decimal.NewFromFloat(400),
		Month:       types.NewMonth(2024, 1),
	})

	recorder := test.Request(co, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", created.Data.ID), map[string]any{
		"limitAmount": "500",
	}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.True(suite.T(), updated.Data.LimitAmount.Equal(decimal.NewFromFloat(500)))
	assert.Equal(suite.T(), "Groceries", updated.Data.Category)

	recorder = test.Request(co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", created.Data.ID), nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}
