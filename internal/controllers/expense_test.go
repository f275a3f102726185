package controllers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createExpense(co controllers.Controller, auth map[string]string, editable controllers.ExpenseEditable) controllers.ExpenseResponse {
	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/expenses", editable, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestExpenseCreateAndList() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	created := suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:      decimal.NewFromFloat(14.5),
		Category:    "Groceries",
		Description: "Weekly shopping",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), "Groceries", created.Data.Category)
	assert.True(suite.T(), created.Data.Amount.Equal(decimal.NewFromFloat(14.5)))

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/expenses", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	if assert.Len(suite.T(), list.Data, 1) {
		assert.Equal(suite.T(), created.Data.ID, list.Data[0].ID)
	}
}

func (suite *TestSuiteStandard) TestExpenseCreateNegativeAmount() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/expenses", controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(-5),
	}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestExpenseListDateRange() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(10),
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	february := suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(20),
		Date:   time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/expenses?from=2024-02-01&to=2024-02-29", nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)

	// The "to" day is included completely
	if assert.Len(suite.T(), list.Data, 1) {
		assert.Equal(suite.T(), february.Data.ID, list.Data[0].ID)
	}
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	created := suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount:   decimal.NewFromFloat(10),
		Category: "Groceries",
		Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(co, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), map[string]any{
		"category": "Restaurants",
	}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)

	// Fields that were not sent keep their values
	assert.Equal(suite.T(), "Restaurants", updated.Data.Category)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(10)))
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	created := suite.createExpense(co, auth, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(10),
	})

	recorder := test.Request(co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestExpenseInvalidID() {
	co := suite.controller()
	auth := suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodPatch, "/v1/expenses/not-a-uuid", map[string]any{}, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)

	recorder = test.Request(co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", uuid.New()), nil, auth)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

// Users must never see or modify records of other users.
func (suite *TestSuiteStandard) TestExpenseOwnership() {
	co := suite.controller()
	ada := suite.registerTestUser(co, "ada@example.com")
	grace := suite.registerTestUser(co, "grace@example.com")

	created := suite.createExpense(co, ada, controllers.ExpenseEditable{
		Amount: decimal.NewFromFloat(10),
	})

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/expenses", nil, grace)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	assert.Len(suite.T(), list.Data, 0)

	recorder = test.Request(co, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", created.Data.ID), nil, grace)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
