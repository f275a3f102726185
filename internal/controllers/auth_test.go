package controllers_test

import (
	"net/http"
	"testing"

	"github.com/finsmart/backend/internal/controllers"
	"github.com/finsmart/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegisterUser() {
	co := suite.controller()

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterUserRequest{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "a test password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.AuthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "ada@example.com", response.User.Email)

	// The password hash must never leak into responses
	assert.NotContains(suite.T(), recorder.Body.String(), "PasswordHash")
	assert.NotContains(suite.T(), recorder.Body.String(), "passwordHash")
}

func (suite *TestSuiteStandard) TestRegisterUserInvalid() {
	co := suite.controller()

	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"missing email", controllers.RegisterUserRequest{Name: "Ada", Password: "a test password"}},
		{"invalid email", controllers.RegisterUserRequest{Name: "Ada", Email: "not-an-email", Password: "a test password"}},
		{"short password", controllers.RegisterUserRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(co, t, http.MethodPost, "/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterUserDuplicateEmail() {
	co := suite.controller()
	suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/auth/register", controllers.RegisterUserRequest{
		Name:     "Ada again",
		Email:    "ada@example.com",
		Password: "a test password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	assert.Contains(suite.T(), recorder.Body.String(), "already exists")
}

func (suite *TestSuiteStandard) TestLogin() {
	co := suite.controller()
	suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "ada@example.com",
		Password: "a test password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.AuthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.NotEmpty(suite.T(), response.Token)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	co := suite.controller()
	suite.registerTestUser(co, "ada@example.com")

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "ada@example.com",
		Password: "not the password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestLoginUnknownUser() {
	co := suite.controller()

	recorder := test.Request(co, suite.T(), http.MethodPost, "/v1/auth/login", controllers.LoginRequest{
		Email:    "nobody@example.com",
		Password: "a test password",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	co := suite.controller()

	recorder := test.Request(co, suite.T(), http.MethodGet, "/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)

	recorder = test.Request(co, suite.T(), http.MethodGet, "/v1/expenses", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
}
