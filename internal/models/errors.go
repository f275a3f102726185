package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative         = errors.New("amounts must be zero or positive")
	ErrBudgetLimitNotPositive = errors.New("budget limits must be larger than zero")
	ErrBudgetMonthRequired    = errors.New("budgets must specify the month they apply to")
	ErrEmailAlreadyRegistered = errors.New("a user with this email address already exists")
)
