package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents money spent by a user.
//
// The amount is always a non-negative magnitude, the fact that it
// is an expense is carried by the type, not by the sign.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId"`
	User        User            `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// ExpensesForUser returns all expenses of a user, newest first.
// The from and to bounds are optional and inclusive.
func ExpensesForUser(db *gorm.DB, userID uuid.UUID, from, to *time.Time) ([]Expense, error) {
	query := db.Where(&Expense{UserID: userID}).Order("date desc")

	if from != nil {
		query = query.Where("date >= ?", from.In(time.UTC))
	}

	if to != nil {
		query = query.Where("date <= ?", to.In(time.UTC))
	}

	var expenses []Expense
	err := query.Find(&expenses).Error
	return expenses, err
}
