package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income represents money a user received, e.g. a salary payment.
type Income struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId"`
	User        User            `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Source      string          `json:"source"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (i *Income) BeforeSave(_ *gorm.DB) error {
	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	i.Source = strings.TrimSpace(i.Source)
	i.Description = strings.TrimSpace(i.Description)

	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (i *Income) AfterFind(_ *gorm.DB) error {
	i.Date = i.Date.In(time.UTC)
	return nil
}

// IncomesForUser returns all incomes of a user, newest first.
// The from and to bounds are optional and inclusive.
func IncomesForUser(db *gorm.DB, userID uuid.UUID, from, to *time.Time) ([]Income, error) {
	query := db.Where(&Income{UserID: userID}).Order("date desc")

	if from != nil {
		query = query.Where("date >= ?", from.In(time.UTC))
	}

	if to != nil {
		query = query.Where("date <= ?", to.In(time.UTC))
	}

	var incomes []Income
	err := query.Find(&incomes).Error
	return incomes, err
}
