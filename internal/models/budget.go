package models

import (
	"strings"

	"github.com/finsmart/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending limit for one category in one month.
//
// One budget is expected per (user, category, month), but this is not
// enforced: duplicates are evaluated independently.
type Budget struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId"`
	User        User            `json:"-"`
	Category    string          `json:"category"`
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(20,8)"`
	Month       types.Month     `json:"month"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.LimitAmount.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if b.Month.IsZero() {
		return ErrBudgetMonthRequired
	}

	return nil
}

// BudgetsForUser returns all budgets of a user, newest month first.
func BudgetsForUser(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := db.Where(&Budget{UserID: userID}).Order("month desc").Find(&budgets).Error
	return budgets, err
}
