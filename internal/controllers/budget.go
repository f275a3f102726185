package controllers

import (
	"net/http"

	"github.com/finsmart/backend/internal/httputil"
	"github.com/finsmart/backend/internal/models"
	"github.com/finsmart/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetBudgets)
	r.POST("", co.CreateBudget)
	r.PATCH("/:id", co.UpdateBudget)
	r.DELETE("/:id", co.DeleteBudget)
}

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Category    string          `json:"category" example:"Groceries"`
	LimitAmount decimal.Decimal `json:"limitAmount" example:"400.00"`
	Month       types.Month     `json:"month" example:"2024-01"`
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:      userID,
		Category:    editable.Category,
		LimitAmount: editable.LimitAmount,
		Month:       editable.Month,
	}
}

type BudgetListResponse struct {
	Data []models.Budget `json:"data"`
}

type BudgetResponse struct {
	Data models.Budget `json:"data"`
}

// GetBudgets returns the budgets of the authenticated user, newest month
// first.
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := models.BudgetsForUser(models.DB, userID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// CreateBudget creates a new budget for the authenticated user.
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget := editable.model(userID(c))
	if err := models.DB.Create(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: budget})
}

// UpdateBudget updates a budget of the authenticated user. Fields that
// are not sent keep their values.
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, ok := co.budgetByID(c)
	if !ok {
		return
	}

	editable := BudgetEditable{
		Category:    budget.Category,
		LimitAmount: budget.LimitAmount,
		Month:       budget.Month,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	budget.Category = editable.Category
	budget.LimitAmount = editable.LimitAmount
	budget.Month = editable.Month

	if err := models.DB.Save(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}

// DeleteBudget deletes a budget of the authenticated user.
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, ok := co.budgetByID(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&budget).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) budgetByID(c *gin.Context) (models.Budget, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return models.Budget{}, false
	}

	var budget models.Budget
	err = models.DB.Where(&models.Budget{UserID: userID(c)}).First(&budget, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Budget{}, false
	}

	return budget, true
}
