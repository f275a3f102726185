package controllers

import (
	"net/http"
	"time"

	"github.com/finsmart/backend/internal/httputil"
	"github.com/finsmart/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetExpenses)
	r.POST("", co.CreateExpense)
	r.PATCH("/:id", co.UpdateExpense)
	r.DELETE("/:id", co.DeleteExpense)
}

// ExpenseEditable represents all user configurable parameters of an expense.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.50"`
	Category    string          `json:"category" example:"Groceries"`
	Description string          `json:"description" example:"Weekly shopping"`
	Date        time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:      userID,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

// DateRangeFilter is the optional date range for list endpoints. Both
// bounds are inclusive.
type DateRangeFilter struct {
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1" example:"2024-01-01"`
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1" example:"2024-12-31"`
}

// bounds returns the filter as optional time bounds, with the end of the
// "to" day included.
func (f DateRangeFilter) bounds() (from, to *time.Time) {
	if !f.From.IsZero() {
		from = &f.From
	}

	if !f.To.IsZero() {
		endOfDay := f.To.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	return from, to
}

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"`
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"`
}

// GetExpenses returns the expenses of the authenticated user, newest
// first, optionally limited to a date range.
func (co Controller) GetExpenses(c *gin.Context) {
	var filter DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	from, to := filter.bounds()
	expenses, err := models.ExpensesForUser(models.DB, userID(c), from, to)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// CreateExpense creates a new expense for the authenticated user.
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	expense := editable.model(userID(c))
	if err := models.DB.Create(&expense).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// UpdateExpense updates an expense of the authenticated user. Fields that
// are not sent keep their values.
func (co Controller) UpdateExpense(c *gin.Context) {
	expense, ok := co.expenseByID(c)
	if !ok {
		return
	}

	editable := ExpenseEditable{
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        expense.Date,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	expense.Amount = editable.Amount
	expense.Category = editable.Category
	expense.Description = editable.Description
	expense.Date = editable.Date

	if err := models.DB.Save(&expense).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// DeleteExpense deletes an expense of the authenticated user.
func (co Controller) DeleteExpense(c *gin.Context) {
	expense, ok := co.expenseByID(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// expenseByID loads the expense from the id URL parameter, scoped to the
// authenticated user. On failure, the error response has been written.
func (co Controller) expenseByID(c *gin.Context) (models.Expense, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return models.Expense{}, false
	}

	var expense models.Expense
	err = models.DB.Where(&models.Expense{UserID: userID(c)}).First(&expense, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Expense{}, false
	}

	return expense, true
}
