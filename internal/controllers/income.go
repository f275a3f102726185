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

// RegisterIncomeRoutes registers the routes for incomes with the
// RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetIncomes)
	r.POST("", co.CreateIncome)
	r.PATCH("/:id", co.UpdateIncome)
	r.DELETE("/:id", co.DeleteIncome)
}

// IncomeEditable represents all user configurable parameters of an income.
type IncomeEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"2500.00"`
	Source      string          `json:"source" example:"Salary"`
	Description string          `json:"description" example:"January paycheck"`
	Date        time.Time       `json:"date" example:"2024-01-01T00:00:00Z"`
}

func (editable IncomeEditable) model(userID uuid.UUID) models.Income {
	return models.Income{
		UserID:      userID,
		Amount:      editable.Amount,
		Source:      editable.Source,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type IncomeListResponse struct {
	Data []models.Income `json:"data"`
}

type IncomeResponse struct {
	Data models.Income `json:"data"`
}

// GetIncomes returns the incomes of the authenticated user, newest first,
// optionally limited to a date range.
func (co Controller) GetIncomes(c *gin.Context) {
	var filter DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	from, to := filter.bounds()
	incomes, err := models.IncomesForUser(models.DB, userID(c), from, to)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: incomes})
}

// CreateIncome creates a new income for the authenticated user.
func (co Controller) CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	income := editable.model(userID(c))
	if err := models.DB.Create(&income).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: income})
}

// UpdateIncome updates an income of the authenticated user. Fields that
// are not sent keep their values.
func (co Controller) UpdateIncome(c *gin.Context) {
	income, ok := co.incomeByID(c)
	if !ok {
		return
	}

	editable := IncomeEditable{
		Amount:      income.Amount,
		Source:      income.Source,
		Description: income.Description,
		Date:        income.Date,
	}

	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	income.Amount = editable.Amount
	income.Source = editable.Source
	income.Description = editable.Description
	income.Date = editable.Date

	if err := models.DB.Save(&income).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: income})
}

// DeleteIncome deletes an income of the authenticated user.
func (co Controller) DeleteIncome(c *gin.Context) {
	income, ok := co.incomeByID(c)
	if !ok {
		return
	}

	if err := models.DB.Delete(&income).Error; err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (co Controller) incomeByID(c *gin.Context) (models.Income, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return models.Income{}, false
	}

	var income models.Income
	err = models.DB.Where(&models.Income{UserID: userID(c)}).First(&income, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Income{}, false
	}

	return income, true
}
