// Package controllers implements the HTTP handlers for the FinSmart
// backend.
package controllers

import (
	"github.com/finsmart/backend/internal/ai"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies for all request handlers. The AI
// client is created once at startup and passed in explicitly.
type Controller struct {
	JWTSecret []byte
	AI        *ai.Client
}

// RegisterRoutes attaches all API routes to the RouterGroup that is
// passed. Everything except registration and login requires an
// authenticated user.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", co.RegisterUser)
		auth.POST("/login", co.Login)
	}

	authenticated := r.Group("", co.RequireAuth)

	co.RegisterExpenseRoutes(authenticated.Group("/expenses"))
	co.RegisterIncomeRoutes(authenticated.Group("/incomes"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterStatsRoutes(authenticated.Group("/stats"))
	co.RegisterAIRoutes(authenticated.Group("/ai"))
}
