package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/finsmart/backend/internal/ai"
	"github.com/finsmart/backend/internal/analytics"
	"github.com/finsmart/backend/internal/httputil"
	"github.com/finsmart/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterAIRoutes registers the conversational routes with the
// RouterGroup that is passed.
func (co Controller) RegisterAIRoutes(r *gin.RouterGroup) {
	r.POST("/chat", co.Chat)
	r.GET("/analysis", co.GetAnalysis)
	r.POST("/categorize", co.CategorizeTransaction)
}

const chatSystemPrompt = `You are "FinBot", a friendly personal finance assistant.

YOUR MISSION:
- Help the user improve their financial health
- Give practical advice based on their real data
- Point out spending patterns and saving opportunities
- Explain finance in simple terms

RULES:
- No specific investment advice on stocks or cryptocurrencies
- Be constructive and motivating, never critical
- Be specific with numbers
- Keep answers concise, at most four short paragraphs
- Base every piece of advice on the data below

CURRENT DATA:
%s`

const analysisSystemPrompt = `You are a certified financial advisor. Analyze the user's financial data and provide:
1. CURRENT STATE (2-3 sentences)
2. KEY FINDINGS (3-4 bullet points on spending patterns and saving opportunities)
3. THREE ACTIONABLE RECOMMENDATIONS, prioritized by impact, with concrete numbers where possible

Keep exactly this structure and be motivating but honest.`

const analysisEmptyDataMessage = "You do not have enough financial data for an analysis yet. Start by adding your expenses and incomes!"

type ChatRequest struct {
	Message string       `json:"message" binding:"required"`
	History []ai.Message `json:"history"`
}

type ChatResponse struct {
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

type AnalysisResponse struct {
	Analysis  string              `json:"analysis"`
	RiskLevel analytics.RiskLevel `json:"riskLevel,omitempty" example:"low"`
}

// userFinancialContext compiles the context block for the authenticated
// user. It is rebuilt on every request so it always reflects the live
// data. On failure, the error response has been written.
func (co Controller) userFinancialContext(c *gin.Context) (context string, totals analytics.Totals, empty, ok bool) {
	expenses, err := models.ExpensesForUser(models.DB, userID(c), nil, nil)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return "", analytics.Totals{}, false, false
	}

	incomes, err := models.IncomesForUser(models.DB, userID(c), nil, nil)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return "", analytics.Totals{}, false, false
	}

	budgets, err := models.BudgetsForUser(models.DB, userID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return "", analytics.Totals{}, false, false
	}

	return analytics.CompileContext(expenses, incomes, budgets),
		analytics.ComputeTotals(expenses, incomes),
		len(expenses) == 0 && len(incomes) == 0,
		true
}

// Chat answers a user message, grounded in their financial data and the
// conversation history sent by the client.
func (co Controller) Chat(c *gin.Context) {
	var request ChatRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	context, _, _, ok := co.userFinancialContext(c)
	if !ok {
		return
	}

	conversation := append(request.History, ai.Message{Role: ai.RoleUser, Content: request.Message})

	text, err := co.AI.Generate(c.Request.Context(), fmt.Sprintf(chatSystemPrompt, context), conversation)
	if err != nil {
		co.handleProviderError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Message: text,
		History: append(conversation, ai.Message{Role: ai.RoleAssistant, Content: text}),
	})
}

// GetAnalysis generates a complete financial analysis for the
// authenticated user.
func (co Controller) GetAnalysis(c *gin.Context) {
	context, totals, empty, ok := co.userFinancialContext(c)
	if !ok {
		return
	}

	// Without data there is nothing to analyze, so the provider is not
	// invoked at all.
	if empty {
		c.JSON(http.StatusOK, AnalysisResponse{Analysis: analysisEmptyDataMessage})
		return
	}

	conversation := []ai.Message{{
		Role:    ai.RoleUser,
		Content: fmt.Sprintf("%s\n\nGenerate a complete financial analysis.", context),
	}}

	text, err := co.AI.Generate(c.Request.Context(), analysisSystemPrompt, conversation)
	if err != nil {
		co.handleProviderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		Analysis:  text,
		RiskLevel: analytics.RiskFromSavingsRate(analytics.SavingsRate(totals)),
	})
}

// handleProviderError writes the error response for a failed provider
// call. Quota exhaustion keeps its remediation message, everything else
// is reported as a generic provider failure.
func (co Controller) handleProviderError(c *gin.Context, err error) {
	log.Error().Err(err).Str("provider", co.AI.ProviderName()).Msg("conversational request failed")

	if errors.Is(err, ai.ErrQuotaExceeded) {
		httputil.NewError(c, http.StatusPaymentRequired, err)
		return
	}

	httputil.NewError(c, http.StatusBadGateway, errors.New("the AI provider could not process the request. Please try again later"))
}
