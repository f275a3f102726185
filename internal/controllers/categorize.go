package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/finsmart/backend/internal/ai"
	"github.com/finsmart/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Transactions are categorized into a fixed list per transaction type.
// Anything the provider makes up outside the list falls back to Other.
var (
	expenseCategories = []string{
		"Food", "Transport", "Housing", "Utilities",
		"Entertainment", "Health", "Education", "Clothing", "Other",
	}
	incomeCategories = []string{
		"Salary", "Freelance", "Business", "Investments", "Gift", "Other",
	}
)

const fallbackCategory = "Other"

const categorizeSystemPrompt = `You are an expert in personal finance.

Categorize the following transaction into EXACTLY ONE of these categories:
%s

Respond ONLY with JSON in this format:
{
    "category": "category_name",
    "confidence": 0.95,
    "reasoning": "brief explanation"
}`

type CategorizeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
}

type CategorizeResponse struct {
	Category   string  `json:"category" example:"Food"`
	Confidence float64 `json:"confidence" example:"0.95"`
	Reasoning  string  `json:"reasoning" example:"Groceries are food spending"`
}

// CategorizeTransaction suggests a category for a transaction. The
// suggestion is always one of the fixed category lists; a provider
// failure degrades to the fallback category instead of an error.
func (co Controller) CategorizeTransaction(c *gin.Context) {
	var request CategorizeRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	categories := expenseCategories
	if request.Type == "income" {
		categories = incomeCategories
	}

	prompt := fmt.Sprintf("Transaction:\n- Description: %s\n- Amount: $%s\n- Type: %s\n\nCategorize it.",
		request.Description, request.Amount.StringFixed(2), request.Type)

	text, err := co.AI.Generate(
		c.Request.Context(),
		fmt.Sprintf(categorizeSystemPrompt, strings.Join(categories, ", ")),
		[]ai.Message{{Role: ai.RoleUser, Content: prompt}},
	)
	if err != nil {
		log.Warn().Err(err).Str("provider", co.AI.ProviderName()).Msg("categorization failed, using fallback")

		c.JSON(http.StatusOK, CategorizeResponse{
			Category:   fallbackCategory,
			Confidence: 0.5,
			Reasoning:  "Automatic categorization is unavailable right now",
		})
		return
	}

	response := parseCategorization(text)
	if !slices.Contains(categories, response.Category) {
		response.Category = fallbackCategory
	}

	c.JSON(http.StatusOK, response)
}

// parseCategorization reads the provider's JSON answer, tolerating a
// markdown code fence around it. Missing fields get defaults.
func parseCategorization(text string) CategorizeResponse {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	}

	response := CategorizeResponse{}
	_ = json.Unmarshal([]byte(strings.TrimSpace(text)), &response)

	if response.Confidence == 0 {
		response.Confidence = 0.8
	}

	if response.Reasoning == "" {
		response.Reasoning = "Automatic categorization"
	}

	return response
}
