package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	geminiDefaultModel = "gemini-2.0-flash"
)

// Gemini talks to the Google Gemini generateContent API. Unlike the chat
// completion shape, the system prompt goes into a dedicated instruction
// field and the assistant role is called "model".
type Gemini struct {
	apiKey string
	model  string

	// BaseURL can be changed to point at a test server.
	BaseURL string
}

// NewGemini returns a Gemini provider. An empty model selects the default
// model.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = geminiDefaultModel
	}

	return &Gemini{
		apiKey:  apiKey,
		model:   model,
		BaseURL: geminiBaseURL,
	}
}

func (g *Gemini) Name() string {
	return "gemini"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) BuildRequest(ctx context.Context, systemPrompt string, conversation []Message) (*http.Request, error) {
	contents := make([]geminiContent, 0, len(conversation))
	for _, message := range conversation {
		role := "user"
		if message.Role == RoleAssistant {
			role = "model"
		}

		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: message.Content}},
		})
	}

	request := geminiRequest{
		Contents: contents,
	}

	if systemPrompt != "" {
		request.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		}
	}

	request.GenerationConfig.Temperature = 0.7
	request.GenerationConfig.MaxOutputTokens = 1024

	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, g.model), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	return req, nil
}

func (g *Gemini) ExtractText(body []byte) (string, error) {
	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return text.String(), nil
}

// QuotaExhausted reports the Gemini quota signal, an HTTP 429 with status
// RESOURCE_EXHAUSTED in the error body.
func (g *Gemini) QuotaExhausted(statusCode int, body []byte) bool {
	return statusCode == http.StatusTooManyRequests &&
		strings.Contains(string(body), "RESOURCE_EXHAUSTED")
}
