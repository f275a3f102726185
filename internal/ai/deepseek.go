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
	deepseekBaseURL      = "https://api.deepseek.com/v1"
	deepseekDefaultModel = "deepseek-chat"
)

// Deepseek talks to the DeepSeek chat completion API. The system prompt
// is injected as the leading message of the conversation.
type Deepseek struct {
	apiKey string
	model  string

	// BaseURL can be changed to point at a test server.
	BaseURL string
}

// NewDeepseek returns a Deepseek provider. An empty model selects the
// default chat model.
func NewDeepseek(apiKey, model string) *Deepseek {
	if model == "" {
		model = deepseekDefaultModel
	}

	return &Deepseek{
		apiKey:  apiKey,
		model:   model,
		BaseURL: deepseekBaseURL,
	}
}

func (d *Deepseek) Name() string {
	return "deepseek"
}

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Temperature float64           `json:"temperature,omitempty"`
}

type deepseekResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (d *Deepseek) BuildRequest(ctx context.Context, systemPrompt string, conversation []Message) (*http.Request, error) {
	messages := make([]deepseekMessage, 0, len(conversation)+1)
	messages = append(messages, deepseekMessage{Role: "system", Content: systemPrompt})

	for _, message := range conversation {
		role := RoleUser
		if message.Role == RoleAssistant {
			role = RoleAssistant
		}

		messages = append(messages, deepseekMessage{Role: role, Content: message.Content})
	}

	body, err := json.Marshal(deepseekRequest{
		Model:       d.model,
		Messages:    messages,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/chat/completions", d.BaseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.apiKey)

	return req, nil
}

func (d *Deepseek) ExtractText(body []byte) (string, error) {
	var response deepseekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return response.Choices[0].Message.Content, nil
}

// QuotaExhausted reports the DeepSeek insufficient balance signal, which
// is an HTTP 402 with a message naming the account balance.
func (d *Deepseek) QuotaExhausted(statusCode int, body []byte) bool {
	return statusCode == http.StatusPaymentRequired ||
		strings.Contains(strings.ToLower(string(body)), "insufficient balance")
}
