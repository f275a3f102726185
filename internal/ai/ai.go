// Package ai dispatches conversational requests to a configured AI
// provider and classifies its failures.
//
// Providers are interchangeable: each one only knows how to shape an HTTP
// request for a conversation and how to read the assistant text out of the
// response. Everything else, including retries and failure classification,
// is handled by the Client.
package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Roles for conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation, oldest first.
type Message struct {
	Role    string `json:"role" binding:"omitempty,oneof=user assistant"`
	Content string `json:"content"`
}

// Provider is the capability set a conversational backend implements.
type Provider interface {
	// Name returns the provider identifier used in configuration and logs.
	Name() string

	// BuildRequest shapes the HTTP request for a conversation. The system
	// prompt is injected in a provider specific way.
	BuildRequest(ctx context.Context, systemPrompt string, conversation []Message) (*http.Request, error)

	// ExtractText returns the assistant text from a successful response body.
	ExtractText(body []byte) (string, error)

	// QuotaExhausted reports whether an error response is the provider's
	// signal that the account has no credit or quota left.
	QuotaExhausted(statusCode int, body []byte) bool
}

// Client invokes the configured provider. It holds no state between
// calls, every Generate call is independent.
type Client struct {
	provider   Provider
	httpClient *http.Client
}

// NewClient returns a Client for the provider.
func NewClient(provider Provider) *Client {
	return &Client{
		provider: provider,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ProviderName returns the name of the configured provider.
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// Generate sends the conversation to the provider and returns the
// assistant text.
//
// Quota failures are returned as ErrQuotaExceeded immediately. Transient
// failures are retried exactly once. Malformed responses are returned as
// is and not retried.
func (c *Client) Generate(ctx context.Context, systemPrompt string, conversation []Message) (string, error) {
	text, err := c.generate(ctx, systemPrompt, conversation)
	if err == nil || !isTransient(err) {
		return text, err
	}

	log.Warn().Err(err).Str("provider", c.provider.Name()).Msg("transient provider failure, retrying once")

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Second):
	}

	return c.generate(ctx, systemPrompt, conversation)
}

func (c *Client) generate(ctx context.Context, systemPrompt string, conversation []Message) (string, error) {
	req, err := c.provider.BuildRequest(ctx, systemPrompt, conversation)
	if err != nil {
		return "", providerError(c.provider.Name(), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transientError{providerError(c.provider.Name(), err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transientError{providerError(c.provider.Name(), err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.provider.QuotaExhausted(resp.StatusCode, body) {
			return "", fmt.Errorf("%w (provider %s)", ErrQuotaExceeded, c.provider.Name())
		}

		err := providerError(c.provider.Name(), fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body))
		if resp.StatusCode >= 500 {
			return "", transientError{err}
		}

		return "", err
	}

	text, err := c.provider.ExtractText(body)
	if err != nil {
		return "", providerError(c.provider.Name(), err)
	}

	if text == "" {
		return "", providerError(c.provider.Name(), ErrEmptyResponse)
	}

	return text, nil
}
