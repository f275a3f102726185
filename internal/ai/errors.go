package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrQuotaExceeded is returned when the provider rejects a request
	// because the account has no credit left. It is never retried.
	ErrQuotaExceeded = errors.New("the AI provider account has insufficient credit. Add credit to the account or configure a different provider")

	// ErrEmptyResponse is returned when the provider answered the request
	// but the response contained no assistant text.
	ErrEmptyResponse = errors.New("the AI provider returned an empty response")

	// ErrProviderUnknown is returned at startup when AI_PROVIDER names a
	// provider that does not exist.
	ErrProviderUnknown = errors.New("unknown AI provider")

	// ErrCredentialMissing is returned at startup when the API key for the
	// selected provider is not configured.
	ErrCredentialMissing = errors.New("the API key for the selected AI provider is not configured")
)

// transientError marks a failure that is worth exactly one retry, e.g. a
// network error or a 5xx response.
type transientError struct {
	err error
}

func (t transientError) Error() string {
	return t.err.Error()
}

func (t transientError) Unwrap() error {
	return t.err
}

func isTransient(err error) bool {
	var t transientError
	return errors.As(err, &t)
}

// providerError wraps any other provider failure with the provider name
// so callers get a useful, generic message.
func providerError(name string, err error) error {
	return fmt.Errorf("provider %s: %w", name, err)
}
