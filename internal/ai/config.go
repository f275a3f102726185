package ai

import (
	"fmt"
	"os"
)

// Environment variable names for the provider configuration.
const (
	EnvProvider    = "AI_PROVIDER"
	EnvModel       = "AI_MODEL"
	EnvDeepseekKey = "DEEPSEEK_API_KEY"
	EnvGeminiKey   = "GEMINI_API_KEY"
)

// NewClientFromEnv builds the Client for the provider selected by
// AI_PROVIDER, defaulting to deepseek.
//
// A missing API key for the selected provider is an error. It is checked
// here, once at startup, so that requests never fail on configuration.
func NewClientFromEnv() (*Client, error) {
	name, ok := os.LookupEnv(EnvProvider)
	if !ok {
		name = "deepseek"
	}

	model := os.Getenv(EnvModel)

	switch name {
	case "deepseek":
		apiKey, ok := os.LookupEnv(EnvDeepseekKey)
		if !ok || apiKey == "" {
			return nil, fmt.Errorf("%w: %s must be set", ErrCredentialMissing, EnvDeepseekKey)
		}

		return NewClient(NewDeepseek(apiKey, model)), nil

	case "gemini":
		apiKey, ok := os.LookupEnv(EnvGeminiKey)
		if !ok || apiKey == "" {
			return nil, fmt.Errorf("%w: %s must be set", ErrCredentialMissing, EnvGeminiKey)
		}

		return NewClient(NewGemini(apiKey, model)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrProviderUnknown, name)
}
