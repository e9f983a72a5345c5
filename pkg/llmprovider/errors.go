package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrEmptyResponse indicates the model returned no content
	ErrEmptyResponse = errors.New("empty LLM response")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ParseError is returned by GenerateJSON when the model output is not valid
// JSON. RawContent carries the exact model output for diagnosis.
type ParseError struct {
	RawContent string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v; raw content: %q", e.Err, e.RawContent)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
