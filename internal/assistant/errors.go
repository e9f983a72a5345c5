package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyMessage = errors.New("message is empty")
)
