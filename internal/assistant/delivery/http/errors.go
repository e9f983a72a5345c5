package http

import (
	"errors"

	"sales-coach-assistant/internal/assistant"
	pkgErrors "sales-coach-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Handler failures never reach this point; they ride inside the response
// envelope with a 200.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, "message is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
