package http

import (
	"errors"

	"sales-coach-assistant/internal/rubric"
	pkgErrors "sales-coach-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, rubric.ErrConfigNotFound):
		return pkgErrors.NewHTTPError(404, "rubric config not found")
	case errors.Is(err, rubric.ErrNoActiveConfig):
		return pkgErrors.NewHTTPError(404, "no active rubric config")
	case errors.Is(err, rubric.ErrNotDraft):
		return pkgErrors.NewHTTPError(409, "rubric config is no longer editable")
	case errors.Is(err, rubric.ErrAlreadyActivated):
		return pkgErrors.NewHTTPError(409, "rubric config was already activated")
	case errors.Is(err, rubric.ErrInvalidWeights):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, rubric.ErrEmptyName):
		return pkgErrors.NewHTTPError(400, "config name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
