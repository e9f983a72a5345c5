package http

import (
	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc rubric.UseCase
}

// New creates a new HTTP handler for the rubric domain.
func New(l log.Logger, uc rubric.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
