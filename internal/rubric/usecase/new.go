package usecase

import (
	"sales-coach-assistant/internal/rubric/repository"
	"sales-coach-assistant/pkg/log"
)

// implUseCase is the private implementation of rubric.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new rubric UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
