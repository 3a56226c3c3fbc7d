package usecase

import (
	"reminder-ai/internal/reminder"
	"reminder-ai/internal/reminder/repository"
	"reminder-ai/pkg/datemath"
	pkgLog "reminder-ai/pkg/log"
)

// implUseCase is the private implementation of reminder.UseCase.
type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
}

var _ reminder.UseCase = (*implUseCase)(nil)

// New creates a new reminder UseCase implementation.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
	}
}
