package usecase

import (
	"time"

	"shareit/internal/item"
	"shareit/internal/request/repository"
	"shareit/internal/user"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of request.UseCase.
type implUseCase struct {
	repo   repository.Repository
	userUC user.UseCase
	itemUC item.UseCase
	l      log.Logger
	now    func() time.Time
}

// New creates a new request UseCase implementation.
func New(repo repository.Repository, userUC user.UseCase, itemUC item.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		userUC: userUC,
		itemUC: itemUC,
		l:      l,
		now:    time.Now,
	}
}
