package usecase

import (
	"shareit/internal/item/repository"
	"shareit/internal/user"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo   repository.Repository
	userUC user.UseCase
	l      log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, userUC user.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		userUC: userUC,
		l:      l,
	}
}
