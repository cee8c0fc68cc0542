package usecase

import (
	"time"

	"shareit/internal/booking"
	"shareit/internal/comment/repository"
	"shareit/internal/item"
	"shareit/internal/user"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of comment.UseCase.
type implUseCase struct {
	repo      repository.Repository
	userUC    user.UseCase
	itemUC    item.UseCase
	bookingUC booking.UseCase
	l         log.Logger
	now       func() time.Time
}

// New creates a new comment UseCase implementation.
func New(
	repo repository.Repository,
	userUC user.UseCase,
	itemUC item.UseCase,
	bookingUC booking.UseCase,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:      repo,
		userUC:    userUC,
		itemUC:    itemUC,
		bookingUC: bookingUC,
		l:         l,
		now:       time.Now,
	}
}
