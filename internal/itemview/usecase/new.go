package usecase

import (
	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/item"
	"shareit/internal/user"
	"shareit/pkg/log"
)

// implUseCase is the private implementation of itemview.UseCase. It owns no
// storage and composes the item, booking and comment use cases.
type implUseCase struct {
	itemUC    item.UseCase
	bookingUC booking.UseCase
	commentUC comment.UseCase
	userUC    user.UseCase
	l         log.Logger
}

// New creates a new itemview UseCase implementation.
func New(
	itemUC item.UseCase,
	bookingUC booking.UseCase,
	commentUC comment.UseCase,
	userUC user.UseCase,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		itemUC:    itemUC,
		bookingUC: bookingUC,
		commentUC: commentUC,
		userUC:    userUC,
		l:         l,
	}
}
