package usecase

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
)

// Detail is visible to the booker and the item owner only.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (booking.Booking, error) {
	b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBooking: %v", err)
		return booking.Booking{}, err
	}
	if b.ID == 0 || (b.Booker.ID != sc.UserID && b.Item.OwnerID != sc.UserID) {
		return booking.Booking{}, fmt.Errorf("%w: %d", booking.ErrBookingNotFound, id)
	}
	return b, nil
}

// ListForBooker lists the caller's own bookings, newest start first.
func (uc *implUseCase) ListForBooker(ctx context.Context, sc model.Scope, input booking.ListInput) ([]booking.Booking, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{BookerID: sc.UserID})
}

// ListForOwner lists bookings of the caller's items, newest start first.
func (uc *implUseCase) ListForOwner(ctx context.Context, sc model.Scope, input booking.ListInput) ([]booking.Booking, error) {
	return uc.list(ctx, sc, input, repo.ListBookingsOptions{OwnerID: sc.UserID})
}

func (uc *implUseCase) list(ctx context.Context, sc model.Scope, input booking.ListInput, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return nil, err
	}
	state, err := booking.ParseState(input.State)
	if err != nil {
		return nil, err
	}

	uc.applyState(&opt, state)
	opt.Limit = input.Paging.Limit()
	opt.Offset = input.Paging.Offset()

	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.list ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

// applyState translates a state filter into bounds evaluated at call time.
func (uc *implUseCase) applyState(opt *repo.ListBookingsOptions, state booking.State) {
	now := uc.now()
	switch state {
	case booking.StateCurrent:
		opt.StartBefore = now
		opt.EndAfter = now
	case booking.StatePast:
		opt.EndBefore = now
	case booking.StateFuture:
		opt.StartAfter = now
	case booking.StateWaiting:
		opt.Status = booking.StatusWaiting
	case booking.StateRejected:
		opt.Status = booking.StatusRejected
	}
}
