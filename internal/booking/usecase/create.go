package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/metrics"
)

// Create books an item for the caller. Checks run in a fixed order, each
// with its own error, and nothing is written unless all pass.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input booking.CreateInput) (booking.Booking, error) {
	if input.Start.IsZero() || input.End.IsZero() {
		return booking.Booking{}, booking.ErrDatesRequired
	}

	var out booking.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		booker, err := uc.userUC.Detail(ctx, sc.UserID)
		if err != nil {
			return err
		}
		it, err := uc.itemUC.Detail(ctx, input.ItemID)
		if err != nil {
			return err
		}
		if !it.Available {
			return booking.ErrItemUnavailable
		}
		if it.OwnerID == booker.ID {
			return booking.ErrOwnItem
		}
		if !input.Start.Before(input.End) {
			return booking.ErrInvalidRange
		}
		if input.Start.Before(uc.now()) {
			return booking.ErrStartInPast
		}

		id, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
			ItemID:   it.ID,
			BookerID: booker.ID,
			Start:    input.Start,
			End:      input.End,
			Status:   booking.StatusWaiting,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
			return err
		}

		out = booking.Booking{
			ID:     id,
			Start:  input.Start,
			End:    input.End,
			Status: booking.StatusWaiting,
			Item:   booking.ItemRef{ID: it.ID, Name: it.Name, OwnerID: it.OwnerID},
			Booker: booking.UserRef{ID: booker.ID, Name: booker.Name},
		}
		return nil
	})
	if err != nil {
		return booking.Booking{}, err
	}

	uc.metrics.BookingEvent(metrics.BookingCreated)
	return out, nil
}
