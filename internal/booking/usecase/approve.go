package usecase

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/metrics"
)

// Approve lets the item owner decide a waiting booking, exactly once.
// The row is locked for the duration of the transaction and the write is a
// compare-and-set on WAITING, so two concurrent decisions cannot both win.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, input booking.ApproveInput) (booking.Booking, error) {
	to := booking.StatusRejected
	if input.Approved {
		to = booking.StatusApproved
	}

	var out booking.Booking
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		b, err := uc.repo.GetOneBooking(ctx, repo.GetOneBookingOptions{ID: input.BookingID, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Approve GetOneBooking: %v", err)
			return err
		}
		// Callers other than the owner must not learn the booking exists.
		if b.ID == 0 || b.Item.OwnerID != sc.UserID {
			return fmt.Errorf("%w: %d", booking.ErrBookingNotFound, input.BookingID)
		}
		if b.Status != booking.StatusWaiting {
			return booking.ErrAlreadyDecided
		}

		updated, err := uc.repo.UpdateBookingStatus(ctx, repo.UpdateBookingStatusOptions{
			ID:   b.ID,
			From: booking.StatusWaiting,
			To:   to,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Approve UpdateBookingStatus: %v", err)
			return err
		}
		if !updated {
			return booking.ErrAlreadyDecided
		}

		b.Status = to
		out = b
		return nil
	})
	if err != nil {
		return booking.Booking{}, err
	}

	if input.Approved {
		uc.metrics.BookingEvent(metrics.BookingApproved)
	} else {
		uc.metrics.BookingEvent(metrics.BookingRejected)
	}
	return out, nil
}
