package usecase

import (
	"context"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

// Windows returns the last and next booking of each item. Items without
// bookings map to an empty Window.
func (uc *implUseCase) Windows(ctx context.Context, itemIDs []int64) (map[int64]booking.Window, error) {
	windows, err := uc.repo.ListWindows(ctx, itemIDs, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Windows ListWindows: %v", err)
		return nil, err
	}
	return windows, nil
}

// HasFinishedApproved reports whether bookerID has an approved booking of
// itemID that has already ended.
func (uc *implUseCase) HasFinishedApproved(ctx context.Context, itemID, bookerID int64) (bool, error) {
	ok, err := uc.repo.ExistsBooking(ctx, repo.ExistsBookingOptions{
		ItemID:    itemID,
		BookerID:  bookerID,
		Status:    booking.StatusApproved,
		EndBefore: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HasFinishedApproved ExistsBooking: %v", err)
		return false, err
	}
	return ok, nil
}
