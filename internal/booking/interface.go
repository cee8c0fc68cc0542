package booking

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Booking, error)
	Approve(ctx context.Context, sc model.Scope, input ApproveInput) (Booking, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (Booking, error)
	ListForBooker(ctx context.Context, sc model.Scope, input ListInput) ([]Booking, error)
	ListForOwner(ctx context.Context, sc model.Scope, input ListInput) ([]Booking, error)

	// Read-model support for the item views and the comment ledger.
	Windows(ctx context.Context, itemIDs []int64) (map[int64]Window, error)
	HasFinishedApproved(ctx context.Context, itemID, bookerID int64) (bool, error)
}
