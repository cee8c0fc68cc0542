package item

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Item, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Item, error)
	Detail(ctx context.Context, id int64) (Item, error)
	ListByOwner(ctx context.Context, ownerID int64, paging model.Paging) ([]Item, error)
	ListByRequests(ctx context.Context, requestIDs []int64) (map[int64][]Item, error)
	Search(ctx context.Context, input SearchInput) ([]Item, error)
}
