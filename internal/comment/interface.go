package comment

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, sc model.Scope, input AddInput) (Comment, error)
	// ListByItems returns comments oldest first; every requested id is present.
	ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]Comment, error)
}
