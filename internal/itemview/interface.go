package itemview

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Build(ctx context.Context, sc model.Scope, itemID int64) (ItemView, error)
	BuildOwnerList(ctx context.Context, sc model.Scope, input OwnerListInput) ([]ItemView, error)
}
