package request

import (
	"context"

	"shareit/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Request, error)
	ListOwn(ctx context.Context, sc model.Scope) ([]Request, error)
	ListOthers(ctx context.Context, sc model.Scope, input ListOthersInput) ([]Request, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (Request, error)
}
