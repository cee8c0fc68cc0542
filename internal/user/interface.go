package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (User, error)
	Update(ctx context.Context, input UpdateInput) (User, error)
	Detail(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) error
}
