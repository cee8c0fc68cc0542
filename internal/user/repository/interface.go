package repository

import (
	"context"

	"shareit/internal/user"
)

// Repository is the data store of the user directory.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]user.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
