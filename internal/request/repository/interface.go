package repository

import (
	"context"

	"shareit/internal/request"
)

// Repository is the data store of the request board.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (request.Request, error)
	GetOneRequest(ctx context.Context, id int64) (request.Request, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]request.Request, error)
}
