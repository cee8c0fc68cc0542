package repository

import (
	"context"

	"shareit/internal/comment"
)

// Repository is the data store of the comment ledger. It is the only writer
// of comment rows.
type Repository interface {
	CreateComment(ctx context.Context, opt CreateCommentOptions) (comment.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]comment.Comment, error)
}
