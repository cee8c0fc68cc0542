package repository

import "time"

type CreateCommentOptions struct {
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

type ListCommentsOptions struct {
	ItemIDs []int64
}
