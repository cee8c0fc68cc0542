package item

import "shareit/internal/model"

// Item is a thing a user offers for borrowing.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	Available   *bool
	RequestID   *int64
}

// UpdateInput is a partial update: nil or blank fields keep the stored value.
type UpdateInput struct {
	ID          int64
	Name        *string
	Description *string
	Available   *bool
}

type SearchInput struct {
	Text   string
	Paging model.Paging
}
