package request

import (
	"time"

	"shareit/internal/item"
	"shareit/internal/model"
)

// Request is a user's call for an item nobody has listed yet. Items answering
// it carry its id.
type Request struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
	Items       []item.Item
}

type CreateInput struct {
	Description string
}

type ListOthersInput struct {
	Paging model.Paging
}
