package repository

import "time"

type CreateRequestOptions struct {
	Description string
	RequestorID int64
	Created     time.Time
}

// ListRequestsOptions filters requests by requestor, or by everyone except
// ExcludeRequestorID. Results are newest first.
type ListRequestsOptions struct {
	RequestorID        int64
	ExcludeRequestorID int64
	Limit              int
	Offset             int
}
