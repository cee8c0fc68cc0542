package repository

type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions filters items. Non-zero fields are ANDed. Text matches
// name or description case-insensitively and implies available items only.
type ListItemsOptions struct {
	OwnerID    int64
	RequestIDs []int64
	Text       string
	Limit      int
	Offset     int
}

type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}
