package comment

import "time"

// Comment is feedback left by a past renter of an item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

type AddInput struct {
	ItemID int64
	Text   string
}
