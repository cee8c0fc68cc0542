package itemview

import (
	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/item"
	"shareit/internal/model"
)

// ItemView is the read model of an item with its booking window and
// comments. LastBooking and NextBooking are set for the owner only.
// Comments is never nil.
type ItemView struct {
	Item        item.Item
	LastBooking *booking.Booking
	NextBooking *booking.Booking
	Comments    []comment.Comment
}

type OwnerListInput struct {
	Paging model.Paging
}
