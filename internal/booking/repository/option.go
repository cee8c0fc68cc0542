package repository

import (
	"time"

	"shareit/internal/booking"
)

type CreateBookingOptions struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

// GetOneBookingOptions fetches a booking by id. ForUpdate locks the row
// until the surrounding transaction ends.
type GetOneBookingOptions struct {
	ID        int64
	ForUpdate bool
}

// ListBookingsOptions filters bookings. Non-zero fields are ANDed; time
// bounds are strict. Results are ordered by start DESC.
type ListBookingsOptions struct {
	BookerID    int64
	OwnerID     int64
	Status      booking.Status
	StartBefore time.Time
	StartAfter  time.Time
	EndBefore   time.Time
	EndAfter    time.Time
	Limit       int
	Offset      int
}

type UpdateBookingStatusOptions struct {
	ID   int64
	From booking.Status
	To   booking.Status
}

type ExistsBookingOptions struct {
	ItemID    int64
	BookerID  int64
	Status    booking.Status
	EndBefore time.Time
}
