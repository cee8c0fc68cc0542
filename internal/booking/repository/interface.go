package repository

import (
	"context"
	"time"

	"shareit/internal/booking"
)

// Repository is the data store of the booking engine. It is the only
// writer of booking rows.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (int64, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
	// UpdateBookingStatus moves a booking from opt.From to opt.To and reports
	// whether the row was still in opt.From.
	UpdateBookingStatus(ctx context.Context, opt UpdateBookingStatusOptions) (bool, error)
	ListWindows(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]booking.Window, error)
	ExistsBooking(ctx context.Context, opt ExistsBookingOptions) (bool, error)
}
