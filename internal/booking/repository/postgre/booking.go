package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (booking.Booking, error) {
	var b booking.Booking
	var status string
	err := s.Scan(
		&b.ID, &b.Start, &b.End, &status,
		&b.Item.ID, &b.Item.Name, &b.Item.OwnerID,
		&b.Booker.ID, &b.Booker.Name,
	)
	if err != nil {
		return booking.Booking{}, err
	}
	b.Status = booking.Status(status)
	return b, nil
}

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (int64, error) {
	const query = `
		INSERT INTO bookings (item_id, booker_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.conn(ctx).QueryRowContext(ctx, query,
		opt.ItemID, opt.BookerID, opt.Start.UTC(), opt.End.UTC(), string(opt.Status)).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return 0, repo.ErrFailedToInsert
	}
	return id, nil
}

// GetOneBooking returns a zero-value Booking (ID == 0) when not found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	query := bookingSelect + " WHERE b.id = $1"
	if opt.ForUpdate {
		query += " FOR UPDATE OF b"
	}

	b, err := scanBooking(r.conn(ctx).QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("%s %s", bookingSelect, mods)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	bookings := make([]booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBookings"), err)
			return nil, repo.ErrFailedToList
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	return bookings, nil
}

// UpdateBookingStatus is a compare-and-set on the status column.
func (r *implRepository) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (bool, error) {
	const query = `UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3`

	res, err := r.conn(ctx).ExecContext(ctx, query, string(opt.To), opt.ID, string(opt.From))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateBookingStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateBookingStatus"), err)
		return false, repo.ErrFailedToUpdate
	}
	return n == 1, nil
}

// ListWindows picks per item the booking with the latest end among those
// already started, and the earliest upcoming one. Rejected bookings are
// ignored. Items without bookings are absent from the map.
func (r *implRepository) ListWindows(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]booking.Window, error) {
	windows := make(map[int64]booking.Window, len(itemIDs))
	if len(itemIDs) == 0 {
		return windows, nil
	}

	lastQuery := `SELECT DISTINCT ON (b.item_id) ` + bookingColumns + bookingFrom + `
		WHERE b.item_id = ANY($1) AND b.start_at <= $2 AND b.status <> $3
		ORDER BY b.item_id, b.end_at DESC, b.id DESC`
	nextQuery := `SELECT DISTINCT ON (b.item_id) ` + bookingColumns + bookingFrom + `
		WHERE b.item_id = ANY($1) AND b.start_at > $2 AND b.status <> $3
		ORDER BY b.item_id, b.start_at ASC, b.id ASC`

	last, err := r.queryByItem(ctx, lastQuery, itemIDs, now)
	if err != nil {
		r.l.Errorf(ctx, "%s last: %v", r.dsn("ListWindows"), err)
		return nil, repo.ErrFailedToList
	}
	next, err := r.queryByItem(ctx, nextQuery, itemIDs, now)
	if err != nil {
		r.l.Errorf(ctx, "%s next: %v", r.dsn("ListWindows"), err)
		return nil, repo.ErrFailedToList
	}

	for id, b := range last {
		w := windows[id]
		w.Last = b
		windows[id] = w
	}
	for id, b := range next {
		w := windows[id]
		w.Next = b
		windows[id] = w
	}
	return windows, nil
}

func (r *implRepository) queryByItem(ctx context.Context, query string, itemIDs []int64, now time.Time) (map[int64]*booking.Booking, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, query, itemIDs, now.UTC(), string(booking.StatusRejected))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]*booking.Booking)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out[b.Item.ID] = &b
	}
	return out, rows.Err()
}

func (r *implRepository) ExistsBooking(ctx context.Context, opt repo.ExistsBookingOptions) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = $3 AND end_at < $4
		)`

	var exists bool
	err := r.conn(ctx).QueryRowContext(ctx, query,
		opt.ItemID, opt.BookerID, string(opt.Status), opt.EndBefore.UTC()).Scan(&exists)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsBooking"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}
