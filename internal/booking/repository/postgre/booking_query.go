package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/booking/repository"
)

const (
	bookingColumns = `b.id, b.start_at, b.end_at, b.status, i.id, i.name, i.owner_id, u.id, u.name`
	bookingFrom    = `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id`

	bookingSelect = `SELECT ` + bookingColumns + bookingFrom
)

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for ListBookings.
func (r *implRepository) buildListQuery(opt repo.ListBookingsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, arg any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, arg)
		idx++
	}

	if opt.BookerID != 0 {
		add("b.booker_id = $%d", opt.BookerID)
	}
	if opt.OwnerID != 0 {
		add("i.owner_id = $%d", opt.OwnerID)
	}
	if opt.Status != "" {
		add("b.status = $%d", string(opt.Status))
	}
	if !opt.StartBefore.IsZero() {
		add("b.start_at < $%d", opt.StartBefore.UTC())
	}
	if !opt.StartAfter.IsZero() {
		add("b.start_at > $%d", opt.StartAfter.UTC())
	}
	if !opt.EndBefore.IsZero() {
		add("b.end_at < $%d", opt.EndBefore.UTC())
	}
	if !opt.EndAfter.IsZero() {
		add("b.end_at > $%d", opt.EndAfter.UTC())
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY b.start_at DESC, b.id DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
