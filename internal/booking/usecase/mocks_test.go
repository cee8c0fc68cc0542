package usecase

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/internal/user"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type mockRecorder struct {
	events []string
}

func (m *mockRecorder) BookingEvent(outcome string) {
	m.events = append(m.events, outcome)
}

type mockUserUC struct {
	users map[int64]user.User
}

func (m *mockUserUC) Create(ctx context.Context, input user.CreateInput) (user.User, error) {
	return user.User{}, nil
}

func (m *mockUserUC) Update(ctx context.Context, input user.UpdateInput) (user.User, error) {
	return user.User{}, nil
}

func (m *mockUserUC) Detail(ctx context.Context, id int64) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return u, nil
}

func (m *mockUserUC) List(ctx context.Context) ([]user.User, error) { return nil, nil }

func (m *mockUserUC) Delete(ctx context.Context, id int64) error { return nil }

type mockItemUC struct {
	items map[int64]item.Item
}

func (m *mockItemUC) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (item.Item, error) {
	return item.Item{}, nil
}

func (m *mockItemUC) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (item.Item, error) {
	return item.Item{}, nil
}

func (m *mockItemUC) Detail(ctx context.Context, id int64) (item.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, id)
	}
	return it, nil
}

func (m *mockItemUC) ListByOwner(ctx context.Context, ownerID int64, paging model.Paging) ([]item.Item, error) {
	return nil, nil
}

func (m *mockItemUC) ListByRequests(ctx context.Context, requestIDs []int64) (map[int64][]item.Item, error) {
	return nil, nil
}

func (m *mockItemUC) Search(ctx context.Context, input item.SearchInput) ([]item.Item, error) {
	return nil, nil
}

// mockRepo keeps bookings in memory and records the options it saw.
type mockRepo struct {
	bookings map[int64]booking.Booking
	nextID   int64
	created  []repo.CreateBookingOptions
	listOpts []repo.ListBookingsOptions
	exists   repo.ExistsBookingOptions
	updateFn func(opt repo.UpdateBookingStatusOptions) (bool, error)
	listErr  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{bookings: map[int64]booking.Booking{}, nextID: 1}
}

func (m *mockRepo) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (int64, error) {
	m.created = append(m.created, opt)
	id := m.nextID
	m.nextID++
	m.bookings[id] = booking.Booking{
		ID:     id,
		Start:  opt.Start,
		End:    opt.End,
		Status: opt.Status,
		Item:   booking.ItemRef{ID: opt.ItemID},
		Booker: booking.UserRef{ID: opt.BookerID},
	}
	return id, nil
}

func (m *mockRepo) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	return m.bookings[opt.ID], nil
}

func (m *mockRepo) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	m.listOpts = append(m.listOpts, opt)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return []booking.Booking{}, nil
}

func (m *mockRepo) UpdateBookingStatus(ctx context.Context, opt repo.UpdateBookingStatusOptions) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(opt)
	}
	b, ok := m.bookings[opt.ID]
	if !ok || b.Status != opt.From {
		return false, nil
	}
	b.Status = opt.To
	m.bookings[opt.ID] = b
	return true, nil
}

func (m *mockRepo) ListWindows(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]booking.Window, error) {
	return map[int64]booking.Window{}, nil
}

func (m *mockRepo) ExistsBooking(ctx context.Context, opt repo.ExistsBookingOptions) (bool, error) {
	m.exists = opt
	return true, nil
}
