package usecase

import (
	"context"
	"fmt"

	"shareit/internal/booking"
	"shareit/internal/comment"
	repo "shareit/internal/comment/repository"
	"shareit/internal/item"
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

type mockUserUC struct {
	user.UseCase
	users map[int64]user.User
}

func (m *mockUserUC) Detail(ctx context.Context, id int64) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return u, nil
}

type mockItemUC struct {
	item.UseCase
	items map[int64]item.Item
}

func (m *mockItemUC) Detail(ctx context.Context, id int64) (item.Item, error) {
	it, ok := m.items[id]
	if !ok {
		return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, id)
	}
	return it, nil
}

// mockBookingUC answers HasFinishedApproved from a set of "item/booker" keys.
type mockBookingUC struct {
	booking.UseCase
	finished map[[2]int64]bool
	calls    int
}

func (m *mockBookingUC) HasFinishedApproved(ctx context.Context, itemID, bookerID int64) (bool, error) {
	m.calls++
	return m.finished[[2]int64{itemID, bookerID}], nil
}

type mockRepo struct {
	created  []repo.CreateCommentOptions
	comments []comment.Comment
	listOpts []repo.ListCommentsOptions
}

func (m *mockRepo) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (comment.Comment, error) {
	m.created = append(m.created, opt)
	return comment.Comment{
		ID:         int64(len(m.created)),
		Text:       opt.Text,
		ItemID:     opt.ItemID,
		AuthorID:   opt.AuthorID,
		AuthorName: "bob",
		Created:    opt.Created,
	}, nil
}

func (m *mockRepo) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]comment.Comment, error) {
	m.listOpts = append(m.listOpts, opt)
	return m.comments, nil
}
