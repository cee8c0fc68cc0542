package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/item"
	"shareit/internal/itemview"
	"shareit/internal/model"
	"shareit/internal/user"
	"shareit/pkg/log"
)

type mockUserUC struct {
	user.UseCase
}

func (m *mockUserUC) Detail(ctx context.Context, id int64) (user.User, error) {
	if id > 2 {
		return user.User{}, fmt.Errorf("%w: %d", user.ErrUserNotFound, id)
	}
	return user.User{ID: id}, nil
}

type mockItemUC struct {
	item.UseCase
	items []item.Item
}

func (m *mockItemUC) Detail(ctx context.Context, id int64) (item.Item, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, id)
}

func (m *mockItemUC) ListByOwner(ctx context.Context, ownerID int64, paging model.Paging) ([]item.Item, error) {
	var out []item.Item
	for _, it := range m.items {
		if it.OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

type mockBookingUC struct {
	booking.UseCase
	windowCalls int
}

func (m *mockBookingUC) Windows(ctx context.Context, itemIDs []int64) (map[int64]booking.Window, error) {
	m.windowCalls++
	return map[int64]booking.Window{
		10: {Last: &booking.Booking{ID: 1}, Next: &booking.Booking{ID: 2}},
	}, nil
}

type mockCommentUC struct {
	comment.UseCase
}

func (m *mockCommentUC) ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]comment.Comment, error) {
	return map[int64][]comment.Comment{10: {{ID: 5, Text: "nice", ItemID: 10}}}, nil
}

func newTestUseCase() (*implUseCase, *mockBookingUC) {
	b := &mockBookingUC{}
	items := &mockItemUC{items: []item.Item{
		{ID: 10, Name: "drill", OwnerID: 1},
		{ID: 11, Name: "saw", OwnerID: 1},
	}}
	return New(items, b, &mockCommentUC{}, &mockUserUC{}, log.NewNop()), b
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees the booking window", func(t *testing.T) {
		uc, _ := newTestUseCase()
		v, err := uc.Build(ctx, model.Scope{UserID: 1}, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.LastBooking == nil || v.LastBooking.ID != 1 || v.NextBooking == nil || v.NextBooking.ID != 2 {
			t.Errorf("expected window, got last=%v next=%v", v.LastBooking, v.NextBooking)
		}
		if len(v.Comments) != 1 {
			t.Errorf("expected one comment, got %d", len(v.Comments))
		}
	})

	for _, sc := range []model.Scope{{UserID: 2}, {}} {
		t.Run(fmt.Sprintf("caller %d sees no window", sc.UserID), func(t *testing.T) {
			uc, b := newTestUseCase()
			v, err := uc.Build(ctx, sc, 10)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.LastBooking != nil || v.NextBooking != nil {
				t.Errorf("window leaked to non-owner")
			}
			if b.windowCalls != 0 {
				t.Errorf("windows should not be loaded")
			}
		})
	}

	t.Run("comments are never nil", func(t *testing.T) {
		uc, _ := newTestUseCase()
		v, err := uc.Build(ctx, model.Scope{UserID: 1}, 11)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Comments == nil || len(v.Comments) != 0 {
			t.Errorf("expected empty comments, got %#v", v.Comments)
		}
		if v.LastBooking != nil || v.NextBooking != nil {
			t.Errorf("item without bookings has no window")
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, _ := newTestUseCase()
		if _, err := uc.Build(ctx, model.Scope{UserID: 1}, 404); !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestBuildOwnerList(t *testing.T) {
	ctx := context.Background()

	t.Run("owner list carries windows", func(t *testing.T) {
		uc, b := newTestUseCase()
		views, err := uc.BuildOwnerList(ctx, model.Scope{UserID: 1}, itemview.OwnerListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 || views[0].Item.ID != 10 || views[1].Item.ID != 11 {
			t.Fatalf("unexpected views: %+v", views)
		}
		if b.windowCalls != 1 {
			t.Errorf("expected one batched window lookup, got %d", b.windowCalls)
		}
		if views[0].LastBooking == nil {
			t.Errorf("owner list must include the window")
		}
	})

	t.Run("owner without items", func(t *testing.T) {
		uc, _ := newTestUseCase()
		views, err := uc.BuildOwnerList(ctx, model.Scope{UserID: 2}, itemview.OwnerListInput{})
		if err != nil || views == nil || len(views) != 0 {
			t.Fatalf("expected empty list, got %v, %v", views, err)
		}
	})

	t.Run("unknown caller", func(t *testing.T) {
		uc, _ := newTestUseCase()
		if _, err := uc.BuildOwnerList(ctx, model.Scope{UserID: 9}, itemview.OwnerListInput{}); !errors.Is(err, user.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
