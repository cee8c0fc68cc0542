package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/booking"
	repo "shareit/internal/booking/repository"
	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/internal/user"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/metrics"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const (
	ownerID  int64 = 1
	bookerID int64 = 2
	itemID   int64 = 10
	offID    int64 = 11
)

type fixture struct {
	uc   *implUseCase
	repo *mockRepo
	tx   *fakeTx
	rec  *mockRecorder
}

func newFixture() fixture {
	r := newMockRepo()
	tx := &fakeTx{}
	rec := &mockRecorder{}
	users := &mockUserUC{users: map[int64]user.User{
		ownerID:  {ID: ownerID, Name: "owner"},
		bookerID: {ID: bookerID, Name: "booker"},
	}}
	items := &mockItemUC{items: map[int64]item.Item{
		itemID: {ID: itemID, Name: "drill", Available: true, OwnerID: ownerID},
		offID:  {ID: offID, Name: "saw", Available: false, OwnerID: ownerID},
	}}
	uc := New(r, tx, users, items, rec, &mockLogger{})
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, repo: r, tx: tx, rec: rec}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	start := fixedNow.Add(time.Hour)
	end := fixedNow.Add(2 * time.Hour)

	t.Run("creates a waiting booking", func(t *testing.T) {
		f := newFixture()
		b, err := f.uc.Create(ctx, model.Scope{UserID: bookerID}, booking.CreateInput{ItemID: itemID, Start: start, End: end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != 1 || b.Status != booking.StatusWaiting {
			t.Errorf("unexpected booking: %+v", b)
		}
		if b.Item.Name != "drill" || b.Booker.Name != "booker" {
			t.Errorf("snapshots not resolved: %+v", b)
		}
		if f.tx.calls != 1 {
			t.Errorf("expected one transaction, got %d", f.tx.calls)
		}
		if len(f.rec.events) != 1 || f.rec.events[0] != metrics.BookingCreated {
			t.Errorf("expected created event, got %v", f.rec.events)
		}
	})

	tests := []struct {
		name   string
		caller int64
		input  booking.CreateInput
		want   error
		kind   pkgErrors.Kind
	}{
		{"missing dates", bookerID, booking.CreateInput{ItemID: itemID}, booking.ErrDatesRequired, pkgErrors.KindValidation},
		{"unknown booker", 99, booking.CreateInput{ItemID: itemID, Start: start, End: end}, user.ErrUserNotFound, pkgErrors.KindNotFound},
		{"unknown item", bookerID, booking.CreateInput{ItemID: 404, Start: start, End: end}, item.ErrItemNotFound, pkgErrors.KindNotFound},
		{"unavailable item", bookerID, booking.CreateInput{ItemID: offID, Start: start, End: end}, booking.ErrItemUnavailable, pkgErrors.KindValidation},
		{"own item", ownerID, booking.CreateInput{ItemID: itemID, Start: start, End: end}, booking.ErrOwnItem, pkgErrors.KindValidation},
		{"end before start", bookerID, booking.CreateInput{ItemID: itemID, Start: end, End: start}, booking.ErrInvalidRange, pkgErrors.KindValidation},
		{"equal bounds", bookerID, booking.CreateInput{ItemID: itemID, Start: start, End: start}, booking.ErrInvalidRange, pkgErrors.KindValidation},
		{"start in past", bookerID, booking.CreateInput{ItemID: itemID, Start: fixedNow.Add(-time.Hour), End: end}, booking.ErrStartInPast, pkgErrors.KindValidation},
		// Existence is checked before the range.
		{"unknown item with bad range", bookerID, booking.CreateInput{ItemID: 404, Start: end, End: start}, item.ErrItemNotFound, pkgErrors.KindNotFound},
		// Availability is checked before ownership.
		{"owner on unavailable item", ownerID, booking.CreateInput{ItemID: offID, Start: start, End: end}, booking.ErrItemUnavailable, pkgErrors.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Create(ctx, model.Scope{UserID: tt.caller}, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if pkgErrors.KindOf(err) != tt.kind {
				t.Errorf("expected kind %v, got %v", tt.kind, pkgErrors.KindOf(err))
			}
			if len(f.repo.created) != 0 {
				t.Errorf("nothing should be written on failure")
			}
			if len(f.rec.events) != 0 {
				t.Errorf("no event expected, got %v", f.rec.events)
			}
		})
	}
}

func seedWaiting(f fixture) int64 {
	f.repo.bookings[7] = booking.Booking{
		ID:     7,
		Start:  fixedNow.Add(time.Hour),
		End:    fixedNow.Add(2 * time.Hour),
		Status: booking.StatusWaiting,
		Item:   booking.ItemRef{ID: itemID, Name: "drill", OwnerID: ownerID},
		Booker: booking.UserRef{ID: bookerID, Name: "booker"},
	}
	return 7
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves once", func(t *testing.T) {
		f := newFixture()
		id := seedWaiting(f)

		b, err := f.uc.Approve(ctx, model.Scope{UserID: ownerID}, booking.ApproveInput{BookingID: id, Approved: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != booking.StatusApproved {
			t.Errorf("expected APPROVED, got %s", b.Status)
		}

		_, err = f.uc.Approve(ctx, model.Scope{UserID: ownerID}, booking.ApproveInput{BookingID: id, Approved: false})
		if !errors.Is(err, booking.ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided on second decision, got %v", err)
		}
		if f.repo.bookings[id].Status != booking.StatusApproved {
			t.Errorf("second decision must not change status")
		}
		if len(f.rec.events) != 1 || f.rec.events[0] != metrics.BookingApproved {
			t.Errorf("unexpected events: %v", f.rec.events)
		}
	})

	t.Run("owner rejects", func(t *testing.T) {
		f := newFixture()
		id := seedWaiting(f)

		b, err := f.uc.Approve(ctx, model.Scope{UserID: ownerID}, booking.ApproveInput{BookingID: id, Approved: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != booking.StatusRejected {
			t.Errorf("expected REJECTED, got %s", b.Status)
		}
	})

	t.Run("booker cannot approve", func(t *testing.T) {
		f := newFixture()
		id := seedWaiting(f)

		_, err := f.uc.Approve(ctx, model.Scope{UserID: bookerID}, booking.ApproveInput{BookingID: id, Approved: true})
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
		if f.repo.bookings[id].Status != booking.StatusWaiting {
			t.Errorf("status must stay WAITING")
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Approve(ctx, model.Scope{UserID: ownerID}, booking.ApproveInput{BookingID: 404, Approved: true})
		if pkgErrors.KindOf(err) != pkgErrors.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("lost compare-and-set", func(t *testing.T) {
		f := newFixture()
		id := seedWaiting(f)
		f.repo.updateFn = func(opt repo.UpdateBookingStatusOptions) (bool, error) { return false, nil }

		_, err := f.uc.Approve(ctx, model.Scope{UserID: ownerID}, booking.ApproveInput{BookingID: id, Approved: true})
		if !errors.Is(err, booking.ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided, got %v", err)
		}
		if len(f.rec.events) != 0 {
			t.Errorf("no event expected, got %v", f.rec.events)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := seedWaiting(f)

	for _, caller := range []int64{ownerID, bookerID} {
		if _, err := f.uc.Detail(ctx, model.Scope{UserID: caller}, id); err != nil {
			t.Errorf("caller %d: unexpected error %v", caller, err)
		}
	}
	if _, err := f.uc.Detail(ctx, model.Scope{UserID: 3}, id); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("stranger: expected ErrBookingNotFound, got %v", err)
	}
	if _, err := f.uc.Detail(ctx, model.Scope{UserID: ownerID}, 404); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("missing: expected ErrBookingNotFound, got %v", err)
	}
}

func TestListStates(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		state string
		check func(t *testing.T, opt repo.ListBookingsOptions)
	}{
		{"", func(t *testing.T, opt repo.ListBookingsOptions) {
			if !opt.StartBefore.IsZero() || !opt.EndBefore.IsZero() || opt.Status != "" {
				t.Errorf("ALL must not filter: %+v", opt)
			}
		}},
		{"current", func(t *testing.T, opt repo.ListBookingsOptions) {
			if !opt.StartBefore.Equal(fixedNow) || !opt.EndAfter.Equal(fixedNow) {
				t.Errorf("CURRENT bounds wrong: %+v", opt)
			}
		}},
		{"PAST", func(t *testing.T, opt repo.ListBookingsOptions) {
			if !opt.EndBefore.Equal(fixedNow) {
				t.Errorf("PAST bounds wrong: %+v", opt)
			}
		}},
		{"FUTURE", func(t *testing.T, opt repo.ListBookingsOptions) {
			if !opt.StartAfter.Equal(fixedNow) {
				t.Errorf("FUTURE bounds wrong: %+v", opt)
			}
		}},
		{"WAITING", func(t *testing.T, opt repo.ListBookingsOptions) {
			if opt.Status != booking.StatusWaiting {
				t.Errorf("expected WAITING status filter, got %q", opt.Status)
			}
		}},
		{"Rejected", func(t *testing.T, opt repo.ListBookingsOptions) {
			if opt.Status != booking.StatusRejected {
				t.Errorf("expected REJECTED status filter, got %q", opt.Status)
			}
		}},
	}

	for _, tt := range tests {
		t.Run("state "+tt.state, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.ListForBooker(ctx, model.Scope{UserID: bookerID}, booking.ListInput{
				State:  tt.state,
				Paging: model.Paging{From: 5, Size: 10},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			opt := f.repo.listOpts[0]
			if opt.BookerID != bookerID || opt.Limit != 10 || opt.Offset != 5 {
				t.Errorf("unexpected scope or paging: %+v", opt)
			}
			tt.check(t, opt)
		})
	}

	t.Run("owner list filters by owner", func(t *testing.T) {
		f := newFixture()
		if _, err := f.uc.ListForOwner(ctx, model.Scope{UserID: ownerID}, booking.ListInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.listOpts[0].OwnerID != ownerID || f.repo.listOpts[0].BookerID != 0 {
			t.Errorf("unexpected options: %+v", f.repo.listOpts[0])
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.ListForBooker(ctx, model.Scope{UserID: bookerID}, booking.ListInput{State: "BOGUS"})
		if !errors.Is(err, booking.ErrUnknownState) {
			t.Fatalf("expected ErrUnknownState, got %v", err)
		}
		if err.Error() != "Unknown state: BOGUS" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if len(f.repo.listOpts) != 0 {
			t.Errorf("no query expected")
		}
	})

	t.Run("APPROVED is not a state", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.ListForOwner(ctx, model.Scope{UserID: ownerID}, booking.ListInput{State: "APPROVED"})
		if !errors.Is(err, booking.ErrUnknownState) {
			t.Fatalf("expected ErrUnknownState, got %v", err)
		}
	})

	t.Run("unknown user wins over unknown state", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.ListForBooker(ctx, model.Scope{UserID: 99}, booking.ListInput{State: "BOGUS"})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestHasFinishedApproved(t *testing.T) {
	f := newFixture()
	ok, err := f.uc.HasFinishedApproved(context.Background(), itemID, bookerID)
	if err != nil || !ok {
		t.Fatalf("unexpected result %v, %v", ok, err)
	}
	opt := f.repo.exists
	if opt.ItemID != itemID || opt.BookerID != bookerID || opt.Status != booking.StatusApproved || !opt.EndBefore.Equal(fixedNow) {
		t.Errorf("unexpected options: %+v", opt)
	}
}
