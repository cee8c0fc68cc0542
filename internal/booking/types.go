package booking

import (
	"fmt"
	"strings"
	"time"

	"shareit/internal/model"
)

// Status is the lifecycle state of a booking. WAITING is initial, the other
// two are terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// State narrows a booking list by time or status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState accepts any case; blank means ALL.
func ParseState(raw string) (State, error) {
	s := State(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case "":
		return StateAll, nil
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
}

// ItemRef is the item snapshot embedded in a booking.
type ItemRef struct {
	ID      int64
	Name    string
	OwnerID int64
}

// UserRef is the booker snapshot embedded in a booking.
type UserRef struct {
	ID   int64
	Name string
}

// Booking links a booker, an item and a time range.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status Status
	Item   ItemRef
	Booker UserRef
}

// Window holds the most recent and the nearest future booking of an item.
// Either may be nil.
type Window struct {
	Last *Booking
	Next *Booking
}

// --- UseCase Inputs ---

type CreateInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type ApproveInput struct {
	BookingID int64
	Approved  bool
}

type ListInput struct {
	State  string
	Paging model.Paging
}
