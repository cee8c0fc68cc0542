package http

import (
	"shareit/internal/booking"
	"shareit/internal/model"
	"shareit/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ItemID int64              `json:"itemId" binding:"required,min=1"`
	Start  *response.DateTime `json:"start"  binding:"required"`
	End    *response.DateTime `json:"end"    binding:"required"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		ItemID: r.ItemID,
		Start:  r.Start.Time(),
		End:    r.End.Time(),
	}
}

type approveReq struct {
	ID       int64 `form:"-"`
	Approved *bool `form:"approved" binding:"required"`
}

func (r approveReq) toInput() booking.ApproveInput {
	return booking.ApproveInput{BookingID: r.ID, Approved: *r.Approved}
}

type listReq struct {
	State string `form:"state"`
	From  int    `form:"from" binding:"min=0"`
	Size  int    `form:"size" binding:"omitempty,min=1,max=100"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{
		State:  r.State,
		Paging: model.Paging{From: r.From, Size: r.Size},
	}
}

// --- Response DTOs ---

type itemRefResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64             `json:"id"`
	Start  response.DateTime `json:"start"`
	End    response.DateTime `json:"end"`
	Status string            `json:"status"`
	Item   itemRefResp       `json:"item"`
	Booker bookerResp        `json:"booker"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:     b.ID,
		Start:  response.DateTime(b.Start),
		End:    response.DateTime(b.End),
		Status: string(b.Status),
		Item:   itemRefResp{ID: b.Item.ID, Name: b.Item.Name},
		Booker: bookerResp{ID: b.Booker.ID, Name: b.Booker.Name},
	}
}

func newListResp(bookings []booking.Booking) []bookingResp {
	out := make([]bookingResp, len(bookings))
	for i, b := range bookings {
		out[i] = newBookingResp(b)
	}
	return out
}
