package http

import (
	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/itemview"
	"shareit/internal/model"
	"shareit/pkg/response"
)

type ownerListReq struct {
	From int `form:"from" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

func (r ownerListReq) toInput() itemview.OwnerListInput {
	return itemview.OwnerListInput{Paging: model.Paging{From: r.From, Size: r.Size}}
}

// --- Response DTOs ---

type bookingShortResp struct {
	ID       int64             `json:"id"`
	BookerID int64             `json:"bookerId"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

type itemViewResp struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *int64            `json:"requestId,omitempty"`
	LastBooking *bookingShortResp `json:"lastBooking"`
	NextBooking *bookingShortResp `json:"nextBooking"`
	Comments    []commentResp     `json:"comments"`
}

func newBookingShortResp(b *booking.Booking) *bookingShortResp {
	if b == nil {
		return nil
	}
	return &bookingShortResp{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    response.DateTime(b.Start),
		End:      response.DateTime(b.End),
	}
}

func newCommentResps(comments []comment.Comment) []commentResp {
	out := make([]commentResp, len(comments))
	for i, c := range comments {
		out[i] = commentResp{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			Created:    response.DateTime(c.Created),
		}
	}
	return out
}

func newItemViewResp(v itemview.ItemView) itemViewResp {
	return itemViewResp{
		ID:          v.Item.ID,
		Name:        v.Item.Name,
		Description: v.Item.Description,
		Available:   v.Item.Available,
		RequestID:   v.Item.RequestID,
		LastBooking: newBookingShortResp(v.LastBooking),
		NextBooking: newBookingShortResp(v.NextBooking),
		Comments:    newCommentResps(v.Comments),
	}
}

func newListResp(views []itemview.ItemView) []itemViewResp {
	out := make([]itemViewResp, len(views))
	for i, v := range views {
		out[i] = newItemViewResp(v)
	}
	return out
}
