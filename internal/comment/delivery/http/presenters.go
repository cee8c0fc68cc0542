package http

import (
	"shareit/internal/comment"
	"shareit/pkg/response"
)

type addReq struct {
	ItemID int64  `json:"-"`
	Text   string `json:"text" binding:"required,max=2000"`
}

func (r addReq) toInput() comment.AddInput {
	return comment.AddInput{ItemID: r.ItemID, Text: r.Text}
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	ItemID     int64             `json:"itemId"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(c comment.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorName: c.AuthorName,
		Created:    response.DateTime(c.Created),
	}
}
