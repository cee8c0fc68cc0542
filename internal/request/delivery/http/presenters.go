package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/response"
)

type createReq struct {
	Description string `json:"description" binding:"required,max=1000"`
}

func (r createReq) toInput() request.CreateInput {
	return request.CreateInput{Description: r.Description}
}

type listOthersReq struct {
	From int `form:"from" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

func (r listOthersReq) toInput() request.ListOthersInput {
	size := r.Size
	if size == 0 {
		size = model.DefaultPageSize
	}
	return request.ListOthersInput{Paging: model.Paging{From: r.From, Size: size}}
}

type answerResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	RequestorID int64             `json:"requestorId"`
	Created     response.DateTime `json:"created"`
	Items       []answerResp      `json:"items"`
}

func newRequestResp(rq request.Request) requestResp {
	items := make([]answerResp, len(rq.Items))
	for i, it := range rq.Items {
		items[i] = answerResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   rq.ID,
		}
	}
	return requestResp{
		ID:          rq.ID,
		Description: rq.Description,
		RequestorID: rq.RequestorID,
		Created:     response.DateTime(rq.Created),
		Items:       items,
	}
}

func newListResp(requests []request.Request) []requestResp {
	out := make([]requestResp, len(requests))
	for i, rq := range requests {
		out[i] = newRequestResp(rq)
	}
	return out
}
