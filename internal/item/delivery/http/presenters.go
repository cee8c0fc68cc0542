package http

import (
	"shareit/internal/item"
	"shareit/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=1000"`
	Available   *bool  `json:"available"   binding:"required"`
	RequestID   *int64 `json:"requestId"   binding:"omitempty,min=1"`
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

type updateReq struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name"        binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Available   *bool   `json:"available"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type searchReq struct {
	Text string `form:"text"`
	From int    `form:"from" binding:"min=0"`
	Size int    `form:"size" binding:"omitempty,min=1,max=100"`
}

func (r searchReq) toInput() item.SearchInput {
	return item.SearchInput{
		Text:   r.Text,
		Paging: model.Paging{From: r.From, Size: r.Size},
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func newListResp(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}
