package usecase

import (
	"context"

	"shareit/internal/booking"
	"shareit/internal/comment"
	"shareit/internal/item"
	"shareit/internal/itemview"
	"shareit/internal/model"
)

// Build returns the view of one item. The booking window is included only
// when the caller owns the item.
func (uc *implUseCase) Build(ctx context.Context, sc model.Scope, itemID int64) (itemview.ItemView, error) {
	it, err := uc.itemUC.Detail(ctx, itemID)
	if err != nil {
		return itemview.ItemView{}, err
	}

	includeWindow := !sc.Anonymous() && it.OwnerID == sc.UserID
	views, err := uc.assemble(ctx, []item.Item{it}, includeWindow)
	if err != nil {
		return itemview.ItemView{}, err
	}
	return views[0], nil
}

// BuildOwnerList returns views of every item the caller owns, ordered by
// item id, each with its booking window.
func (uc *implUseCase) BuildOwnerList(ctx context.Context, sc model.Scope, input itemview.OwnerListInput) ([]itemview.ItemView, error) {
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return nil, err
	}

	items, err := uc.itemUC.ListByOwner(ctx, sc.UserID, input.Paging)
	if err != nil {
		return nil, err
	}
	return uc.assemble(ctx, items, true)
}

// assemble loads windows and comments for all items in one round trip each.
func (uc *implUseCase) assemble(ctx context.Context, items []item.Item, includeWindow bool) ([]itemview.ItemView, error) {
	views := make([]itemview.ItemView, 0, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	var windows map[int64]booking.Window
	if includeWindow {
		var err error
		windows, err = uc.bookingUC.Windows(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	comments, err := uc.commentUC.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		v := itemview.ItemView{Item: it, Comments: comments[it.ID]}
		if v.Comments == nil {
			v.Comments = []comment.Comment{}
		}
		if w, ok := windows[it.ID]; ok {
			v.LastBooking = w.Last
			v.NextBooking = w.Next
		}
		views = append(views, v)
	}
	return views, nil
}
