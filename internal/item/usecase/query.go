package usecase

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Detail returns ErrItemNotFound when the id is unknown.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.Item, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.Item{}, err
	}
	if it.ID == 0 {
		return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, id)
	}
	return it, nil
}

// ListByOwner returns the owner's items ordered by id.
func (uc *implUseCase) ListByOwner(ctx context.Context, ownerID int64, paging model.Paging) ([]item.Item, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OwnerID: ownerID,
		Limit:   paging.Limit(),
		Offset:  paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByOwner ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

// ListByRequests groups the items answering each request. Every requested
// id is present in the result.
func (uc *implUseCase) ListByRequests(ctx context.Context, requestIDs []int64) (map[int64][]item.Item, error) {
	out := make(map[int64][]item.Item, len(requestIDs))
	for _, id := range requestIDs {
		out[id] = []item.Item{}
	}
	if len(requestIDs) == 0 {
		return out, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{RequestIDs: requestIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByRequests ListItems: %v", err)
		return nil, err
	}
	for _, it := range items {
		if it.RequestID != nil {
			out[*it.RequestID] = append(out[*it.RequestID], it)
		}
	}
	return out, nil
}

// Search matches available items by name or description. Blank text yields
// an empty result.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchInput) ([]item.Item, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return []item.Item{}, nil
	}
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Text:   text,
		Limit:  input.Paging.Limit(),
		Offset: input.Paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return nil, err
	}
	return items, nil
}
