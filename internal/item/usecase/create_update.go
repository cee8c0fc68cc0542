package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Create lists a new item owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateInput) (item.Item, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	switch {
	case name == "":
		return item.Item{}, item.ErrNameRequired
	case description == "":
		return item.Item{}, item.ErrDescriptionRequired
	case input.Available == nil:
		return item.Item{}, item.ErrAvailableRequired
	}

	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return item.Item{}, err
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        name,
		Description: description,
		Available:   *input.Available,
		OwnerID:     sc.UserID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrMissingRelation) && input.RequestID != nil {
			return item.Item{}, fmt.Errorf("%w: %d", item.ErrRequestNotFound, *input.RequestID)
		}
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.Item{}, err
	}
	return it, nil
}

// Update applies a partial update. Items of other owners are reported as
// not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateInput) (item.Item, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return item.Item{}, err
	}
	if existing.OwnerID != sc.UserID {
		return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, input.ID)
	}

	available := existing.Available
	if input.Available != nil {
		available = *input.Available
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          existing.ID,
		Name:        uc.coalesce(input.Name, existing.Name),
		Description: uc.coalesce(input.Description, existing.Description),
		Available:   available,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.Item{}, err
	}
	if it.ID == 0 {
		return item.Item{}, fmt.Errorf("%w: %d", item.ErrItemNotFound, input.ID)
	}
	return it, nil
}

func (uc *implUseCase) coalesce(newVal *string, existing string) string {
	if newVal == nil {
		return existing
	}
	if v := strings.TrimSpace(*newVal); v != "" {
		return v
	}
	return existing
}
