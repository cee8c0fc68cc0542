package usecase

import (
	"context"
	"strings"

	"shareit/internal/comment"
	repo "shareit/internal/comment/repository"
	"shareit/internal/model"
)

// Add records a comment by a user who has finished an approved booking of
// the item. Repeated comments are allowed.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input comment.AddInput) (comment.Comment, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return comment.Comment{}, comment.ErrTextRequired
	}

	author, err := uc.userUC.Detail(ctx, sc.UserID)
	if err != nil {
		return comment.Comment{}, err
	}
	it, err := uc.itemUC.Detail(ctx, input.ItemID)
	if err != nil {
		return comment.Comment{}, err
	}

	ok, err := uc.bookingUC.HasFinishedApproved(ctx, it.ID, author.ID)
	if err != nil {
		return comment.Comment{}, err
	}
	if !ok {
		return comment.Comment{}, comment.ErrNoFinishedBooking
	}

	c, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		Text:     text,
		ItemID:   it.ID,
		AuthorID: author.ID,
		Created:  uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateComment: %v", err)
		return comment.Comment{}, err
	}
	return c, nil
}

func (uc *implUseCase) ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]comment.Comment, error) {
	out := make(map[int64][]comment.Comment, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = []comment.Comment{}
	}
	if len(itemIDs) == 0 {
		return out, nil
	}

	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: itemIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByItems ListComments: %v", err)
		return nil, err
	}
	for _, c := range comments {
		out[c.ItemID] = append(out[c.ItemID], c)
	}
	return out, nil
}
