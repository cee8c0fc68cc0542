package usecase

import (
	"context"
	"fmt"
	"strings"

	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input request.CreateInput) (request.Request, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return request.Request{}, request.ErrDescriptionRequired
	}
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return request.Request{}, err
	}

	rq, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: description,
		RequestorID: sc.UserID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return request.Request{}, err
	}
	rq.Items = []item.Item{}
	return rq, nil
}

// ListOwn returns the caller's requests, newest first, with their items.
func (uc *implUseCase) ListOwn(ctx context.Context, sc model.Scope) ([]request.Request, error) {
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return nil, err
	}
	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequestorID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, requests)
}

// ListOthers pages through everyone else's requests, newest first.
func (uc *implUseCase) ListOthers(ctx context.Context, sc model.Scope, input request.ListOthersInput) ([]request.Request, error) {
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return nil, err
	}
	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{
		ExcludeRequestorID: sc.UserID,
		Limit:              input.Paging.Limit(),
		Offset:             input.Paging.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListRequests: %v", err)
		return nil, err
	}
	return uc.attachItems(ctx, requests)
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (request.Request, error) {
	if _, err := uc.userUC.Detail(ctx, sc.UserID); err != nil {
		return request.Request{}, err
	}
	rq, err := uc.repo.GetOneRequest(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRequest: %v", err)
		return request.Request{}, err
	}
	if rq.ID == 0 {
		return request.Request{}, fmt.Errorf("%w: %d", request.ErrRequestNotFound, id)
	}

	out, err := uc.attachItems(ctx, []request.Request{rq})
	if err != nil {
		return request.Request{}, err
	}
	return out[0], nil
}

func (uc *implUseCase) attachItems(ctx context.Context, requests []request.Request) ([]request.Request, error) {
	ids := make([]int64, len(requests))
	for i, rq := range requests {
		ids[i] = rq.ID
	}
	byRequest, err := uc.itemUC.ListByRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].Items = byRequest[requests[i].ID]
		if requests[i].Items == nil {
			requests[i].Items = []item.Item{}
		}
	}
	return requests, nil
}
