package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/request"
	repo "shareit/internal/request/repository"
)

const requestColumns = `id, description, requestor_id, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(s scanner) (request.Request, error) {
	var rq request.Request
	err := s.Scan(&rq.ID, &rq.Description, &rq.RequestorID, &rq.Created)
	return rq, err
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (request.Request, error) {
	const query = `
		INSERT INTO requests (description, requestor_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING ` + requestColumns

	rq, err := scanRequest(r.conn(ctx).QueryRowContext(ctx, query, opt.Description, opt.RequestorID, opt.Created.UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return request.Request{}, repo.ErrFailedToInsert
	}
	return rq, nil
}

// GetOneRequest returns a zero-value Request (ID == 0) when not found.
func (r *implRepository) GetOneRequest(ctx context.Context, id int64) (request.Request, error) {
	query := fmt.Sprintf("SELECT %s FROM requests WHERE id = $1", requestColumns)

	rq, err := scanRequest(r.conn(ctx).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return request.Request{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRequest"), err)
		return request.Request{}, repo.ErrFailedToGet
	}
	return rq, nil
}

func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]request.Request, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM requests %s", requestColumns, mods)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	requests := make([]request.Request, 0)
	for rows.Next() {
		rq, err := scanRequest(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRequests"), err)
			return nil, repo.ErrFailedToList
		}
		requests = append(requests, rq)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}
	return requests, nil
}

func (r *implRepository) buildListQuery(opt repo.ListRequestsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.RequestorID != 0 {
		conditions = append(conditions, fmt.Sprintf("requestor_id = $%d", idx))
		args = append(args, opt.RequestorID)
		idx++
	}
	if opt.ExcludeRequestorID != 0 {
		conditions = append(conditions, fmt.Sprintf("requestor_id <> $%d", idx))
		args = append(args, opt.ExcludeRequestorID)
		idx++
	}
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at DESC, id DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}
