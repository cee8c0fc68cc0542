package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shareit/internal/item"
	repo "shareit/internal/item/repository"
	"shareit/pkg/postgres"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (item.Item, error) {
	var it item.Item
	var requestID sql.NullInt64
	if err := s.Scan(&it.ID, &it.Name, &it.Description, &it.Available, &it.OwnerID, &requestID); err != nil {
		return item.Item{}, err
	}
	if requestID.Valid {
		it.RequestID = &requestID.Int64
	}
	return it, nil
}

// CreateItem returns ErrMissingRelation when owner or request do not exist.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + itemColumns

	var requestID sql.NullInt64
	if opt.RequestID != nil {
		requestID = sql.NullInt64{Int64: *opt.RequestID, Valid: true}
	}

	it, err := scanItem(r.conn(ctx).QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Available, opt.OwnerID, requestID))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return item.Item{}, repo.ErrMissingRelation
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem returns a zero-value Item (ID == 0) when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = $1", itemColumns)

	it, err := scanItem(r.conn(ctx).QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items %s", itemColumns, mods)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, available = $3
		WHERE id = $4
		RETURNING ` + itemColumns

	it, err := scanItem(r.conn(ctx).QueryRowContext(ctx, query, opt.Name, opt.Description, opt.Available, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}
