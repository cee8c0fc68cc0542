package postgre

import (
	"context"

	"shareit/internal/comment"
	repo "shareit/internal/comment/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(s scanner) (comment.Comment, error) {
	var c comment.Comment
	err := s.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created)
	return c, err
}

func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (comment.Comment, error) {
	const query = `
		WITH ins AS (
			INSERT INTO comments (text, item_id, author_id, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, text, item_id, author_id, created_at
		)
		SELECT ins.id, ins.text, ins.item_id, ins.author_id, u.name, ins.created_at
		FROM ins
		JOIN users u ON u.id = ins.author_id`

	c, err := scanComment(r.conn(ctx).QueryRowContext(ctx, query, opt.Text, opt.ItemID, opt.AuthorID, opt.Created.UTC()))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return comment.Comment{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// ListComments returns comments of the given items, oldest first.
func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]comment.Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.conn(ctx).QueryContext(ctx, query, opt.ItemIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListComments"), err)
			return nil, repo.ErrFailedToList
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}
	return comments, nil
}
