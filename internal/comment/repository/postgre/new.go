package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"shareit/internal/comment/repository"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the comment ledger.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("comment/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) conn(ctx context.Context) postgres.DBTX {
	return postgres.Conn(ctx, r.db)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("comment/repository/postgre.%s", method)
}
