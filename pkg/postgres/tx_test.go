package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"shareit/pkg/postgres"
)

func TestWithinTx(t *testing.T) {
	t.Run("commits on success and exposes tx through Conn", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tr := postgres.NewTransactor(db)
		err = tr.WithinTx(context.Background(), func(ctx context.Context) error {
			_, err := postgres.Conn(ctx, db).ExecContext(ctx, "UPDATE bookings SET status = 'APPROVED'")
			return err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		sentinel := errors.New("already decided")
		tr := postgres.NewTransactor(db)
		err = tr.WithinTx(context.Background(), func(ctx context.Context) error {
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected sentinel, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("nested call reuses outer tx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock: %v", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		tr := postgres.NewTransactor(db)
		err = tr.WithinTx(context.Background(), func(ctx context.Context) error {
			return tr.WithinTx(ctx, func(ctx context.Context) error { return nil })
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestConstraintCodes(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	if !postgres.IsUniqueViolation(unique) || postgres.IsUniqueViolation(fk) {
		t.Error("IsUniqueViolation mismatch")
	}
	if !postgres.IsForeignKeyViolation(fk) || postgres.IsForeignKeyViolation(unique) {
		t.Error("IsForeignKeyViolation mismatch")
	}
	if postgres.IsUniqueViolation(errors.New("plain")) {
		t.Error("plain error must not match")
	}
}
