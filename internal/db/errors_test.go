package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolation(t *testing.T) {
	t.Run("lib/pq", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "users_phone_key"})
		name, ok := UniqueViolation(err)
		assert.True(t, ok)
		assert.Equal(t, "users_phone_key", name)
	})

	t.Run("pgx", func(t *testing.T) {
		name, ok := UniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key"})
		assert.True(t, ok)
		assert.Equal(t, "coupons_code_key", name)
	})

	t.Run("OtherCode", func(t *testing.T) {
		_, ok := UniqueViolation(&pq.Error{Code: "23503"})
		assert.False(t, ok)
	})

	t.Run("PlainError", func(t *testing.T) {
		_, ok := UniqueViolation(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestWithTx(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	t.Run("Commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE things").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
			_, err := tx.Exec("UPDATE things SET x = 1")
			return err
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BeginError", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("conn refused"))

		err := WithTx(context.Background(), conn, func(tx *sql.Tx) error { return nil })
		assert.ErrorContains(t, err, "begin tx")
	})
}
