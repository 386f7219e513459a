package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var methodColumns = []string{"id", "user_id", "type", "label", "last4", "upi_id", "is_default", "created_at"}

func TestRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("DefaultFirst", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM payment_methods WHERE user_id = \$1 ORDER BY is_default DESC, created_at DESC`).
			WithArgs(uint(7)).
			WillReturnRows(sqlmock.NewRows(methodColumns).
				AddRow(uuid.NewString(), 7, "upi", "ravi@okaxis", nil, "ravi@okaxis", true, now).
				AddRow(uuid.NewString(), 7, "cod", "Cash on Delivery", nil, nil, false, now))

		methods, err := repo.ListByUser(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, methods, 2)
		assert.Equal(t, TypeUPI, methods[0].Type)
		assert.True(t, methods[0].IsDefault)
		assert.Nil(t, methods[1].UPIID)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM payment_methods`).WillReturnError(errors.New("db down"))
		_, err := repo.ListByUser(context.Background(), 7)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	last4 := "4242"

	t.Run("DefaultClearsPrevious", func(t *testing.T) {
		pm := &PaymentMethod{ID: uuid.New(), UserID: 3, Type: TypeCard, Label: "Card •••• 4242", Last4: &last4, IsDefault: true}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE payment_methods SET is_default = false WHERE user_id = \$1`).
			WithArgs(uint(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO payment_methods`).
			WithArgs(pm.ID, uint(3), "card", "Card •••• 4242", "4242", nil, true).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(context.Background(), pm))
		assert.Equal(t, now, pm.CreatedAt)
	})

	t.Run("NonDefaultSkipsClear", func(t *testing.T) {
		pm := &PaymentMethod{ID: uuid.New(), UserID: 3, Type: TypeCOD, Label: "Cash on Delivery"}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO payment_methods`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectCommit()

		require.NoError(t, repo.Create(context.Background(), pm))
	})

	t.Run("InsertFailsRollsBack", func(t *testing.T) {
		pm := &PaymentMethod{ID: uuid.New(), UserID: 3, Type: TypeCOD, Label: "Cash on Delivery"}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO payment_methods`).WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		assert.Error(t, repo.Create(context.Background(), pm))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE payment_methods SET is_default = false`).
			WithArgs(uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE payment_methods SET is_default = true WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.SetDefault(context.Background(), 5, id))
	})

	t.Run("OtherUsersMethod", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE payment_methods SET is_default = false`).
			WithArgs(uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE payment_methods SET is_default = true`).
			WithArgs(id, uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.SetDefault(context.Background(), 5, id), ErrPaymentMethodNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM payment_methods WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, uint(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), id, 5))

	mock.ExpectExec(`DELETE FROM payment_methods`).
		WithArgs(id, uint(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id, 6), ErrPaymentMethodNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
