package addon

import (
	"context"
	"errors"
	"testing"

	"taza-be/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addonRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "is_available"})
}

func TestService_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))

	t.Run("CustomerSeesAvailableOnly", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addons WHERE is_available = true ORDER BY name ASC`).
			WillReturnRows(addonRows().AddRow(uuid.NewString(), "Marinade", nil, "49.00", nil, true))

		addons, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, addons, 1)
		assert.Equal(t, 49.0, ToResponse(addons[0]).Price)
	})

	t.Run("AdminSeesAll", func(t *testing.T) {
		ctx := utils.SetUserContext(context.Background(), 1, "", utils.RoleAdmin)

		mock.ExpectQuery(`SELECT .* FROM addons ORDER BY name ASC`).
			WillReturnRows(addonRows().
				AddRow(uuid.NewString(), "Marinade", nil, "49.00", nil, true).
				AddRow(uuid.NewString(), "Masala", "Spice mix", "29.00", nil, false))

		addons, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, addons, 2)
		assert.Len(t, ToResponses(addons), 2)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addons`).WillReturnError(errors.New("db down"))

		_, err := svc.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addons WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(addonRows().AddRow(id.String(), "Marinade", nil, "49.00", nil, true))

		a, err := svc.Get(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, "Marinade", a.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM addons WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(addonRows())

		_, err := svc.Get(context.Background(), id.String())
		assert.ErrorIs(t, err, ErrAddonNotFound)
	})

	t.Run("InvalidID", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "x")
		assert.ErrorIs(t, err, ErrInvalidAddonID)
	})
}
