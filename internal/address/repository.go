package address

import (
	"context"
	"database/sql"
	"errors"

	"taza-be/internal/db"
	"taza-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, id uuid.UUID, userID uint) (*Address, error)
	CountByUser(ctx context.Context, userID uint) (int, error)

	Create(ctx context.Context, addr *Address) error
	Update(ctx context.Context, addr *Address) error
	Deactivate(ctx context.Context, id uuid.UUID, userID uint) error

	SetDefault(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	id, user_id,
	label, receiver_name, phone,
	address_line1, address_line2, landmark,
	city, state, postal_code,
	latitude, longitude,
	is_default, is_active,
	created_at, updated_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanAddress(row scanner) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID,
		&a.Label, &a.ReceiverName, &a.Phone,
		&a.AddressLine1, &a.AddressLine2, &a.Landmark,
		&a.City, &a.State, &a.PostalCode,
		&a.Latitude, &a.Longitude,
		&a.IsDefault, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	q := `SELECT ` + selectColumns + `
		FROM addresses
		WHERE user_id = $1
		  AND is_active = true
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
	userID uint,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "GetByID"),
		zap.String("address_id", id.String()),
	)

	q := `SELECT ` + selectColumns + `
		FROM addresses
		WHERE id = $1 AND user_id = $2 AND is_active = true
		LIMIT 1
	`

	a, err := scanAddress(r.db.QueryRowContext(ctx, q, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return a, nil
}

func (r *repository) CountByUser(ctx context.Context, userID uint) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM addresses WHERE user_id = $1 AND is_active = true`,
		userID,
	).Scan(&n)
	return n, err
}

// Create inserts addr. A default address first clears the user's previous
// default in the same transaction.
func (r *repository) Create(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Create"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		INSERT INTO addresses (
			id, user_id,
			label, receiver_name, phone,
			address_line1, address_line2, landmark,
			city, state, postal_code,
			latitude, longitude,
			is_default, is_active
		) VALUES (
			$1, $2,
			$3, $4, $5,
			$6, $7, $8,
			$9, $10, $11,
			$12, $13,
			$14, $15
		)
		RETURNING created_at, updated_at
	`

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if addr.IsDefault {
			if err := clearDefault(ctx, tx, addr.UserID); err != nil {
				return err
			}
		}

		return tx.QueryRowContext(
			ctx, q,
			addr.ID, addr.UserID,
			addr.Label, addr.ReceiverName, addr.Phone,
			addr.AddressLine1, addr.AddressLine2, addr.Landmark,
			addr.City, addr.State, addr.PostalCode,
			addr.Latitude, addr.Longitude,
			addr.IsDefault, addr.IsActive,
		).Scan(&addr.CreatedAt, &addr.UpdatedAt)
	})
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	return nil
}

// Update rewrites the editable fields of an address in place.
func (r *repository) Update(
	ctx context.Context,
	addr *Address,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Update"),
		zap.String("address_id", addr.ID.String()),
	)

	const q = `
		UPDATE addresses
		SET label = $3,
		    receiver_name = $4,
		    phone = $5,
		    address_line1 = $6,
		    address_line2 = $7,
		    landmark = $8,
		    city = $9,
		    state = $10,
		    postal_code = $11,
		    latitude = $12,
		    longitude = $13,
		    updated_at = NOW()
		WHERE id = $1
		  AND user_id = $2
		  AND is_active = true
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		addr.ID, addr.UserID,
		addr.Label, addr.ReceiverName, addr.Phone,
		addr.AddressLine1, addr.AddressLine2, addr.Landmark,
		addr.City, addr.State, addr.PostalCode,
		addr.Latitude, addr.Longitude,
	).Scan(&addr.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrAddressNotFound
	}
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) Deactivate(
	ctx context.Context,
	id uuid.UUID,
	userID uint,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "Deactivate"),
		zap.String("address_id", id.String()),
	)
	log.Debug("Start deactivating address")

	const q = `
		UPDATE addresses
		SET is_active = false,
		    is_default = false,
		    updated_at = NOW()
		WHERE id = $1
		  AND user_id = $2
		  AND is_active = true
	`

	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		log.Error("deactivate failed", zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func clearDefault(ctx context.Context, tx *sql.Tx, userID uint) error {
	const q = `
		UPDATE addresses
		SET is_default = false
		WHERE user_id = $1
		  AND is_default = true
	`
	_, err := tx.ExecContext(ctx, q, userID)
	return err
}

// SetDefault clears the user's current default and flags addressID, in one
// transaction. Nothing changes when the address is not the user's.
func (r *repository) SetDefault(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "SetDefault"),
		zap.Uint("user_id", userID),
		zap.String("address_id", addressID.String()),
	)

	const q = `
		UPDATE addresses
		SET is_default = true,
		    updated_at = NOW()
		WHERE user_id = $1
		  AND id = $2
		  AND is_active = true
	`

	log.Debug("Start setting default address")

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := clearDefault(ctx, tx, userID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, q, userID, addressID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrAddressNotFound) {
		log.Error("set default failed", zap.Error(err))
	}
	return err
}
