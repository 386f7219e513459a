package payment

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
	ListByUser(ctx context.Context, userID uint) ([]*PaymentMethod, error)
	GetByID(ctx context.Context, id uuid.UUID, userID uint) (*PaymentMethod, error)
	CountByUser(ctx context.Context, userID uint) (int, error)
	Create(ctx context.Context, pm *PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID, userID uint) error
	SetDefault(ctx context.Context, userID uint, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `id, user_id, type, label, last4, upi_id, is_default, created_at`

func scanMethod(row interface{ Scan(...any) error }) (*PaymentMethod, error) {
	var pm PaymentMethod
	err := row.Scan(
		&pm.ID, &pm.UserID, &pm.Type, &pm.Label,
		&pm.Last4, &pm.UPIID, &pm.IsDefault, &pm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*PaymentMethod, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Payment"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM payment_methods
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	methods := []*PaymentMethod{}
	for rows.Next() {
		pm, err := scanMethod(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID, userID uint) (*PaymentMethod, error) {
	pm, err := scanMethod(r.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM payment_methods
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("query failed",
			zap.String("repo", "Payment"),
			zap.String("method", "GetByID"),
			zap.Error(err),
		)
		return nil, err
	}
	return pm, nil
}

func (r *repository) CountByUser(ctx context.Context, userID uint) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payment_methods WHERE user_id = $1`, userID,
	).Scan(&n)
	return n, err
}

func clearDefault(ctx context.Context, tx *sql.Tx, userID uint) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE payment_methods
		SET is_default = false
		WHERE user_id = $1 AND is_default = true
	`, userID)
	return err
}

func (r *repository) Create(ctx context.Context, pm *PaymentMethod) error {
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if pm.IsDefault {
			if err := clearDefault(ctx, tx, pm.UserID); err != nil {
				return err
			}
		}
		return tx.QueryRowContext(ctx, `
			INSERT INTO payment_methods (id, user_id, type, label, last4, upi_id, is_default)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at
		`,
			pm.ID, pm.UserID, pm.Type, pm.Label, pm.Last4, pm.UPIID, pm.IsDefault,
		).Scan(&pm.CreatedAt)
	})
	if err != nil {
		logger.FromCtx(ctx).Error("insert failed",
			zap.String("repo", "Payment"),
			zap.String("method", "Create"),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID, userID uint) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM payment_methods WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("delete failed",
			zap.String("repo", "Payment"),
			zap.String("method", "Delete"),
			zap.Error(err),
		)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPaymentMethodNotFound
	}
	return nil
}

func (r *repository) SetDefault(ctx context.Context, userID uint, id uuid.UUID) error {
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := clearDefault(ctx, tx, userID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE payment_methods
			SET is_default = true
			WHERE id = $1 AND user_id = $2
		`, id, userID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrPaymentMethodNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrPaymentMethodNotFound) {
		logger.FromCtx(ctx).Error("set default failed",
			zap.String("repo", "Payment"),
			zap.String("method", "SetDefault"),
			zap.Error(err),
		)
	}
	return err
}
