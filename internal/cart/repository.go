package cart

import (
	"context"
	"database/sql"

	"taza-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	ListByUser(ctx context.Context, userID uint) ([]*CartItem, error)
	Add(ctx context.Context, item *CartItem) error
	UpdateQuantity(ctx context.Context, userID uint, itemID uuid.UUID, quantity int) error
	Remove(ctx context.Context, userID uint, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Cart"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	const q = `
		SELECT
			c.id, c.user_id, c.product_id, c.addon_id, c.quantity,
			c.created_at, c.updated_at,
			COALESCE(p.name, a.name, ''),
			p.weight,
			COALESCE(p.image_url, a.image_url),
			COALESCE(p.price, a.price, 0),
			COALESCE(p.is_available, a.is_available, false)
		FROM cart_items c
		LEFT JOIN products p ON p.id = c.product_id
		LEFT JOIN addons a ON a.id = c.addon_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []*CartItem{}
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.AddonID, &it.Quantity,
			&it.CreatedAt, &it.UpdatedAt,
			&it.Name, &it.Weight, &it.ImageURL, &it.UnitPrice, &it.IsAvailable,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Add inserts the line or, when the user already has it, adds to its
// quantity. item.ID and item.Quantity reflect the stored row afterwards.
func (r *repository) Add(ctx context.Context, item *CartItem) error {
	const q = `
		INSERT INTO cart_items (id, user_id, product_id, addon_id, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (
			user_id,
			COALESCE(product_id, '00000000-0000-0000-0000-000000000000'::uuid),
			COALESCE(addon_id, '00000000-0000-0000-0000-000000000000'::uuid)
		)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
		              updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, q,
		item.ID, item.UserID, item.ProductID, item.AddonID, item.Quantity,
	).Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("upsert failed",
			zap.String("repo", "Cart"),
			zap.String("method", "Add"),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) UpdateQuantity(ctx context.Context, userID uint, itemID uuid.UUID, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, quantity, itemID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *repository) Remove(ctx context.Context, userID uint, itemID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Clear empties the cart. An already empty cart is not an error.
func (r *repository) Clear(ctx context.Context, userID uint) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

