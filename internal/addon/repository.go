package addon

import (
	"context"
	"database/sql"
	"errors"

	"taza-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, includeUnavailable bool) ([]*Addon, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Addon, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `id, name, description, price, image_url, is_available`

func (r *repository) List(ctx context.Context, includeUnavailable bool) ([]*Addon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Addon"),
		zap.String("method", "List"),
		zap.Bool("include_unavailable", includeUnavailable),
	)

	q := `SELECT ` + selectColumns + ` FROM addons`
	if !includeUnavailable {
		q += ` WHERE is_available = true`
	}
	q += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	addons := []*Addon{}
	for rows.Next() {
		var a Addon
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.ImageURL, &a.IsAvailable); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		addons = append(addons, &a)
	}
	return addons, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Addon, error) {
	var a Addon
	err := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM addons WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.Description, &a.Price, &a.ImageURL, &a.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddonNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("query failed",
			zap.String("repo", "Addon"),
			zap.String("method", "GetByID"),
			zap.Error(err),
		)
		return nil, err
	}
	return &a, nil
}
