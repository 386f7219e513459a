package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taza-be/internal/logger"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]*Shop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Shop, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

var shopColumns = []string{
	"id", "name", "description", "image_url", "address",
	"rating", "delivery_time_minutes", "is_open", "created_at",
}

func scanShop(row interface{ Scan(...any) error }) (*Shop, error) {
	var s Shop
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.ImageURL, &s.Address,
		&s.Rating, &s.DeliveryTimeMinutes, &s.IsOpen, &s.CreatedAt,
	)
	return &s, err
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]*Shop, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Shop"),
		zap.String("method", "List"),
	)

	q := squirrel.Select(shopColumns...).
		From("shops").
		PlaceholderFormat(squirrel.Dollar)

	if f.Search != "" {
		q = q.Where(squirrel.ILike{"name": "%" + f.Search + "%"})
	}
	if f.OpenOnly {
		q = q.Where(squirrel.Eq{"is_open": true})
	}

	query, args, err := q.OrderBy("is_open DESC", "name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build shops query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	shops := []*Shop{}
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Shop, error) {
	query, args, err := squirrel.Select(shopColumns...).
		From("shops").
		Where(squirrel.Eq{"id": id.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build shop query: %w", err)
	}

	s, err := scanShop(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("query failed",
			zap.String("repo", "Shop"),
			zap.String("method", "GetByID"),
			zap.Error(err),
		)
		return nil, err
	}
	return s, nil
}
