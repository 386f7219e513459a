package product

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
	List(ctx context.Context, f ListFilter) ([]*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

var productColumns = []string{
	"id", "shop_id", "name", "description", "category", "weight",
	"price", "original_price", "image_url", "is_available", "created_at",
}

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.ShopID, &p.Name, &p.Description, &p.Category, &p.Weight,
		&p.Price, &p.OriginalPrice, &p.ImageURL, &p.IsAvailable, &p.CreatedAt,
	)
	return &p, err
}

func buildListQuery(f ListFilter) (string, []any, error) {
	q := squirrel.Select(productColumns...).
		From("products").
		PlaceholderFormat(squirrel.Dollar)

	if f.Category != "" {
		q = q.Where(squirrel.Eq{"category": f.Category})
	}
	if f.ShopID != nil {
		q = q.Where(squirrel.Eq{"shop_id": f.ShopID.String()})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"description": like},
		})
	}
	if f.Available != nil {
		q = q.Where(squirrel.Eq{"is_available": *f.Available})
	}

	return q.OrderBy("name ASC").ToSql()
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Product"),
		zap.String("method", "List"),
	)

	query, args, err := buildListQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("products listed", zap.Int("count", len(products)))
	return products, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	query, args, err := squirrel.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product query: %w", err)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("query failed",
			zap.String("repo", "Product"),
			zap.String("method", "GetByID"),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}
