package category

import (
	"context"
	"database/sql"

	"taza-be/internal/db"
	"taza-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, c *Category) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Category"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, image_url, sort_order
		FROM categories
		ORDER BY sort_order ASC, name ASC
	`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.SortOrder); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, c *Category) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, image_url, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id
	`, c.Name, c.ImageURL, c.SortOrder).Scan(&c.ID)
	if _, dup := db.UniqueViolation(err); dup {
		return ErrCategoryExist
	}
	if err != nil {
		logger.FromCtx(ctx).Error("insert failed",
			zap.String("repo", "Category"),
			zap.String("method", "Create"),
			zap.Error(err),
		)
	}
	return err
}
