package coupon

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"taza-be/internal/db"
	"taza-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetActiveByCode(ctx context.Context, code string) (*Coupon, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*Coupon, error)
	ListActive(ctx context.Context, now time.Time) ([]*Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	Apply(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectColumns = `
	id, code, description,
	discount_type, discount_value,
	min_order_amount, max_discount,
	valid_from, valid_until,
	usage_limit, usage_count,
	is_active, created_at
`

const redeemQuery = `
	UPDATE coupons
	SET usage_count = usage_count + 1
	WHERE id = $1
	  AND is_active = true
	  AND (usage_limit IS NULL OR usage_count < usage_limit)
	  AND (valid_until IS NULL OR valid_until > NOW())
`

type scanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row scanner) (*Coupon, error) {
	var (
		c          Coupon
		validUntil sql.NullTime
		usageLimit sql.NullInt64
	)
	err := row.Scan(
		&c.ID, &c.Code, &c.Description,
		&c.DiscountType, &c.DiscountValue,
		&c.MinOrderAmount, &c.MaxDiscount,
		&c.ValidFrom, &validUntil,
		&usageLimit, &c.UsageCount,
		&c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if validUntil.Valid {
		t := validUntil.Time
		c.ValidUntil = &t
	}
	if usageLimit.Valid {
		n := int(usageLimit.Int64)
		c.UsageLimit = &n
	}
	return &c, nil
}

// Redeem increments usage_count only while the coupon is unexpired and
// still has capacity.
// q may be a transaction so the redemption commits with the order.
func Redeem(ctx context.Context, q db.Querier, id uuid.UUID) error {
	res, err := q.ExecContext(ctx, redeemQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCouponExhausted
	}
	return nil
}

func (r *repository) getActive(ctx context.Context, method, where string, arg any) (*Coupon, error) {
	c, err := scanCoupon(r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM coupons WHERE `+where+` AND is_active = true`, arg,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("query failed",
			zap.String("repo", "Coupon"),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}

func (r *repository) GetActiveByCode(ctx context.Context, code string) (*Coupon, error) {
	return r.getActive(ctx, "GetActiveByCode", "code = $1", code)
}

func (r *repository) GetActiveByID(ctx context.Context, id uuid.UUID) (*Coupon, error) {
	return r.getActive(ctx, "GetActiveByID", "id = $1", id)
}

func (r *repository) ListActive(ctx context.Context, now time.Time) ([]*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Coupon"),
		zap.String("method", "ListActive"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+selectColumns+`
		FROM coupons
		WHERE is_active = true
		  AND valid_from <= $1
		  AND (valid_until IS NULL OR valid_until > $1)
		  AND (usage_limit IS NULL OR usage_count < usage_limit)
		ORDER BY created_at DESC
	`, now)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	coupons := []*Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *repository) Create(ctx context.Context, c *Coupon) error {
	var maxDiscount any
	if c.MaxDiscount.Valid {
		maxDiscount = c.MaxDiscount.Decimal
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO coupons (
			id, code, description,
			discount_type, discount_value,
			min_order_amount, max_discount,
			valid_from, valid_until, usage_limit,
			is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,true)
		RETURNING created_at
	`,
		c.ID, c.Code, c.Description,
		c.DiscountType, c.DiscountValue,
		c.MinOrderAmount, maxDiscount,
		c.ValidFrom, c.ValidUntil, c.UsageLimit,
	).Scan(&c.CreatedAt)
	if _, dup := db.UniqueViolation(err); dup {
		return ErrCouponCodeExists
	}
	if err != nil {
		logger.FromCtx(ctx).Error("insert failed",
			zap.String("repo", "Coupon"),
			zap.String("method", "Create"),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) Apply(ctx context.Context, id uuid.UUID) error {
	return Redeem(ctx, r.db, id)
}
