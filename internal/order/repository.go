package order

import (
	"context"
	"database/sql"
	"errors"

	"taza-be/internal/coupon"
	"taza-be/internal/db"
	"taza-be/internal/logger"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// AnyUser disables owner scoping in repository lookups. Used for admins.
const AnyUser uint = 0

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id uuid.UUID, userID uint) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	UpdateStatus(ctx context.Context, u *StatusUpdate) (*StatusChange, error)
	AssignAgent(ctx context.Context, id uuid.UUID, userID uint, name, mobile string) error
}

type repository struct {
	db           *sql.DB
	numberOffset int
}

func NewRepository(db *sql.DB, numberOffset int) Repository {
	return &repository{db: db, numberOffset: numberOffset}
}

const orderColumns = `
	id, user_id, shop_id, address_id, order_number,
	subtotal, delivery_charge, discount, total, coupon_id,
	status, status_note,
	payment_method_id, payment_method, otp,
	delivery_eta, delivered_at,
	delivery_agent_name, delivery_agent_mobile,
	created_at, updated_at
`

const ownerScope = `($2::bigint = 0 OR user_id = $2)`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.ShopID, &o.AddressID, &o.OrderNumber,
		&o.Subtotal, &o.DeliveryCharge, &o.Discount, &o.Total, &o.CouponID,
		&o.Status, &o.StatusNote,
		&o.PaymentMethodID, &o.PaymentMethod, &o.OTP,
		&o.DeliveryETA, &o.DeliveredAt,
		&o.DeliveryAgentName, &o.DeliveryAgentMobile,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create writes the order, its items, the "Order Placed" timeline event and
// the coupon redemption in one transaction. The order number is derived
// from the order count read inside that transaction; a concurrent insert
// with the same number fails on the unique index.
func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "Create"),
		zap.Uint("user_id", o.UserID),
	)

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
			return err
		}
		o.OrderNumber = utils.GenerateOrderNumber(count, r.numberOffset)

		if o.CouponID.Valid {
			if err := coupon.Redeem(ctx, tx, o.CouponID.UUID); err != nil {
				return err
			}
		}

		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (
				id, user_id, shop_id, address_id, order_number,
				subtotal, delivery_charge, discount, total, coupon_id,
				status, status_note,
				payment_method_id, payment_method, otp,
				delivery_eta
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			RETURNING created_at, updated_at
		`,
			o.ID, o.UserID, o.ShopID, o.AddressID, o.OrderNumber,
			o.Subtotal, o.DeliveryCharge, o.Discount, o.Total, o.CouponID,
			o.Status, o.StatusNote,
			o.PaymentMethodID, o.PaymentMethod, o.OTP,
			o.DeliveryETA,
		).Scan(&o.CreatedAt, &o.UpdatedAt)
		if _, dup := db.UniqueViolation(err); dup {
			return ErrOrderNumberConflict
		}
		if err != nil {
			return err
		}

		for i := range o.Items {
			it := &o.Items[i]
			it.OrderID = o.ID
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, addon_id, name, weight, price, quantity, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`,
				it.ID, it.OrderID, it.ProductID, it.AddonID, it.Name, it.Weight, it.Price, it.Quantity, i,
			); err != nil {
				return err
			}
		}

		for i := range o.Timeline {
			if err := insertTimeline(ctx, tx, &o.Timeline[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, coupon.ErrCouponExhausted) && !errors.Is(err, ErrOrderNumberConflict) {
			log.Error("create order failed", zap.Error(err))
		}
		return err
	}

	log.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.OrderNumber),
	)
	return nil
}

func insertTimeline(ctx context.Context, tx *sql.Tx, ev *TimelineEvent) error {
	return tx.QueryRowContext(ctx, `
		INSERT INTO order_timeline (id, order_id, stage, description, is_completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, ev.ID, ev.OrderID, ev.Stage, ev.Description, ev.IsCompleted).Scan(&ev.CreatedAt)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID, userID uint) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "GetByID"),
		zap.String("order_id", id.String()),
	)

	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND `+ownerScope,
		id, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		log.Error("query order failed", zap.Error(err))
		return nil, err
	}

	items, err := r.itemsFor(ctx, []uuid.UUID{o.ID})
	if err != nil {
		log.Error("query items failed", zap.Error(err))
		return nil, err
	}
	o.Items = items[o.ID]

	if o.Timeline, err = r.timeline(ctx, o.ID); err != nil {
		log.Error("query timeline failed", zap.Error(err))
		return nil, err
	}
	return o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	ids := []uuid.UUID{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		log.Error("query items failed", zap.Error(err))
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

func (r *repository) itemsFor(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItem, error) {
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, addon_id, name, weight, price, quantity
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, position ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]OrderItem, len(orderIDs))
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.AddonID,
			&it.Name, &it.Weight, &it.Price, &it.Quantity,
		); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *repository) timeline(ctx context.Context, orderID uuid.UUID) ([]TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, stage, description, is_completed, created_at
		FROM order_timeline
		WHERE order_id = $1
		ORDER BY created_at ASC, seq ASC
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []TimelineEvent{}
	for rows.Next() {
		var ev TimelineEvent
		if err := rows.Scan(&ev.ID, &ev.OrderID, &ev.Stage, &ev.Description, &ev.IsCompleted, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// UpdateStatus locks the order row, rejects terminal orders, writes the new
// status and appends u.Event, all in one transaction.
func (r *repository) UpdateStatus(ctx context.Context, u *StatusUpdate) (*StatusChange, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", u.OrderID.String()),
		zap.String("status", string(u.Status)),
	)

	var change StatusChange
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT status, order_number, user_id FROM orders WHERE id = $1 AND `+ownerScope+` FOR UPDATE`,
			u.OrderID, u.UserID,
		).Scan(&change.OldStatus, &change.OrderNumber, &change.OwnerID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if change.OldStatus.Terminal() {
			return ErrOrderClosed
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE orders
			SET status = $2,
			    status_note = $3,
			    delivered_at = CASE WHEN $4 THEN NOW() ELSE delivered_at END,
			    updated_at = NOW()
			WHERE id = $1
		`, u.OrderID, u.Status, u.Note, u.Status == StatusDelivered); err != nil {
			return err
		}

		return insertTimeline(ctx, tx, &u.Event)
	})
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) && !errors.Is(err, ErrOrderClosed) {
			log.Error("update status failed", zap.Error(err))
		}
		return nil, err
	}
	return &change, nil
}

func (r *repository) AssignAgent(ctx context.Context, id uuid.UUID, userID uint, name, mobile string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET delivery_agent_name = $3,
		    delivery_agent_mobile = $4,
		    updated_at = NOW()
		WHERE id = $1
		  AND `+ownerScope+`
		  AND status NOT IN ('Delivered', 'Cancelled')
	`, id, userID, name, mobile)
	if err != nil {
		logger.FromCtx(ctx).Error("assign agent failed",
			zap.String("repo", "Order"),
			zap.String("order_id", id.String()),
			zap.Error(err),
		)
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = $1 AND `+ownerScope, id, userID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return ErrOrderClosed
}
