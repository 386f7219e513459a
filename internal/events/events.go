package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"taza-be/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const OrderStatusExchange = "order_status_fanout"

type OrderStatusEvent struct {
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	UserID      uint      `json:"userId"`
	OldStatus   string    `json:"oldStatus"`
	NewStatus   string    `json:"newStatus"`
	Note        string    `json:"note,omitempty"`
	ChangedAt   time.Time `json:"changedAt"`
}

type Publisher interface {
	PublishOrderStatus(ctx context.Context, evt OrderStatusEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderStatus(context.Context, OrderStatusEvent) error { return nil }
func (NopPublisher) Close() error                                             { return nil }

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	declared bool
}

// NewAMQPPublisher dials the broker and opens one channel shared by all
// publishes.
func NewAMQPPublisher(url string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &amqpPublisher{conn: conn, ch: ch}, nil
}

func newPublisherWithChannel(ch Channel) *amqpPublisher {
	return &amqpPublisher{ch: ch}
}

func (p *amqpPublisher) PublishOrderStatus(ctx context.Context, evt OrderStatusEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// amqp channels are not safe for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()

	// a failed declare is retried on the next publish
	if !p.declared {
		if err := p.ch.ExchangeDeclare(OrderStatusExchange, "fanout", true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange: %w", err)
		}
		p.declared = true
	}

	err = p.ch.PublishWithContext(ctx, OrderStatusExchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    evt.ChangedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// New returns an AMQP publisher when url is set, otherwise a NopPublisher.
// A broker that cannot be reached is logged and replaced by the no-op.
func New(url string) Publisher {
	if url == "" {
		return NopPublisher{}
	}
	pub, err := NewAMQPPublisher(url)
	if err != nil {
		logger.L().Warn("order status events disabled", zap.Error(err))
		return NopPublisher{}
	}
	return pub
}
