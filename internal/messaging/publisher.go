package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/mickey-panda/caffeine-club-online/internal/logger"
)

// OrderPlacedEvent is the message emitted after an order is persisted.
type OrderPlacedEvent struct {
	OrderID   string    `json:"order_id"`
	Total     int64     `json:"total"`
	ItemCount int       `json:"item_count"`
	Slot      time.Time `json:"slot"`
	Status    string    `json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
}

// Publisher publishes order events to the orders topic exchange.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{conn: conn, logger: log}
}

// PublishOrderPlaced emits an order.placed event. Failures are returned
// to the caller, who logs and moves on; the order is already persisted
// and the handoff message carries the identifier either way.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	return p.publish(ctx, "order.placed", event)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, message any) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: 2, // persistent
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		ordersExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		publishing,
	)
	if err != nil {
		p.logger.Error("message_publish_failed",
			"", fmt.Sprintf("Failed to publish message to exchange %s", ordersExchange), err,
			"routing_key", routingKey)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("message_published",
		"", fmt.Sprintf("Published message to exchange %s", ordersExchange),
		"routing_key", routingKey, "message_size", len(body))
	return nil
}

// Close closes the underlying connection.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
