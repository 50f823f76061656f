// Package messaging publishes order lifecycle events to RabbitMQ so
// back-of-house tooling (the biller, staff notification bots) can react
// to new storefront orders. The storefront works without a broker; the
// publisher is only wired when rabbitmq.enabled is set.
package messaging

import (
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/mickey-panda/caffeine-club-online/internal/config"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
)

const ordersExchange = "orders_topic"

// Connection wraps a RabbitMQ connection with reconnection logic.
type Connection struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *logger.Logger
	url     string
}

// New establishes the initial RabbitMQ connection and declares the
// orders exchange.
func New(cfg *config.Config, log *logger.Logger) (*Connection, error) {
	c := &Connection{
		logger: log,
		url:    cfg.RabbitMQURL(),
	}

	if err := c.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}
	return c, nil
}

// connect dials RabbitMQ with retry and sets up topology.
func (c *Connection) connect() error {
	maxRetries := 5
	var err error

	for i := 0; i < maxRetries; i++ {
		c.conn, err = amqp091.Dial(c.url)
		if err == nil {
			c.channel, err = c.conn.Channel()
			if err == nil {
				if setupErr := c.setupTopology(); setupErr != nil {
					c.logger.Error("rabbitmq_setup_failed", "startup", "Failed to set up topology", setupErr)
					c.closeLocked()
					err = setupErr
				} else {
					return nil
				}
			} else {
				c.conn.Close()
			}
		}

		if i < maxRetries-1 {
			waitTime := time.Duration(i+1) * 2 * time.Second
			c.logger.Error("rabbitmq_connection_failed", "startup",
				fmt.Sprintf("Failed to connect to RabbitMQ, retrying in %v", waitTime), err)
			time.Sleep(waitTime)
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}

func (c *Connection) setupTopology() error {
	err := c.channel.ExchangeDeclare(
		ordersExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s exchange: %w", ordersExchange, err)
	}
	return nil
}

// IsClosed reports whether the underlying connection is gone.
func (c *Connection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn == nil || c.conn.IsClosed()
}

// Reconnect re-establishes a dropped connection.
func (c *Connection) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return c.connect()
}

// Channel returns the active AMQP channel.
func (c *Connection) Channel() *amqp091.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

// Close shuts down the channel and connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return nil
}

func (c *Connection) closeLocked() {
	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
