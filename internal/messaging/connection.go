package messaging

import (
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
)

// EventsExchange is the single broadcast exchange for the whole system.
// Logical channel names (kitchen, table.<id>) are its routing keys.
const EventsExchange = "restaurant_events"

// KitchenQueue is the durable queue every kitchen display consumes from.
const KitchenQueue = "kitchen_notifications"

// Connection wraps the RabbitMQ connection with reconnection logic.
type Connection struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	config  *config.Config
	logger  *logger.Logger
	url     string
}

// New creates a new RabbitMQ connection and declares the topology.
func New(cfg *config.Config, log *logger.Logger) (*Connection, error) {
	conn := &Connection{
		config: cfg,
		logger: log,
		url:    cfg.AMQPURL(),
	}

	err := conn.connect()
	if err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}

	return conn, nil
}

// connect establishes the connection with retry logic.
func (c *Connection) connect() error {
	maxRetries := 5
	var err error

	for i := 0; i < maxRetries; i++ {
		c.conn, err = amqp091.Dial(c.url)
		if err == nil {
			c.channel, err = c.conn.Channel()
			if err == nil {
				if setupErr := c.setupTopology(); setupErr != nil {
					c.logger.Error("amqp_setup_failed", "startup", "Failed to set up topology", setupErr, nil)
					c.close()
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
			c.logger.Error("amqp_connection_failed",
				"startup",
				fmt.Sprintf("Failed to connect to RabbitMQ, retrying in %v", waitTime),
				err, nil)
			time.Sleep(waitTime)
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", maxRetries, err)
}

// setupTopology declares the events exchange and the kitchen queue. Table
// display queues are declared per client via DeclareSubscription.
func (c *Connection) setupTopology() error {
	err := c.channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s exchange: %w", EventsExchange, err)
	}

	_, err = c.channel.QueueDeclare(
		KitchenQueue, // name
		true,         // durable
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", KitchenQueue, err)
	}

	err = c.channel.QueueBind(
		KitchenQueue,   // queue name
		"kitchen",      // routing key
		EventsExchange, // exchange
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", KitchenQueue, err)
	}

	return nil
}

// DeclareSubscription declares a client-owned queue bound to one logical
// channel. Used by displays to subscribe to the channels they care about;
// the queue disappears with the client.
func (c *Connection) DeclareSubscription(queueName, channel string) error {
	_, err := c.channel.QueueDeclare(
		queueName, // name
		false,     // durable
		true,      // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare subscription queue %s: %w", queueName, err)
	}

	err = c.channel.QueueBind(queueName, channel, EventsExchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind queue %s to channel %s: %w", queueName, channel, err)
	}

	return nil
}

// Channel returns the current channel.
func (c *Connection) Channel() *amqp091.Channel {
	return c.channel
}

// Close closes the connection.
func (c *Connection) Close() error {
	return c.close()
}

func (c *Connection) close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsClosed checks if the connection is closed.
func (c *Connection) IsClosed() bool {
	return c.conn == nil || c.conn.IsClosed()
}

// Reconnect attempts to reconnect to RabbitMQ.
func (c *Connection) Reconnect() error {
	c.close()
	return c.connect()
}
