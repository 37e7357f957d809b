package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"restaurant-pos/internal/logger"
)

// Publisher publishes event payloads to the events exchange.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a new message publisher.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// Publish serializes the payload as JSON and publishes it to the events
// exchange under the given logical channel (routing key).
func (p *Publisher) Publish(ctx context.Context, channel string, payload interface{}) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Transient,
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		EventsExchange, // exchange
		channel,        // routing key
		false,          // mandatory
		false,          // immediate
		publishing,
	)

	if err != nil {
		p.logger.Error("message_publish_failed",
			"",
			fmt.Sprintf("Failed to publish message to channel %s", channel),
			err, map[string]interface{}{
				"exchange": EventsExchange,
				"channel":  channel,
			})
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("message_published",
		"",
		fmt.Sprintf("Published message to channel %s", channel),
		map[string]interface{}{
			"exchange":     EventsExchange,
			"channel":      channel,
			"message_size": len(body),
		})

	return nil
}

// Close closes the publisher.
func (p *Publisher) Close() error {
	return p.conn.Close()
}
