// Package display implements the console subscribers: the kitchen-wide
// screen and the per-table customer screen. Each holds one long-lived
// broker connection and renders incoming notifications as human-readable
// lines.
package display

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/messaging"
	"restaurant-pos/internal/models"
)

// KitchenDisplay consumes the kitchen-wide channel: new orders, order
// status changes and table requests.
type KitchenDisplay struct {
	consumer *messaging.Consumer
	logger   *logger.Logger
}

// NewKitchenDisplay creates a kitchen display over the given consumer.
func NewKitchenDisplay(consumer *messaging.Consumer, log *logger.Logger) *KitchenDisplay {
	return &KitchenDisplay{consumer: consumer, logger: log}
}

// Run consumes until the context is cancelled.
func (d *KitchenDisplay) Run(ctx context.Context) error {
	return d.consumer.StartConsuming(ctx, d.handleMessage)
}

// handleMessage renders one kitchen notification. Order and request
// payloads share the channel; they are told apart by their identity field.
func (d *KitchenDisplay) handleMessage(ctx context.Context, body []byte) error {
	var probe struct {
		OrderID   int64 `json:"order_id"`
		RequestID int64 `json:"request_id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("parse notification: %w", err)
	}

	switch {
	case probe.RequestID != 0:
		var n models.RequestNotification
		if err := messaging.ParseMessage(body, &n); err != nil {
			return fmt.Errorf("parse request notification: %w", err)
		}
		fmt.Println(n.NotificationMessage)
		d.logger.Info("notification_displayed", "", "Table request notification displayed", map[string]interface{}{
			"request_id":   n.RequestID,
			"table_id":     n.TableID,
			"request_type": n.RequestType,
		})
	case probe.OrderID != 0:
		var n models.OrderNotification
		if err := messaging.ParseMessage(body, &n); err != nil {
			return fmt.Errorf("parse order notification: %w", err)
		}
		fmt.Println(FormatOrderLine(&n))
		d.logger.Info("notification_displayed", "", "Order notification displayed", map[string]interface{}{
			"order_id":     n.OrderID,
			"order_number": n.OrderNumber,
			"status":       n.Status,
		})
	default:
		d.logger.Error("notification_unrecognized", "", "Unrecognized notification payload", nil, map[string]interface{}{
			"size": len(body),
		})
	}

	return nil
}

// FormatOrderLine renders an order notification for the console.
func FormatOrderLine(n *models.OrderNotification) string {
	timestamp := n.CreatedAt.Format("2006-01-02 15:04:05")

	switch n.Status {
	case models.OrderStatusPending:
		return fmt.Sprintf("🧾 [%s] %s | %s | %s ₺ | %s",
			timestamp, n.OrderNumber, n.TableNumber, n.TotalAmount.StringFixed(2), n.Message)
	case models.OrderStatusPreparing:
		return fmt.Sprintf("🍳 [%s] %s | %s | hazırlanıyor",
			timestamp, n.OrderNumber, n.TableNumber)
	case models.OrderStatusReady:
		return fmt.Sprintf("✅ [%s] %s | %s | hazır",
			timestamp, n.OrderNumber, n.TableNumber)
	case models.OrderStatusDelivered:
		return fmt.Sprintf("🎉 [%s] %s | %s | teslim edildi",
			timestamp, n.OrderNumber, n.TableNumber)
	default:
		return fmt.Sprintf("📋 [%s] %s | %s | %s | %s",
			timestamp, n.OrderNumber, n.TableNumber, n.Status, n.Message)
	}
}
