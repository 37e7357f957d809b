package display

import (
	"context"
	"fmt"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/messaging"
	"restaurant-pos/internal/models"
)

// TableDisplay consumes one table's channel and shows that table's order
// status updates only.
type TableDisplay struct {
	consumer *messaging.Consumer
	tableID  int64
	logger   *logger.Logger
}

// NewTableDisplay creates a display for one table over the given consumer.
func NewTableDisplay(consumer *messaging.Consumer, tableID int64, log *logger.Logger) *TableDisplay {
	return &TableDisplay{consumer: consumer, tableID: tableID, logger: log}
}

// Run consumes until the context is cancelled.
func (d *TableDisplay) Run(ctx context.Context) error {
	return d.consumer.StartConsuming(ctx, d.handleMessage)
}

func (d *TableDisplay) handleMessage(ctx context.Context, body []byte) error {
	var n models.OrderNotification
	if err := messaging.ParseMessage(body, &n); err != nil {
		return fmt.Errorf("parse order notification: %w", err)
	}

	fmt.Printf("[%s] %s: %s\n", n.CreatedAt.Format("15:04:05"), n.OrderNumber, n.Message)
	d.logger.Info("notification_displayed", "", "Order update displayed", map[string]interface{}{
		"table_id":     d.tableID,
		"order_number": n.OrderNumber,
		"status":       n.Status,
	})

	return nil
}
