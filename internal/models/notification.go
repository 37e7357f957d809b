package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderNotification is the payload published for new orders and order
// status changes. The same shape goes to the kitchen-wide channel and the
// per-table channel; no per-channel field filtering.
type OrderNotification struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TableID     int64           `json:"table_id,omitempty"`
	TableNumber string          `json:"table_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Message     string          `json:"message"`
}

// RequestNotification is the payload published when a table raises a
// service request. NotificationMessage is the pre-rendered line the
// kitchen screen displays.
type RequestNotification struct {
	RequestID           int64     `json:"request_id"`
	TableID             int64     `json:"table_id"`
	TableNumber         string    `json:"table_number"`
	RequestType         string    `json:"request_type"`
	Message             string    `json:"message,omitempty"`
	NotificationMessage string    `json:"notification_message"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewOrderNotification builds the published payload from an order.
func NewOrderNotification(o *Order, message string) *OrderNotification {
	return &OrderNotification{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		TableID:     o.TableID,
		TableNumber: o.TableNumber,
		CreatedAt:   o.CreatedAt,
		Message:     message,
	}
}

// NewRequestNotification builds the published payload from a request.
func NewRequestNotification(r *TableRequest, tableNumber string) *RequestNotification {
	return &RequestNotification{
		RequestID:           r.ID,
		TableID:             r.TableID,
		TableNumber:         tableNumber,
		RequestType:         r.RequestType,
		Message:             r.Message,
		NotificationMessage: r.NotificationText(tableNumber),
		CreatedAt:           r.CreatedAt,
	}
}
