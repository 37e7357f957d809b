package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kitchen-facing order progression. No transition table is enforced: any
// non-empty status is accepted on update, matching the behaviour existing
// clients rely on.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusDelivered = "DELIVERED"
)

// OrderItem is a line of an order. It references the product by identity
// only and captures the unit price at order time, so later menu price
// changes never affect historical totals.
type OrderItem struct {
	ID                  int64           `json:"id,omitempty"`
	OrderID             int64           `json:"order_id,omitempty"`
	ProductID           int64           `json:"product_id"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// Order is the aggregate root owning its items. Items never exist without
// a parent order and are deleted with it. Payment fields are opaque
// pass-through strings.
type Order struct {
	ID            int64           `json:"id,omitempty"`
	TableID       int64           `json:"table_id"`
	TableNumber   string          `json:"table_number,omitempty"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	CustomerNotes string          `json:"customer_notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
	Items         []OrderItem     `json:"items"`
}

// OrderItemRequest is one item of a create-order request. The unit price
// is a pointer so an omitted price can be told apart from zero.
type OrderItemRequest struct {
	ProductID           int64            `json:"product_id"`
	Quantity            int              `json:"quantity"`
	UnitPrice           *decimal.Decimal `json:"unit_price"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
}

// CreateOrderRequest is the payload of POST /api/orders.
type CreateOrderRequest struct {
	TableID       int64              `json:"table_id"`
	OrderNumber   string             `json:"order_number,omitempty"`
	Status        string             `json:"status,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	PaymentStatus string             `json:"payment_status,omitempty"`
	CustomerNotes string             `json:"customer_notes,omitempty"`
	Items         []OrderItemRequest `json:"items"`
}

// Validate checks the request before any mutation happens. Table existence
// is resolved separately against the table directory.
func (req *CreateOrderRequest) Validate() error {
	if req.TableID == 0 {
		return fmt.Errorf("%w: order must reference a table", ErrInvalidArgument)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must have at least one item", ErrInvalidArgument)
	}
	for i, item := range req.Items {
		if item.UnitPrice == nil {
			return fmt.Errorf("%w: items[%d] must have a unit price", ErrInvalidArgument, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity must be positive", ErrInvalidArgument, i)
		}
	}
	return nil
}

// TotalAmount computes the exact decimal sum of unit price times quantity
// over all items. Callers must Validate first so every price is present.
func (req *CreateOrderRequest) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range req.Items {
		if item.UnitPrice == nil {
			continue
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// GenerateOrderNumber returns a time-based order number. Uniqueness is
// best-effort; the number exists so staff can read it aloud, not as a key.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

// StatusUpdateRequest is the payload of the PUT .../status endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
