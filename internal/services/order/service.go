// Package order implements the order ledger: it owns the Order/OrderItem
// aggregate, computes totals, applies status changes and fans the
// resulting notifications out to the kitchen and per-table channels.
package order

import (
	"context"
	"fmt"
	"time"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/notify"
)

// TableDirectory resolves table references at order creation time.
type TableDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Table, error)
}

// Service is the order ledger.
type Service struct {
	repo       Repository
	tables     TableDirectory
	dispatcher notify.Dispatcher
	channels   notify.Channels
	logger     *logger.Logger
	now        func() time.Time
}

// NewService creates the order ledger service.
func NewService(repo Repository, tables TableDirectory, dispatcher notify.Dispatcher, channels notify.Channels, log *logger.Logger) *Service {
	return &Service{
		repo:       repo,
		tables:     tables,
		dispatcher: dispatcher,
		channels:   channels,
		logger:     log,
		now:        time.Now,
	}
}

// Create validates the request, resolves the table, computes the total and
// persists the aggregate. The order is the durable source of truth: the
// kitchen notification afterwards is best-effort and never rolls back
// persistence.
func (s *Service) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	table, err := s.tables.GetByID(ctx, req.TableID)
	if err != nil {
		return nil, fmt.Errorf("table %d: %w", req.TableID, err)
	}

	now := s.now().UTC()
	order := &models.Order{
		TableID:       table.ID,
		TableNumber:   table.TableNumber,
		OrderNumber:   req.OrderNumber,
		Status:        req.Status,
		TotalAmount:   req.TotalAmount(),
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		CustomerNotes: req.CustomerNotes,
		CreatedAt:     now,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = models.GenerateOrderNumber(now)
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:           item.ProductID,
			Quantity:            item.Quantity,
			UnitPrice:           *item.UnitPrice,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	s.publish(ctx, s.channels.Kitchen(), models.NewOrderNotification(order, "Yeni sipariş geldi!"))

	return order, nil
}

// UpdateStatus sets the order status and notifies both the kitchen and the
// order's table. Re-setting the same status is allowed and still notifies.
// The two publishes are independent: failure of one never blocks the other
// or the caller's response.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status cannot be empty", models.ErrInvalidArgument)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order.Status = status
	order.UpdatedAt = &now

	if err := s.repo.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, fmt.Errorf("persist status: %w", err)
	}

	s.publish(ctx, s.channels.Kitchen(),
		models.NewOrderNotification(order, "Sipariş durumu güncellendi: "+status))
	if order.TableID != 0 {
		s.publish(ctx, s.channels.Table(order.TableID),
			models.NewOrderNotification(order, "Sipariş durumunuz güncellendi: "+status))
	}

	return order, nil
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

// GetByID returns one order with its items.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByTable returns the orders of one table, newest first. An unknown
// table yields an empty list, not an error.
func (s *Service) ListByTable(ctx context.Context, tableID int64) ([]models.Order, error) {
	return s.repo.ListByTable(ctx, tableID)
}

// publish sends a notification and swallows any failure: delivery is
// best-effort, the persisted order is the source of truth.
func (s *Service) publish(ctx context.Context, channel string, payload interface{}) {
	if err := s.dispatcher.Publish(ctx, channel, payload); err != nil {
		s.logger.Error("notification_publish_failed", "",
			fmt.Sprintf("Failed to publish to channel %s", channel),
			err, map[string]interface{}{"channel": channel})
	}
}
