package order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/notify"
)

type fakeRepo struct {
	orders  map[int64]*models.Order
	nextID  int64
	created int
	failure error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[int64]*models.Order), nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, o *models.Order) error {
	if r.failure != nil {
		return r.failure
	}
	o.ID = r.nextID
	r.nextID++
	copied := *o
	r.orders[o.ID] = &copied
	r.created++
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}
	copied := *o
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeRepo) ListByTable(ctx context.Context, tableID int64) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.TableID == tableID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}
	o.Status = status
	o.UpdatedAt = &updatedAt
	return nil
}

type fakeTables struct {
	tables map[int64]*models.Table
}

func (f *fakeTables) GetByID(ctx context.Context, id int64) (*models.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, fmt.Errorf("table %d: %w", id, models.ErrNotFound)
	}
	return t, nil
}

type recordedPublish struct {
	channel string
	payload interface{}
}

type recordingDispatcher struct {
	published []recordedPublish
	failOn    string
}

func (d *recordingDispatcher) Publish(ctx context.Context, channel string, payload interface{}) error {
	if d.failOn != "" && channel == d.failOn {
		return errors.New("broker unavailable")
	}
	d.published = append(d.published, recordedPublish{channel: channel, payload: payload})
	return nil
}

func (d *recordingDispatcher) channels() []string {
	var out []string
	for _, p := range d.published {
		out = append(out, p.channel)
	}
	return out
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestService(repo *fakeRepo, tables *fakeTables, dispatcher *recordingDispatcher) *Service {
	s := NewService(repo, tables, dispatcher, notify.Channels{}, logger.New("test"))
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	tables := &fakeTables{tables: map[int64]*models.Table{
		3: {ID: 3, TableNumber: "Masa 3"},
	}}
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, tables, dispatcher)

	order, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 3,
		Items: []models.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: price("45.00")},
			{ProductID: 2, Quantity: 1, UnitPrice: price("30.00")},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got := order.TotalAmount.String(); got != "120.00" {
		t.Errorf("TotalAmount = %s, want 120.00", got)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %s, want %s", order.Status, models.OrderStatusPending)
	}
	if order.OrderNumber == "" {
		t.Error("expected generated order number")
	}
	if order.TableNumber != "Masa 3" {
		t.Errorf("TableNumber = %s, want Masa 3", order.TableNumber)
	}
	if len(order.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(order.Items))
	}
	if repo.created != 1 {
		t.Errorf("orders persisted = %d, want 1", repo.created)
	}

	if len(dispatcher.published) != 1 {
		t.Fatalf("publishes = %d, want 1", len(dispatcher.published))
	}
	if dispatcher.published[0].channel != "kitchen" {
		t.Errorf("publish channel = %s, want kitchen", dispatcher.published[0].channel)
	}
	n, ok := dispatcher.published[0].payload.(*models.OrderNotification)
	if !ok {
		t.Fatalf("payload type = %T, want *models.OrderNotification", dispatcher.published[0].payload)
	}
	if n.Message != "Yeni sipariş geldi!" {
		t.Errorf("notification message = %q", n.Message)
	}
	if got := n.TotalAmount.String(); got != "120.00" {
		t.Errorf("notification total = %s, want 120.00", got)
	}
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateOrderRequest
	}{
		{
			name: "no table",
			req: &models.CreateOrderRequest{
				Items: []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("10.00")}},
			},
		},
		{
			name: "no items",
			req:  &models.CreateOrderRequest{TableID: 3},
		},
		{
			name: "missing unit price",
			req: &models.CreateOrderRequest{
				TableID: 3,
				Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1}},
			},
		},
		{
			name: "zero quantity",
			req: &models.CreateOrderRequest{
				TableID: 3,
				Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 0, UnitPrice: price("10.00")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			dispatcher := &recordingDispatcher{}
			svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{
				3: {ID: 3, TableNumber: "Masa 3"},
			}}, dispatcher)

			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, models.ErrInvalidArgument) {
				t.Fatalf("Create() error = %v, want ErrInvalidArgument", err)
			}
			if repo.created != 0 {
				t.Errorf("orders persisted = %d, want 0", repo.created)
			}
			if len(dispatcher.published) != 0 {
				t.Errorf("publishes = %d, want 0", len(dispatcher.published))
			}
		})
	}
}

func TestCreate_UnknownTable(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{}}, dispatcher)

	_, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 99,
		Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("10.00")}},
	})
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
	if repo.created != 0 {
		t.Errorf("orders persisted = %d, want 0", repo.created)
	}
}

func TestCreate_PublishFailureDoesNotFailOrder(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{failOn: "kitchen"}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{
		3: {ID: 3, TableNumber: "Masa 3"},
	}}, dispatcher)

	order, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 3,
		Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("10.00")}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.ID == 0 {
		t.Error("expected order to be persisted despite publish failure")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{
		5: {ID: 5, TableNumber: "Masa 5"},
	}}, dispatcher)

	created, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 5,
		Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("25.50")}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	dispatcher.published = nil

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.OrderStatusReady)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != models.OrderStatusReady {
		t.Errorf("Status = %s, want %s", updated.Status, models.OrderStatusReady)
	}
	if updated.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set")
	}

	got := dispatcher.channels()
	want := []string{"kitchen", "table.5"}
	if len(got) != len(want) {
		t.Fatalf("publish channels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("publish channels = %v, want %v", got, want)
			break
		}
	}
}

func TestUpdateStatus_SameStatusStillNotifies(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{
		5: {ID: 5, TableNumber: "Masa 5"},
	}}, dispatcher)

	created, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 5,
		Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("25.50")}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	dispatcher.published = nil

	if _, err := svc.UpdateStatus(context.Background(), created.ID, models.OrderStatusPending); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if len(dispatcher.published) != 2 {
		t.Errorf("publishes = %d, want 2", len(dispatcher.published))
	}
}

func TestUpdateStatus_KitchenFailureStillNotifiesTable(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{
		5: {ID: 5, TableNumber: "Masa 5"},
	}}, dispatcher)

	created, err := svc.Create(context.Background(), &models.CreateOrderRequest{
		TableID: 5,
		Items:   []models.OrderItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: price("25.50")}},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	dispatcher.published = nil
	dispatcher.failOn = "kitchen"

	updated, err := svc.UpdateStatus(context.Background(), created.ID, models.OrderStatusReady)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != models.OrderStatusReady {
		t.Errorf("Status = %s, want %s", updated.Status, models.OrderStatusReady)
	}

	got := dispatcher.channels()
	if len(got) != 1 || got[0] != "table.5" {
		t.Errorf("publish channels = %v, want [table.5]", got)
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	repo := newFakeRepo()
	dispatcher := &recordingDispatcher{}
	svc := newTestService(repo, &fakeTables{tables: map[int64]*models.Table{}}, dispatcher)

	if _, err := svc.UpdateStatus(context.Background(), 1, ""); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("empty status: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 42, models.OrderStatusReady); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown order: error = %v, want ErrNotFound", err)
	}
	if len(dispatcher.published) != 0 {
		t.Errorf("publishes = %d, want 0", len(dispatcher.published))
	}
}
