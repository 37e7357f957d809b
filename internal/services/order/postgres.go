package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/database"
	"restaurant-pos/internal/models"
)

// Repository is the order ledger's persistence port.
type Repository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByTable(ctx context.Context, tableID int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error
}

// PostgresRepository implements Repository on the shared pgx pool.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a Postgres-backed order repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the order and its items in one transaction, filling in
// the generated identities.
func (r *PostgresRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		o.TableID, o.OrderNumber, o.Status, o.TotalAmount,
		o.PaymentMethod, o.PaymentStatus, o.CustomerNotes, o.CreatedAt).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRow(ctx, database.InsertOrderItemSQL,
			o.ID, item.ProductID, item.Quantity, item.UnitPrice, item.SpecialInstructions).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(ctx, database.GetOrderByIDSQL, id).Scan(
		&o.ID, &o.TableID, &o.TableNumber, &o.OrderNumber, &o.Status, &o.TotalAmount,
		&o.PaymentMethod, &o.PaymentStatus, &o.CustomerNotes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}

	items, err := r.loadItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Order, error) {
	return r.queryOrders(ctx, database.GetAllOrdersSQL)
}

func (r *PostgresRepository) ListByTable(ctx context.Context, tableID int64) ([]models.Order, error) {
	return r.queryOrders(ctx, database.GetOrdersByTableSQL, tableID)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	if err := r.db.Exec(ctx, database.UpdateOrderStatusSQL, status, updatedAt, id); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func (r *PostgresRepository) queryOrders(ctx context.Context, sql string, args ...interface{}) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.TableID, &o.TableNumber, &o.OrderNumber, &o.Status, &o.TotalAmount,
			&o.PaymentMethod, &o.PaymentStatus, &o.CustomerNotes, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db.Query(ctx, database.GetOrderItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.SpecialInstructions)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
