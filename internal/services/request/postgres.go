package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/database"
	"restaurant-pos/internal/models"
)

// Repository is the request ledger's persistence port.
type Repository interface {
	Create(ctx context.Context, tr *models.TableRequest) error
	GetByID(ctx context.Context, id int64) (*models.TableRequest, error)
	List(ctx context.Context) ([]models.TableRequest, error)
	ListByStatus(ctx context.Context, status string) ([]models.TableRequest, error)
	ListByTable(ctx context.Context, tableID int64) ([]models.TableRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string, resolvedAt *time.Time) error
}

// PostgresRepository implements Repository on the shared pgx pool.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a Postgres-backed request repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tr *models.TableRequest) error {
	err := r.db.QueryRow(ctx, database.InsertTableRequestSQL,
		tr.TableID, tr.RequestType, tr.Message, tr.Status, tr.CreatedAt).Scan(&tr.ID)
	if err != nil {
		return fmt.Errorf("insert table request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.TableRequest, error) {
	var tr models.TableRequest
	err := r.db.QueryRow(ctx, database.GetTableRequestByIDSQL, id).Scan(
		&tr.ID, &tr.TableID, &tr.TableNumber, &tr.RequestType, &tr.Message,
		&tr.Status, &tr.CreatedAt, &tr.ResolvedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("table request %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan table request: %w", err)
	}
	return &tr, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.TableRequest, error) {
	return r.queryRequests(ctx, database.GetAllTableRequestsSQL)
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, status string) ([]models.TableRequest, error) {
	return r.queryRequests(ctx, database.GetTableRequestsByStatusSQL, status)
}

func (r *PostgresRepository) ListByTable(ctx context.Context, tableID int64) ([]models.TableRequest, error) {
	return r.queryRequests(ctx, database.GetTableRequestsByTableSQL, tableID)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string, resolvedAt *time.Time) error {
	if err := r.db.Exec(ctx, database.UpdateTableRequestStatusSQL, status, resolvedAt, id); err != nil {
		return fmt.Errorf("update table request status: %w", err)
	}
	return nil
}

func (r *PostgresRepository) queryRequests(ctx context.Context, sql string, args ...interface{}) ([]models.TableRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query table requests: %w", err)
	}
	defer rows.Close()

	requests := []models.TableRequest{}
	for rows.Next() {
		var tr models.TableRequest
		err := rows.Scan(&tr.ID, &tr.TableID, &tr.TableNumber, &tr.RequestType, &tr.Message,
			&tr.Status, &tr.CreatedAt, &tr.ResolvedAt)
		if err != nil {
			return nil, fmt.Errorf("scan table request: %w", err)
		}
		requests = append(requests, tr)
	}
	return requests, rows.Err()
}
