package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/database"
	"restaurant-pos/internal/models"
)

// Repository is the table directory's persistence port.
type Repository interface {
	Insert(ctx context.Context, t *models.Table) error
	Update(ctx context.Context, t *models.Table) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Table, error)
	GetByNumber(ctx context.Context, number string) (*models.Table, error)
	List(ctx context.Context) ([]models.Table, error)
}

// PostgresRepository implements Repository on the shared pgx pool.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a Postgres-backed table repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, t *models.Table) error {
	err := r.db.QueryRow(ctx, database.InsertTableSQL,
		t.TableNumber, t.QRCode, t.Capacity, t.IsOccupied, t.Location).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Table) error {
	err := r.db.Exec(ctx, database.UpdateTableSQL,
		t.TableNumber, t.QRCode, t.Capacity, t.IsOccupied, t.Location, t.ID)
	if err != nil {
		return fmt.Errorf("update table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Exec(ctx, database.DeleteTableSQL, id); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Table, error) {
	return r.scanOne(r.db.QueryRow(ctx, database.GetTableByIDSQL, id))
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number string) (*models.Table, error) {
	return r.scanOne(r.db.QueryRow(ctx, database.GetTableByNumberSQL, number))
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*models.Table, error) {
	var t models.Table
	err := row.Scan(&t.ID, &t.TableNumber, &t.QRCode, &t.Capacity, &t.IsOccupied, &t.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan table: %w", err)
	}
	return &t, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Table, error) {
	rows, err := r.db.Query(ctx, database.GetAllTablesSQL)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	tables := []models.Table{}
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.QRCode, &t.Capacity, &t.IsOccupied, &t.Location); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}
