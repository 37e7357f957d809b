package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-pos/internal/database"
	"restaurant-pos/internal/models"
)

// Repository is the menu catalog's persistence port.
type Repository interface {
	InsertCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)

	InsertProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	ListAvailableProducts(ctx context.Context) ([]models.Product, error)
}

// PostgresRepository implements Repository on the shared pgx pool.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a Postgres-backed menu repository.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertCategory(ctx context.Context, c *models.Category) error {
	err := r.db.QueryRow(ctx, database.InsertCategorySQL, c.Name, c.Description, c.DisplayOrder).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *models.Category) error {
	if err := r.db.Exec(ctx, database.UpdateCategorySQL, c.Name, c.Description, c.DisplayOrder, c.ID); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int64) error {
	if err := r.db.Exec(ctx, database.DeleteCategorySQL, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRow(ctx, database.GetCategoryByIDSQL, id).Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, database.GetAllCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) InsertProduct(ctx context.Context, p *models.Product) error {
	err := r.db.QueryRow(ctx, database.InsertProductSQL,
		p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.IsAvailable,
		p.IsVegan, p.IsVegetarian, p.PreparationTime, p.Calories, p.Allergens).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *models.Product) error {
	err := r.db.Exec(ctx, database.UpdateProductSQL,
		p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL, p.IsAvailable,
		p.IsVegan, p.IsVegetarian, p.PreparationTime, p.Calories, p.Allergens, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int64) error {
	if err := r.db.Exec(ctx, database.DeleteProductSQL, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx, database.GetProductByIDSQL, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.IsAvailable,
		&p.IsVegan, &p.IsVegetarian, &p.PreparationTime, &p.Calories, &p.Allergens)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, database.GetAllProductsSQL)
}

func (r *PostgresRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return r.queryProducts(ctx, database.GetProductsByCategorySQL, categoryID)
}

func (r *PostgresRepository) ListAvailableProducts(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, database.GetAvailableProductsSQL)
}

func (r *PostgresRepository) queryProducts(ctx context.Context, sql string, args ...interface{}) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.IsAvailable,
			&p.IsVegan, &p.IsVegetarian, &p.PreparationTime, &p.Calories, &p.Allergens)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
