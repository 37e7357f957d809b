// Package menu implements the category/product catalog. It is persistence
// glue: the order ledger only references products by identity.
package menu

import (
	"context"
	"fmt"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

// Service is the menu catalog.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates the menu catalog service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

func (s *Service) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", models.ErrInvalidArgument)
	}
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, c *models.Category) (*models.Category, error) {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.repo.GetCategoryByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", models.ErrInvalidArgument)
	}
	if err := s.repo.InsertProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, p *models.Product) (*models.Product, error) {
	if _, err := s.repo.GetProductByID(ctx, id); err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.repo.GetProductByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) ListProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return s.repo.ListProductsByCategory(ctx, categoryID)
}

func (s *Service) ListAvailableProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAvailableProducts(ctx)
}
