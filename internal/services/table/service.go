package table

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Service is the table directory: it owns table identity and resolves
// table references for the ledgers.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates the table directory service.
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Create persists a new table. Tables created without a QR payload get an
// opaque token; rendering the payload into an image is a front-of-house
// concern.
func (s *Service) Create(ctx context.Context, t *models.Table) (*models.Table, error) {
	if t.TableNumber == "" {
		return nil, fmt.Errorf("%w: table number cannot be empty", models.ErrInvalidArgument)
	}
	if t.QRCode == "" {
		t.QRCode = "table:" + uuid.NewString()
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update overwrites an existing table record.
func (s *Service) Update(ctx context.Context, id int64, t *models.Table) (*models.Table, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.ID = existing.ID
	if t.QRCode == "" {
		t.QRCode = existing.QRCode
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a table from the directory.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// GetByID resolves a table by identity.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.Table, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByNumber resolves a table by its human-readable label. A bare number
// is normalized to the printed label format, so "3" finds "Masa 3".
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.Table, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: table number cannot be empty", models.ErrInvalidArgument)
	}
	normalized := strings.TrimSpace(number)
	if digitsOnly.MatchString(normalized) {
		normalized = "Masa " + normalized
	}
	return s.repo.GetByNumber(ctx, normalized)
}

// List returns all tables.
func (s *Service) List(ctx context.Context) ([]models.Table, error) {
	return s.repo.List(ctx)
}
