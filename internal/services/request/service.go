// Package request implements the table request ledger: ad-hoc service
// calls (call the waiter, complaints, help) with a simple lifecycle and
// kitchen notification on creation.
package request

import (
	"context"
	"fmt"
	"time"

	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/notify"
)

// TableDirectory resolves table references at request creation time.
type TableDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Table, error)
}

// Service is the table request ledger.
type Service struct {
	repo       Repository
	tables     TableDirectory
	dispatcher notify.Dispatcher
	channels   notify.Channels
	logger     *logger.Logger
	now        func() time.Time
}

// NewService creates the request ledger service.
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

// Create validates and persists a new table request, then notifies the
// kitchen with a templated human-readable line. The table reference is
// resolved against the directory so dangling references are rejected, not
// stored.
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequestRequest) (*models.TableRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	table, err := s.tables.GetByID(ctx, req.TableID)
	if err != nil {
		return nil, fmt.Errorf("table %d: %w", req.TableID, err)
	}

	tr := &models.TableRequest{
		TableID:     table.ID,
		TableNumber: table.TableNumber,
		RequestType: req.RequestType,
		Message:     req.Message,
		Status:      models.RequestStatusPending,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, tr); err != nil {
		return nil, fmt.Errorf("persist table request: %w", err)
	}

	notification := models.NewRequestNotification(tr, table.TableNumber)
	if err := s.dispatcher.Publish(ctx, s.channels.Kitchen(), notification); err != nil {
		s.logger.Error("notification_publish_failed", "",
			"Failed to publish table request notification",
			err, map[string]interface{}{"request_id": tr.ID})
	}

	return tr, nil
}

// UpdateStatus sets the request status. Reaching RESOLVED stamps the
// resolution time; any other non-empty status leaves it unset.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.TableRequest, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status cannot be empty", models.ErrInvalidArgument)
	}

	tr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tr.Status = status
	if status == models.RequestStatusResolved {
		now := s.now().UTC()
		tr.ResolvedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, id, status, tr.ResolvedAt); err != nil {
		return nil, fmt.Errorf("persist status: %w", err)
	}

	return tr, nil
}

// List returns all requests.
func (s *Service) List(ctx context.Context) ([]models.TableRequest, error) {
	return s.repo.List(ctx)
}

// ListPending returns requests still waiting for staff.
func (s *Service) ListPending(ctx context.Context) ([]models.TableRequest, error) {
	return s.repo.ListByStatus(ctx, models.RequestStatusPending)
}

// ListByTable returns the requests of one table.
func (s *Service) ListByTable(ctx context.Context, tableID int64) ([]models.TableRequest, error) {
	return s.repo.ListByTable(ctx, tableID)
}

// GetByID returns one request.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableRequest, error) {
	return s.repo.GetByID(ctx, id)
}
