package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type CreateServiceInput struct {
	Name               string
	Description        string
	Price              int
	Duration           int
	PreBufferMinutes   int
	PostBufferMinutes  int
	OverridePreBuffer  bool
	OverridePostBuffer bool
	ShowOnWebsite      bool
}

type UpdateServiceInput struct {
	Name               string
	Description        string
	Price              int
	Duration           int
	PreBufferMinutes   int
	PostBufferMinutes  int
	OverridePreBuffer  bool
	OverridePostBuffer bool
	ShowOnWebsite      bool
}

// CatalogService manages the bookable services the flow graph links to.
type CatalogService interface {
	GetServices(ctx context.Context) ([]*types.Service, error)
	GetWebsiteServices(ctx context.Context) ([]*types.Service, error)
	GetService(ctx context.Context, id string) (*types.Service, error)
	CreateService(ctx context.Context, input CreateServiceInput) (*types.Service, error)
	UpdateService(ctx context.Context, id string, input UpdateServiceInput) error
	DeleteService(ctx context.Context, id string) error
}

type catalogService struct {
	db          *gorm.DB
	log         *logger.Logger
	serviceRepo repos.ServiceRepo
}

func NewCatalogService(db *gorm.DB, baseLog *logger.Logger, serviceRepo repos.ServiceRepo) CatalogService {
	serviceLog := baseLog.With("service", "CatalogService")
	return &catalogService{db: db, log: serviceLog, serviceRepo: serviceRepo}
}

func (s *catalogService) GetServices(ctx context.Context) ([]*types.Service, error) {
	return s.serviceRepo.GetAll(ctx, nil)
}

func (s *catalogService) GetWebsiteServices(ctx context.Context) ([]*types.Service, error) {
	return s.serviceRepo.GetShownOnWebsite(ctx, nil)
}

func (s *catalogService) GetService(ctx context.Context, id string) (*types.Service, error) {
	return s.serviceRepo.GetByID(ctx, nil, id)
}

func (s *catalogService) CreateService(ctx context.Context, input CreateServiceInput) (*types.Service, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}

	now := time.Now()
	service := &types.Service{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		Duration:           input.Duration,
		PreBufferMinutes:   input.PreBufferMinutes,
		PostBufferMinutes:  input.PostBufferMinutes,
		OverridePreBuffer:  input.OverridePreBuffer,
		OverridePostBuffer: input.OverridePostBuffer,
		ShowOnWebsite:      input.ShowOnWebsite,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := s.serviceRepo.Create(ctx, nil, service); err != nil {
		s.log.Error("CreateService failed", "error", err)
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}

// UpdateService persists the full edit form. Buffer minutes only stick when
// the matching override flag is on; otherwise they reset to zero and the
// admin-wide defaults apply on the next settings save.
func (s *catalogService) UpdateService(ctx context.Context, id string, input UpdateServiceInput) error {
	preBuffer := 0
	if input.OverridePreBuffer {
		preBuffer = input.PreBufferMinutes
	}
	postBuffer := 0
	if input.OverridePostBuffer {
		postBuffer = input.PostBufferMinutes
	}

	fields := map[string]interface{}{
		"name":                 input.Name,
		"description":          input.Description,
		"price":                input.Price,
		"duration":             input.Duration,
		"pre_buffer_minutes":   preBuffer,
		"post_buffer_minutes":  postBuffer,
		"override_pre_buffer":  input.OverridePreBuffer,
		"override_post_buffer": input.OverridePostBuffer,
		"show_on_website":      input.ShowOnWebsite,
		"updated_at":           time.Now(),
	}
	if err := s.serviceRepo.Update(ctx, nil, id, fields); err != nil {
		s.log.Error("UpdateService failed", "error", err, "service_id", id)
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.serviceRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("DeleteService failed", "error", err, "service_id", id)
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
