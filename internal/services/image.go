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

// ImageService manages image rows only; the blobs themselves live in external
// storage and rows carry their public URLs.
type ImageService interface {
	AddImage(ctx context.Context, url string) (*types.Image, error)
	GetImages(ctx context.Context) ([]*types.Image, error)
	GetImageURL(ctx context.Context, id string) (string, error)
	DeleteImage(ctx context.Context, id string) error
}

type imageService struct {
	db        *gorm.DB
	log       *logger.Logger
	imageRepo repos.ImageRepo
}

func NewImageService(db *gorm.DB, baseLog *logger.Logger, imageRepo repos.ImageRepo) ImageService {
	serviceLog := baseLog.With("service", "ImageService")
	return &imageService{db: db, log: serviceLog, imageRepo: imageRepo}
}

func (s *imageService) AddImage(ctx context.Context, url string) (*types.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("image url is required")
	}

	now := time.Now()
	image := &types.Image{
		ID:        uuid.New().String(),
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.imageRepo.Create(ctx, nil, image); err != nil {
		s.log.Error("AddImage failed", "error", err)
		return nil, fmt.Errorf("add image: %w", err)
	}
	return image, nil
}

func (s *imageService) GetImages(ctx context.Context) ([]*types.Image, error) {
	return s.imageRepo.GetAll(ctx, nil)
}

func (s *imageService) GetImageURL(ctx context.Context, id string) (string, error) {
	image, err := s.imageRepo.GetByID(ctx, nil, id)
	if err != nil {
		return "", fmt.Errorf("get image: %w", err)
	}
	if image == nil {
		return "", fmt.Errorf("image not found")
	}
	return image.URL, nil
}

func (s *imageService) DeleteImage(ctx context.Context, id string) error {
	if err := s.imageRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("DeleteImage failed", "error", err, "image_id", id)
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
