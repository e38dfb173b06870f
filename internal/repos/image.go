package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type ImageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, image *types.Image) (*types.Image, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Image, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Image, error)
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type imageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewImageRepo(db *gorm.DB, baseLog *logger.Logger) ImageRepo {
	repoLog := baseLog.With("repo", "ImageRepo")
	return &imageRepo{db: db, log: repoLog}
}

func (r *imageRepo) Create(ctx context.Context, tx *gorm.DB, image *types.Image) (*types.Image, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *imageRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Image, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Image
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *imageRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Image, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Image
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *imageRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Image{}).Error; err != nil {
		return err
	}
	return nil
}
