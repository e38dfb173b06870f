package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type ReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Review, error)
	Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	repoLog := baseLog.With("repo", "ReviewRepo")
	return &reviewRepo{db: db, log: repoLog}
}

func (r *reviewRepo) Create(ctx context.Context, tx *gorm.DB, review *types.Review) (*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Review, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Review
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewRepo) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Review{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Review{}).Error; err != nil {
		return err
	}
	return nil
}
