package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type FAQRepo interface {
	Create(ctx context.Context, tx *gorm.DB, faq *types.FAQ) (*types.FAQ, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FAQ, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.FAQ, error)
	Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []string) error
	UpdateOrder(ctx context.Context, tx *gorm.DB, id string, order int) error
	MaxOrder(ctx context.Context, tx *gorm.DB) (int, error)
}

type faqRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFAQRepo(db *gorm.DB, baseLog *logger.Logger) FAQRepo {
	repoLog := baseLog.With("repo", "FAQRepo")
	return &faqRepo{db: db, log: repoLog}
}

func (r *faqRepo) Create(ctx context.Context, tx *gorm.DB, faq *types.FAQ) (*types.FAQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(faq).Error; err != nil {
		return nil, err
	}
	return faq, nil
}

func (r *faqRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.FAQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.FAQ
	if err := transaction.WithContext(ctx).
		Order(`"order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *faqRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.FAQ, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.FAQ
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *faqRepo) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.FAQ{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

func (r *faqRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.FAQ{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *faqRepo) UpdateOrder(ctx context.Context, tx *gorm.DB, id string, order int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.FAQ{}).
		Where("id = ?", id).
		Update("order", order).Error; err != nil {
		return err
	}
	return nil
}

func (r *faqRepo) MaxOrder(ctx context.Context, tx *gorm.DB) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var max int
	if err := transaction.WithContext(ctx).
		Model(&types.FAQ{}).
		Select(`COALESCE(MAX("order"), 0)`).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}
