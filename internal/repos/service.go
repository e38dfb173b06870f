package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type ServiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, service *types.Service) (*types.Service, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Service, error)
	GetShownOnWebsite(ctx context.Context, tx *gorm.DB) ([]*types.Service, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Service, error)
	Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	UpdatePreBufferWhereNotOverridden(ctx context.Context, tx *gorm.DB, minutes int) error
	UpdatePostBufferWhereNotOverridden(ctx context.Context, tx *gorm.DB, minutes int) error
}

type serviceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	repoLog := baseLog.With("repo", "ServiceRepo")
	return &serviceRepo{db: db, log: repoLog}
}

func (r *serviceRepo) Create(ctx context.Context, tx *gorm.DB, service *types.Service) (*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (r *serviceRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) GetShownOnWebsite(ctx context.Context, tx *gorm.DB) ([]*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Service
	if err := transaction.WithContext(ctx).
		Where("show_on_website = ?", true).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.Service, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Service
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

func (r *serviceRepo) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Service{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Service{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *serviceRepo) UpdatePreBufferWhereNotOverridden(ctx context.Context, tx *gorm.DB, minutes int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Service{}).
		Where("override_pre_buffer = ?", false).
		Update("pre_buffer_minutes", minutes).Error; err != nil {
		return err
	}
	return nil
}

func (r *serviceRepo) UpdatePostBufferWhereNotOverridden(ctx context.Context, tx *gorm.DB, minutes int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Service{}).
		Where("override_post_buffer = ?", false).
		Update("post_buffer_minutes", minutes).Error; err != nil {
		return err
	}
	return nil
}
