package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type BookingFlowOptionServiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, links []*types.BookingFlowOptionService) ([]*types.BookingFlowOptionService, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowOptionService, error)
	GetByOptionID(ctx context.Context, tx *gorm.DB, optionID string) ([]*types.BookingFlowOptionService, error)
	DeleteByOptionID(ctx context.Context, tx *gorm.DB, optionID string) error
	DeleteByOptionAndService(ctx context.Context, tx *gorm.DB, optionID, serviceID string) error
}

type bookingFlowOptionServiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookingFlowOptionServiceRepo(db *gorm.DB, baseLog *logger.Logger) BookingFlowOptionServiceRepo {
	repoLog := baseLog.With("repo", "BookingFlowOptionServiceRepo")
	return &bookingFlowOptionServiceRepo{db: db, log: repoLog}
}

func (r *bookingFlowOptionServiceRepo) Create(ctx context.Context, tx *gorm.DB, links []*types.BookingFlowOptionService) ([]*types.BookingFlowOptionService, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(links) == 0 {
		return []*types.BookingFlowOptionService{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *bookingFlowOptionServiceRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowOptionService, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BookingFlowOptionService
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bookingFlowOptionServiceRepo) GetByOptionID(ctx context.Context, tx *gorm.DB, optionID string) ([]*types.BookingFlowOptionService, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BookingFlowOptionService
	if err := transaction.WithContext(ctx).
		Where("option_id = ?", optionID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bookingFlowOptionServiceRepo) DeleteByOptionID(ctx context.Context, tx *gorm.DB, optionID string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("option_id = ?", optionID).
		Delete(&types.BookingFlowOptionService{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *bookingFlowOptionServiceRepo) DeleteByOptionAndService(ctx context.Context, tx *gorm.DB, optionID, serviceID string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("option_id = ? AND service_id = ?", optionID, serviceID).
		Delete(&types.BookingFlowOptionService{}).Error; err != nil {
		return err
	}
	return nil
}
