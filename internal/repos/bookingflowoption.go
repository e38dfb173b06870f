package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type BookingFlowOptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, option *types.BookingFlowOption) (*types.BookingFlowOption, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowOption, error)
	GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID string) ([]*types.BookingFlowOption, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.BookingFlowOption, error)
	Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	MaxOrderForQuestion(ctx context.Context, tx *gorm.DB, questionID string) (int, error)
}

type bookingFlowOptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookingFlowOptionRepo(db *gorm.DB, baseLog *logger.Logger) BookingFlowOptionRepo {
	repoLog := baseLog.With("repo", "BookingFlowOptionRepo")
	return &bookingFlowOptionRepo{db: db, log: repoLog}
}

func (r *bookingFlowOptionRepo) Create(ctx context.Context, tx *gorm.DB, option *types.BookingFlowOption) (*types.BookingFlowOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(option).Error; err != nil {
		return nil, err
	}
	return option, nil
}

func (r *bookingFlowOptionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BookingFlowOption
	if err := transaction.WithContext(ctx).
		Order(`"order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bookingFlowOptionRepo) GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID string) ([]*types.BookingFlowOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BookingFlowOption
	if err := transaction.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order(`"order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bookingFlowOptionRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.BookingFlowOption, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.BookingFlowOption
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

func (r *bookingFlowOptionRepo) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.BookingFlowOption{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes the option row only. Its service links are left behind; the
// flow assembly skips links whose option no longer resolves.
func (r *bookingFlowOptionRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.BookingFlowOption{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *bookingFlowOptionRepo) MaxOrderForQuestion(ctx context.Context, tx *gorm.DB, questionID string) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var max int
	if err := transaction.WithContext(ctx).
		Model(&types.BookingFlowOption{}).
		Where("question_id = ?", questionID).
		Select(`COALESCE(MAX("order"), 0)`).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}
