package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type BookingFlowQuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, question *types.BookingFlowQuestion) (*types.BookingFlowQuestion, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowQuestion, error)
	GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.BookingFlowQuestion, error)
	Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, id string) error
	MaxOrder(ctx context.Context, tx *gorm.DB) (int, error)
}

type bookingFlowQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookingFlowQuestionRepo(db *gorm.DB, baseLog *logger.Logger) BookingFlowQuestionRepo {
	repoLog := baseLog.With("repo", "BookingFlowQuestionRepo")
	return &bookingFlowQuestionRepo{db: db, log: repoLog}
}

func (r *bookingFlowQuestionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.BookingFlowQuestion) (*types.BookingFlowQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

func (r *bookingFlowQuestionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.BookingFlowQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BookingFlowQuestion
	if err := transaction.WithContext(ctx).
		Order(`"order" ASC`).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *bookingFlowQuestionRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*types.BookingFlowQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.BookingFlowQuestion
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

// Update patches the given columns. An unknown id affects zero rows and is
// not reported as an error.
func (r *bookingFlowQuestionRepo) Update(ctx context.Context, tx *gorm.DB, id string, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(fields) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.BookingFlowQuestion{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return err
	}
	return nil
}

func (r *bookingFlowQuestionRepo) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.BookingFlowQuestion{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *bookingFlowQuestionRepo) MaxOrder(ctx context.Context, tx *gorm.DB) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var max int
	if err := transaction.WithContext(ctx).
		Model(&types.BookingFlowQuestion{}).
		Select(`COALESCE(MAX("order"), 0)`).
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}
