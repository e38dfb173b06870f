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

type AddReviewInput struct {
	Name       string
	Comment    string
	IsApproved bool
	ReviewDate time.Time
}

type UpdateReviewInput struct {
	Name       *string
	Comment    *string
	IsApproved *bool
	ReviewDate *time.Time
}

type ReviewService interface {
	GetReviews(ctx context.Context) ([]*types.Review, error)
	AddReview(ctx context.Context, input AddReviewInput) (*types.Review, error)
	UpdateReview(ctx context.Context, id string, input UpdateReviewInput) error
	DeleteReview(ctx context.Context, id string) error
}

type reviewService struct {
	db         *gorm.DB
	log        *logger.Logger
	reviewRepo repos.ReviewRepo
}

func NewReviewService(db *gorm.DB, baseLog *logger.Logger, reviewRepo repos.ReviewRepo) ReviewService {
	serviceLog := baseLog.With("service", "ReviewService")
	return &reviewService{db: db, log: serviceLog, reviewRepo: reviewRepo}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]*types.Review, error) {
	return s.reviewRepo.GetAll(ctx, nil)
}

func (s *reviewService) AddReview(ctx context.Context, input AddReviewInput) (*types.Review, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("review name is required")
	}
	if input.Comment == "" {
		return nil, fmt.Errorf("review comment is required")
	}

	now := time.Now()
	reviewDate := input.ReviewDate
	if reviewDate.IsZero() {
		reviewDate = now
	}
	review := &types.Review{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Comment:    input.Comment,
		IsApproved: input.IsApproved,
		ReviewDate: reviewDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.reviewRepo.Create(ctx, nil, review); err != nil {
		s.log.Error("AddReview failed", "error", err)
		return nil, fmt.Errorf("add review: %w", err)
	}
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id string, input UpdateReviewInput) error {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Comment != nil {
		fields["comment"] = *input.Comment
	}
	if input.IsApproved != nil {
		fields["is_approved"] = *input.IsApproved
	}
	if input.ReviewDate != nil {
		fields["review_date"] = *input.ReviewDate
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	if err := s.reviewRepo.Update(ctx, nil, id, fields); err != nil {
		s.log.Error("UpdateReview failed", "error", err, "review_id", id)
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.reviewRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("DeleteReview failed", "error", err, "review_id", id)
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
