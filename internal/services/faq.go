package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/types"
)

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type FAQService interface {
	GetFAQs(ctx context.Context) ([]*types.FAQ, error)
	AddFAQ(ctx context.Context, question, answer string) (*types.FAQ, error)
	UpdateFAQ(ctx context.Context, id, question, answer string) error
	DeleteFAQs(ctx context.Context, ids []string) error
	ReorderFAQ(ctx context.Context, id string, direction MoveDirection) error
}

type faqService struct {
	db      *gorm.DB
	log     *logger.Logger
	faqRepo repos.FAQRepo
}

func NewFAQService(db *gorm.DB, baseLog *logger.Logger, faqRepo repos.FAQRepo) FAQService {
	serviceLog := baseLog.With("service", "FAQService")
	return &faqService{db: db, log: serviceLog, faqRepo: faqRepo}
}

func (s *faqService) GetFAQs(ctx context.Context) ([]*types.FAQ, error) {
	return s.faqRepo.GetAll(ctx, nil)
}

func (s *faqService) AddFAQ(ctx context.Context, question, answer string) (*types.FAQ, error) {
	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	max, err := s.faqRepo.MaxOrder(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve faq order: %w", err)
	}

	now := time.Now()
	faq := &types.FAQ{
		ID:        uuid.New().String(),
		Question:  question,
		Answer:    answer,
		Order:     max + 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.faqRepo.Create(ctx, nil, faq); err != nil {
		s.log.Error("AddFAQ failed", "error", err)
		return nil, fmt.Errorf("add faq: %w", err)
	}
	return faq, nil
}

func (s *faqService) UpdateFAQ(ctx context.Context, id, question, answer string) error {
	fields := map[string]interface{}{
		"question":   question,
		"answer":     answer,
		"updated_at": time.Now(),
	}
	if err := s.faqRepo.Update(ctx, nil, id, fields); err != nil {
		s.log.Error("UpdateFAQ failed", "error", err, "faq_id", id)
		return fmt.Errorf("update faq: %w", err)
	}
	return nil
}

func (s *faqService) DeleteFAQs(ctx context.Context, ids []string) error {
	if err := s.faqRepo.DeleteByIDs(ctx, nil, ids); err != nil {
		s.log.Error("DeleteFAQs failed", "error", err)
		return fmt.Errorf("delete faqs: %w", err)
	}
	return nil
}

// ReorderFAQ swaps the order value of the given FAQ with its adjacent
// neighbor in the sorted list. Both rows commit in one transaction or neither
// does. Moving the first item up or the last item down is a no-op.
func (s *faqService) ReorderFAQ(ctx context.Context, id string, direction MoveDirection) error {
	faqs, err := s.faqRepo.GetAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("load faqs: %w", err)
	}
	sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].Order < faqs[j].Order })

	idx := -1
	for i, faq := range faqs {
		if faq.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("faq not found")
	}

	var neighbor int
	switch direction {
	case MoveUp:
		neighbor = idx - 1
	case MoveDown:
		neighbor = idx + 1
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
	if neighbor < 0 || neighbor >= len(faqs) {
		return nil
	}

	a, b := faqs[idx], faqs[neighbor]
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.faqRepo.UpdateOrder(ctx, tx, a.ID, b.Order); err != nil {
			return err
		}
		if err := s.faqRepo.UpdateOrder(ctx, tx, b.ID, a.Order); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.log.Error("ReorderFAQ failed", "error", err, "faq_id", id)
		return fmt.Errorf("reorder faq: %w", err)
	}
	return nil
}
