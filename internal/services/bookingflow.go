package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ReasonJ01/admin-app/internal/logger"
	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/types"
)

// EndOfFlowSentinel is what the editor sends for "the flow ends here". It is
// translated to a NULL next question before anything reaches the database.
const EndOfFlowSentinel = "__END__"

type QuestionPatch struct {
	Text  *string
	Order *int
}

type CreateOptionInput struct {
	ID             string
	QuestionID     string
	OptionTitle    string
	Description    string
	Tag            string
	NextQuestionID *string
	Order          *int
}

// OptionPatch carries a partial option update. A nil field is left untouched.
// Services, when non-nil, replaces the option's full service link set.
type OptionPatch struct {
	OptionTitle    *string
	Description    *string
	Tag            *string
	NextQuestionID *string
	Order          *int
	Services       []string
}

type BookingFlowService interface {
	EnsureStartQuestion(ctx context.Context, tx *gorm.DB) error
	GetQuestions(ctx context.Context) ([]*types.BookingFlowQuestion, error)
	GetQuestionByID(ctx context.Context, id string) (*types.BookingFlowQuestion, error)
	GetQuestionsWithOptions(ctx context.Context) ([]types.QuestionWithOptions, error)
	CreateQuestion(ctx context.Context, id, text string, order *int) (*types.BookingFlowQuestion, error)
	UpdateQuestion(ctx context.Context, id string, patch QuestionPatch) error
	DeleteQuestion(ctx context.Context, id string) error
	CreateOption(ctx context.Context, input CreateOptionInput) (*types.BookingFlowOption, error)
	GetOptionByID(ctx context.Context, id string) (*types.BookingFlowOption, error)
	GetOptionsByQuestion(ctx context.Context, questionID string) ([]*types.BookingFlowOption, error)
	UpdateOption(ctx context.Context, id string, patch OptionPatch) error
	DeleteOption(ctx context.Context, id string) error
	AddServiceToOption(ctx context.Context, optionID, serviceID string) error
	RemoveServiceFromOption(ctx context.Context, optionID, serviceID string) error
	GetServicesForOption(ctx context.Context, optionID string) ([]*types.BookingFlowOptionService, error)
}

type bookingFlowService struct {
	db           *gorm.DB
	log          *logger.Logger
	questionRepo repos.BookingFlowQuestionRepo
	optionRepo   repos.BookingFlowOptionRepo
	linkRepo     repos.BookingFlowOptionServiceRepo
	serviceRepo  repos.ServiceRepo
}

func NewBookingFlowService(
	db *gorm.DB,
	baseLog *logger.Logger,
	questionRepo repos.BookingFlowQuestionRepo,
	optionRepo repos.BookingFlowOptionRepo,
	linkRepo repos.BookingFlowOptionServiceRepo,
	serviceRepo repos.ServiceRepo,
) BookingFlowService {
	serviceLog := baseLog.With("service", "BookingFlowService")
	return &bookingFlowService{
		db:           db,
		log:          serviceLog,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
		linkRepo:     linkRepo,
		serviceRepo:  serviceRepo,
	}
}

// EnsureStartQuestion makes the reserved entry row exist. Every read of the
// flow goes through this before assembling, so an empty database still
// presents a graph with exactly the start node.
func (s *bookingFlowService) EnsureStartQuestion(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	existing, err := s.questionRepo.GetByID(ctx, transaction, types.StartQuestionID)
	if err != nil {
		return fmt.Errorf("check start question: %w", err)
	}
	if existing != nil {
		return nil
	}

	now := time.Now()
	start := &types.BookingFlowQuestion{
		ID:        types.StartQuestionID,
		Text:      "Start",
		Order:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.questionRepo.Create(ctx, transaction, start); err != nil {
		return fmt.Errorf("create start question: %w", err)
	}
	s.log.Info("Synthesized reserved start question")
	return nil
}

func (s *bookingFlowService) GetQuestions(ctx context.Context) ([]*types.BookingFlowQuestion, error) {
	if err := s.EnsureStartQuestion(ctx, nil); err != nil {
		return nil, err
	}
	return s.questionRepo.GetAll(ctx, nil)
}

func (s *bookingFlowService) GetQuestionByID(ctx context.Context, id string) (*types.BookingFlowQuestion, error) {
	return s.questionRepo.GetByID(ctx, nil, id)
}

// GetQuestionsWithOptions returns the denormalized flow graph: every question
// with its ordered options, every option with its resolved services. The four
// flat reads fan out concurrently; any failure aborts the whole read.
func (s *bookingFlowService) GetQuestionsWithOptions(ctx context.Context) ([]types.QuestionWithOptions, error) {
	if err := s.EnsureStartQuestion(ctx, nil); err != nil {
		return nil, err
	}

	var (
		questions []*types.BookingFlowQuestion
		options   []*types.BookingFlowOption
		links     []*types.BookingFlowOptionService
		svcs      []*types.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questionRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		options, err = s.optionRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.linkRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		svcs, err = s.serviceRepo.GetAll(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load flow graph: %w", err)
	}

	return assembleFlow(questions, options, links, svcs), nil
}

// assembleFlow is the pure in-memory join of the four flat collections. Links
// whose service no longer exists are dropped silently; a question with no
// options carries an empty (non-nil) option list.
func assembleFlow(
	questions []*types.BookingFlowQuestion,
	options []*types.BookingFlowOption,
	links []*types.BookingFlowOptionService,
	svcs []*types.Service,
) []types.QuestionWithOptions {
	serviceByID := make(map[string]*types.Service, len(svcs))
	for _, svc := range svcs {
		serviceByID[svc.ID] = svc
	}

	servicesByOption := make(map[string][]types.Service)
	for _, link := range links {
		svc, ok := serviceByID[link.ServiceID]
		if !ok {
			continue
		}
		servicesByOption[link.OptionID] = append(servicesByOption[link.OptionID], *svc)
	}

	optionsByQuestion := make(map[string][]types.OptionWithServices)
	for _, option := range options {
		decorated := types.OptionWithServices{
			BookingFlowOption: *option,
			Services:          servicesByOption[option.ID],
		}
		if decorated.Services == nil {
			decorated.Services = []types.Service{}
		}
		optionsByQuestion[option.QuestionID] = append(optionsByQuestion[option.QuestionID], decorated)
	}

	result := make([]types.QuestionWithOptions, 0, len(questions))
	for _, question := range questions {
		node := types.QuestionWithOptions{
			BookingFlowQuestion: *question,
			Options:             optionsByQuestion[question.ID],
		}
		if node.Options == nil {
			node.Options = []types.OptionWithServices{}
		}
		result = append(result, node)
	}
	return result
}

func (s *bookingFlowService) CreateQuestion(ctx context.Context, id, text string, order *int) (*types.BookingFlowQuestion, error) {
	if id == "" {
		return nil, fmt.Errorf("question id is required")
	}
	if text == "" {
		return nil, fmt.Errorf("question text is required")
	}

	ord := 0
	if order != nil {
		ord = *order
	} else {
		max, err := s.questionRepo.MaxOrder(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("resolve question order: %w", err)
		}
		ord = max + 1
	}

	now := time.Now()
	question := &types.BookingFlowQuestion{
		ID:        id,
		Text:      text,
		Order:     ord,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.questionRepo.Create(ctx, nil, question); err != nil {
		s.log.Error("CreateQuestion failed", "error", err, "question_id", id)
		return nil, fmt.Errorf("create question: %w", err)
	}
	return question, nil
}

func (s *bookingFlowService) UpdateQuestion(ctx context.Context, id string, patch QuestionPatch) error {
	fields := map[string]interface{}{}
	if patch.Text != nil {
		fields["text"] = *patch.Text
	}
	if patch.Order != nil {
		fields["order"] = *patch.Order
	}
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()

	if err := s.questionRepo.Update(ctx, nil, id, fields); err != nil {
		s.log.Error("UpdateQuestion failed", "error", err, "question_id", id)
		return fmt.Errorf("update question: %w", err)
	}
	return nil
}

// DeleteQuestion removes the question row only. Its child options stay, and
// options elsewhere that point at it keep their now-dangling reference.
func (s *bookingFlowService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.questionRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("DeleteQuestion failed", "error", err, "question_id", id)
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}

func (s *bookingFlowService) CreateOption(ctx context.Context, input CreateOptionInput) (*types.BookingFlowOption, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("option id is required")
	}
	if input.QuestionID == "" {
		return nil, fmt.Errorf("question id is required")
	}
	if input.OptionTitle == "" {
		return nil, fmt.Errorf("option title is required")
	}

	next := normalizeNextQuestionID(input.NextQuestionID)

	ord := 0
	if input.Order != nil {
		ord = *input.Order
	} else {
		max, err := s.optionRepo.MaxOrderForQuestion(ctx, nil, input.QuestionID)
		if err != nil {
			return nil, fmt.Errorf("resolve option order: %w", err)
		}
		ord = max + 1
	}

	now := time.Now()
	option := &types.BookingFlowOption{
		ID:             input.ID,
		QuestionID:     input.QuestionID,
		OptionTitle:    input.OptionTitle,
		Description:    input.Description,
		Tag:            input.Tag,
		NextQuestionID: next,
		Order:          ord,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := s.optionRepo.Create(ctx, nil, option); err != nil {
		s.log.Error("CreateOption failed", "error", err, "option_id", input.ID)
		return nil, fmt.Errorf("create option: %w", err)
	}
	return option, nil
}

func (s *bookingFlowService) GetOptionByID(ctx context.Context, id string) (*types.BookingFlowOption, error) {
	return s.optionRepo.GetByID(ctx, nil, id)
}

func (s *bookingFlowService) GetOptionsByQuestion(ctx context.Context, questionID string) ([]*types.BookingFlowOption, error) {
	return s.optionRepo.GetByQuestionID(ctx, nil, questionID)
}

// UpdateOption patches the option and, when a service list is supplied,
// replaces the option's full link set. The patch and the link replacement run
// in one transaction so a failure partway leaves nothing half-applied.
func (s *bookingFlowService) UpdateOption(ctx context.Context, id string, patch OptionPatch) error {
	fields := map[string]interface{}{}
	if patch.OptionTitle != nil {
		fields["option_title"] = *patch.OptionTitle
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Tag != nil {
		fields["tag"] = *patch.Tag
	}
	if patch.NextQuestionID != nil {
		fields["next_question_id"] = normalizeNextQuestionID(patch.NextQuestionID)
	}
	if patch.Order != nil {
		fields["order"] = *patch.Order
	}
	if len(fields) == 0 && patch.Services == nil {
		return nil
	}
	fields["updated_at"] = time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.optionRepo.Update(ctx, tx, id, fields); err != nil {
			return fmt.Errorf("update option: %w", err)
		}
		if patch.Services == nil {
			return nil
		}
		if err := s.linkRepo.DeleteByOptionID(ctx, tx, id); err != nil {
			return fmt.Errorf("clear option services: %w", err)
		}
		links := make([]*types.BookingFlowOptionService, 0, len(patch.Services))
		seen := make(map[string]bool, len(patch.Services))
		for _, serviceID := range patch.Services {
			if serviceID == "" || seen[serviceID] {
				continue
			}
			seen[serviceID] = true
			links = append(links, &types.BookingFlowOptionService{OptionID: id, ServiceID: serviceID})
		}
		if _, err := s.linkRepo.Create(ctx, tx, links); err != nil {
			return fmt.Errorf("set option services: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("UpdateOption failed", "error", err, "option_id", id)
		return err
	}
	return nil
}

// DeleteOption removes the option row only; orphaned service links are
// tolerated by the assembly.
func (s *bookingFlowService) DeleteOption(ctx context.Context, id string) error {
	if err := s.optionRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("DeleteOption failed", "error", err, "option_id", id)
		return fmt.Errorf("delete option: %w", err)
	}
	return nil
}

func (s *bookingFlowService) AddServiceToOption(ctx context.Context, optionID, serviceID string) error {
	links := []*types.BookingFlowOptionService{{OptionID: optionID, ServiceID: serviceID}}
	if _, err := s.linkRepo.Create(ctx, nil, links); err != nil {
		s.log.Error("AddServiceToOption failed", "error", err, "option_id", optionID, "service_id", serviceID)
		return fmt.Errorf("add service to option: %w", err)
	}
	return nil
}

func (s *bookingFlowService) RemoveServiceFromOption(ctx context.Context, optionID, serviceID string) error {
	if err := s.linkRepo.DeleteByOptionAndService(ctx, nil, optionID, serviceID); err != nil {
		s.log.Error("RemoveServiceFromOption failed", "error", err, "option_id", optionID, "service_id", serviceID)
		return fmt.Errorf("remove service from option: %w", err)
	}
	return nil
}

func (s *bookingFlowService) GetServicesForOption(ctx context.Context, optionID string) ([]*types.BookingFlowOptionService, error) {
	return s.linkRepo.GetByOptionID(ctx, nil, optionID)
}

func normalizeNextQuestionID(next *string) *string {
	if next == nil {
		return nil
	}
	if *next == "" || *next == EndOfFlowSentinel {
		return nil
	}
	value := *next
	return &value
}
