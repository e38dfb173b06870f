package services

import (
	"context"
	"testing"
	"time"

	"github.com/ReasonJ01/admin-app/internal/repos"
	"github.com/ReasonJ01/admin-app/internal/types"
)

func newFlowService(t *testing.T) BookingFlowService {
	t.Helper()

	gdb := newTestDB(t)
	log := newTestLogger(t)
	return NewBookingFlowService(
		gdb,
		log,
		repos.NewBookingFlowQuestionRepo(gdb, log),
		repos.NewBookingFlowOptionRepo(gdb, log),
		repos.NewBookingFlowOptionServiceRepo(gdb, log),
		repos.NewServiceRepo(gdb, log),
	)
}

func seedService(t *testing.T, s BookingFlowService, id, name string) {
	t.Helper()

	fs, ok := s.(*bookingFlowService)
	if !ok {
		t.Fatalf("unexpected service implementation")
	}
	now := time.Now()
	svc := &types.Service{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := fs.serviceRepo.Create(context.Background(), nil, svc); err != nil {
		t.Fatalf("seed service %s: %v", id, err)
	}
}

func TestGetQuestionsWithOptionsSynthesizesStart(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	flow, err := s.GetQuestionsWithOptions(ctx)
	if err != nil {
		t.Fatalf("GetQuestionsWithOptions: %v", err)
	}
	if len(flow) != 1 {
		t.Fatalf("expected exactly the synthesized start question, got %d questions", len(flow))
	}
	start := flow[0]
	if start.ID != types.StartQuestionID {
		t.Fatalf("expected start question id %q, got %q", types.StartQuestionID, start.ID)
	}
	if start.Text != "Start" {
		t.Fatalf("expected start text %q, got %q", "Start", start.Text)
	}
	if start.Order != 0 {
		t.Fatalf("expected start order 0, got %d", start.Order)
	}
	if start.Options == nil || len(start.Options) != 0 {
		t.Fatalf("expected empty option list on start, got %v", start.Options)
	}

	// A second read must not create a duplicate.
	flow, err = s.GetQuestionsWithOptions(ctx)
	if err != nil {
		t.Fatalf("GetQuestionsWithOptions (second read): %v", err)
	}
	if len(flow) != 1 {
		t.Fatalf("start question duplicated: got %d questions", len(flow))
	}
}

func TestCreateQuestionAssignsNextOrder(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	q1, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil)
	if err != nil {
		t.Fatalf("CreateQuestion q1: %v", err)
	}
	if q1.Order != 1 {
		t.Fatalf("expected first question order 1 on empty table, got %d", q1.Order)
	}

	explicit := 5
	q2, err := s.CreateQuestion(ctx, "q2", "Pick a time", &explicit)
	if err != nil {
		t.Fatalf("CreateQuestion q2: %v", err)
	}
	if q2.Order != 5 {
		t.Fatalf("expected explicit order 5, got %d", q2.Order)
	}

	q3, err := s.CreateQuestion(ctx, "q3", "Anything else?", nil)
	if err != nil {
		t.Fatalf("CreateQuestion q3: %v", err)
	}
	if q3.Order != 6 {
		t.Fatalf("expected max+1 order 6, got %d", q3.Order)
	}
}

func TestUpdateQuestionUnknownIDIsNoop(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	text := "does not exist"
	if err := s.UpdateQuestion(ctx, "missing", QuestionPatch{Text: &text}); err != nil {
		t.Fatalf("expected no error for unknown question id, got %v", err)
	}
}

func TestCreateOptionTranslatesEndSentinel(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	if _, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	sentinel := EndOfFlowSentinel
	option, err := s.CreateOption(ctx, CreateOptionInput{
		ID:             "o1",
		QuestionID:     "q1",
		OptionTitle:    "Haircut",
		NextQuestionID: &sentinel,
	})
	if err != nil {
		t.Fatalf("CreateOption: %v", err)
	}
	if option.NextQuestionID != nil {
		t.Fatalf("expected sentinel to persist as nil next question, got %v", *option.NextQuestionID)
	}
	if option.Order != 1 {
		t.Fatalf("expected first option order 1, got %d", option.Order)
	}
}

func TestFlowScenarioTerminalOptionWithService(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	seedService(t, s, "svcA", "Deep Tissue Massage")

	if _, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o1", QuestionID: "q1", OptionTitle: "Massage"}); err != nil {
		t.Fatalf("CreateOption: %v", err)
	}
	if err := s.UpdateOption(ctx, "o1", OptionPatch{Services: []string{"svcA"}}); err != nil {
		t.Fatalf("UpdateOption: %v", err)
	}

	flow, err := s.GetQuestionsWithOptions(ctx)
	if err != nil {
		t.Fatalf("GetQuestionsWithOptions: %v", err)
	}

	var q1 *types.QuestionWithOptions
	for i := range flow {
		if flow[i].ID == "q1" {
			q1 = &flow[i]
		}
	}
	if q1 == nil {
		t.Fatalf("q1 missing from assembled flow")
	}
	if len(q1.Options) != 1 {
		t.Fatalf("expected one option on q1, got %d", len(q1.Options))
	}
	o1 := q1.Options[0]
	if o1.NextQuestionID != nil {
		t.Fatalf("expected terminal option, got next question %v", *o1.NextQuestionID)
	}
	if len(o1.Services) != 1 || o1.Services[0].ID != "svcA" {
		t.Fatalf("expected exactly service svcA on o1, got %v", o1.Services)
	}
}

func TestUpdateOptionReplacesServiceLinks(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	seedService(t, s, "svcA", "Massage")
	seedService(t, s, "svcB", "Facial")

	if _, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o1", QuestionID: "q1", OptionTitle: "Treatment"}); err != nil {
		t.Fatalf("CreateOption: %v", err)
	}

	if err := s.UpdateOption(ctx, "o1", OptionPatch{Services: []string{"svcA"}}); err != nil {
		t.Fatalf("set services [svcA]: %v", err)
	}
	// Duplicates in the incoming list must collapse to one link.
	if err := s.UpdateOption(ctx, "o1", OptionPatch{Services: []string{"svcB", "svcB"}}); err != nil {
		t.Fatalf("set services [svcB]: %v", err)
	}

	links, err := s.GetServicesForOption(ctx, "o1")
	if err != nil {
		t.Fatalf("GetServicesForOption: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected exactly one link after replacement, got %d", len(links))
	}
	if links[0].ServiceID != "svcB" {
		t.Fatalf("expected link to svcB only, got %s", links[0].ServiceID)
	}
}

func TestDeleteOptionLeavesQuestionAndSiblings(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	if _, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o1", QuestionID: "q1", OptionTitle: "First"}); err != nil {
		t.Fatalf("CreateOption o1: %v", err)
	}
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o2", QuestionID: "q1", OptionTitle: "Second"}); err != nil {
		t.Fatalf("CreateOption o2: %v", err)
	}

	if err := s.DeleteOption(ctx, "o1"); err != nil {
		t.Fatalf("DeleteOption: %v", err)
	}

	flow, err := s.GetQuestionsWithOptions(ctx)
	if err != nil {
		t.Fatalf("GetQuestionsWithOptions: %v", err)
	}
	var q1 *types.QuestionWithOptions
	for i := range flow {
		if flow[i].ID == "q1" {
			q1 = &flow[i]
		}
	}
	if q1 == nil {
		t.Fatalf("q1 disappeared after option delete")
	}
	if len(q1.Options) != 1 || q1.Options[0].ID != "o2" {
		t.Fatalf("expected only o2 to remain, got %v", q1.Options)
	}
}

func TestDeleteQuestionLeavesDanglingReferences(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	if _, err := s.CreateQuestion(ctx, "q1", "Pick a service", nil); err != nil {
		t.Fatalf("CreateQuestion q1: %v", err)
	}
	if _, err := s.CreateQuestion(ctx, "q2", "Pick a time", nil); err != nil {
		t.Fatalf("CreateQuestion q2: %v", err)
	}
	next := "q2"
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o1", QuestionID: "q1", OptionTitle: "Continue", NextQuestionID: &next}); err != nil {
		t.Fatalf("CreateOption: %v", err)
	}

	if err := s.DeleteQuestion(ctx, "q2"); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	option, err := s.GetOptionByID(ctx, "o1")
	if err != nil {
		t.Fatalf("GetOptionByID: %v", err)
	}
	if option == nil {
		t.Fatalf("o1 should survive its next question's deletion")
	}
	if option.NextQuestionID == nil || *option.NextQuestionID != "q2" {
		t.Fatalf("expected dangling next_question_id q2 to be left as-is, got %v", option.NextQuestionID)
	}
}

func TestAssembleFlowDropsLinksToMissingServices(t *testing.T) {
	now := time.Now()
	questions := []*types.BookingFlowQuestion{
		{ID: "start", Text: "Start", Order: 0, CreatedAt: now, UpdatedAt: now},
		{ID: "q1", Text: "Pick", Order: 1, CreatedAt: now, UpdatedAt: now},
	}
	options := []*types.BookingFlowOption{
		{ID: "o1", QuestionID: "q1", OptionTitle: "A", Order: 1, CreatedAt: now, UpdatedAt: now},
	}
	links := []*types.BookingFlowOptionService{
		{OptionID: "o1", ServiceID: "gone"},
		{OptionID: "o1", ServiceID: "svcA"},
		{OptionID: "orphan-option", ServiceID: "svcA"},
	}
	svcs := []*types.Service{
		{ID: "svcA", Name: "Massage", CreatedAt: now, UpdatedAt: now},
	}

	flow := assembleFlow(questions, options, links, svcs)
	if len(flow) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(flow))
	}
	if flow[0].ID != "start" {
		t.Fatalf("expected start first, got %s", flow[0].ID)
	}
	if flow[0].Options == nil || len(flow[0].Options) != 0 {
		t.Fatalf("expected empty non-nil options on start, got %v", flow[0].Options)
	}
	q1 := flow[1]
	if len(q1.Options) != 1 {
		t.Fatalf("expected one option on q1, got %d", len(q1.Options))
	}
	services := q1.Options[0].Services
	if len(services) != 1 || services[0].ID != "svcA" {
		t.Fatalf("expected the link to the missing service to be dropped, got %v", services)
	}
}

func TestAddAndRemoveServiceLink(t *testing.T) {
	s := newFlowService(t)
	ctx := context.Background()

	if _, err := s.CreateQuestion(ctx, "q1", "Pick", nil); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if _, err := s.CreateOption(ctx, CreateOptionInput{ID: "o1", QuestionID: "q1", OptionTitle: "A"}); err != nil {
		t.Fatalf("CreateOption: %v", err)
	}

	if err := s.AddServiceToOption(ctx, "o1", "svcA"); err != nil {
		t.Fatalf("AddServiceToOption: %v", err)
	}
	links, err := s.GetServicesForOption(ctx, "o1")
	if err != nil {
		t.Fatalf("GetServicesForOption: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("expected one link, got %d", len(links))
	}

	if err := s.RemoveServiceFromOption(ctx, "o1", "svcA"); err != nil {
		t.Fatalf("RemoveServiceFromOption: %v", err)
	}
	links, err = s.GetServicesForOption(ctx, "o1")
	if err != nil {
		t.Fatalf("GetServicesForOption after remove: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("expected no links after removal, got %d", len(links))
	}
}
