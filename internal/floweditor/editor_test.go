package floweditor

import (
	"testing"
	"time"

	"github.com/ReasonJ01/admin-app/internal/types"
)

func testGraph() []types.QuestionWithOptions {
	now := time.Now()
	q := func(id, text string, order int) types.BookingFlowQuestion {
		return types.BookingFlowQuestion{ID: id, Text: text, Order: order, CreatedAt: now, UpdatedAt: now}
	}
	o := func(id, questionID, title string, order int) types.OptionWithServices {
		return types.OptionWithServices{
			BookingFlowOption: types.BookingFlowOption{
				ID: id, QuestionID: questionID, OptionTitle: title, Order: order,
				CreatedAt: now, UpdatedAt: now,
			},
			Services: []types.Service{},
		}
	}
	return []types.QuestionWithOptions{
		{BookingFlowQuestion: q("start", "Start", 0), Options: []types.OptionWithServices{}},
		{BookingFlowQuestion: q("q1", "Pick a service", 1), Options: []types.OptionWithServices{
			o("o1", "q1", "Massage", 1),
			o("o2", "q1", "Facial", 2),
		}},
		{BookingFlowQuestion: q("q2", "Pick a time", 2), Options: []types.OptionWithServices{}},
	}
}

func questionIDs(graph []types.QuestionWithOptions) []string {
	ids := make([]string, 0, len(graph))
	for _, q := range graph {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestGraphLoadedSortsByOrder(t *testing.T) {
	graph := testGraph()
	// Feed the graph in scrambled order.
	scrambled := []types.QuestionWithOptions{graph[2], graph[0], graph[1]}

	s := Reduce(State{}, GraphLoaded{Graph: scrambled})

	got := questionIDs(s.Graph)
	want := []string{"start", "q1", "q2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestOpenPanelReplacesExisting(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, OpenAddOption{QuestionID: "q1"})
	if s.OpenPanel == nil || s.OpenPanel.Kind != PanelAddOption || s.OpenPanel.QuestionID != "q1" {
		t.Fatalf("expected add-option panel for q1, got %+v", s.OpenPanel)
	}

	s = Reduce(s, OpenEditOption{OptionID: "o2"})
	if s.OpenPanel == nil || s.OpenPanel.Kind != PanelEditOption || s.OpenPanel.OptionID != "o2" {
		t.Fatalf("expected edit-option panel for o2 to replace the add panel, got %+v", s.OpenPanel)
	}

	s = Reduce(s, ClosePanel{})
	if s.OpenPanel != nil {
		t.Fatalf("expected no open panel after close, got %+v", s.OpenPanel)
	}
}

func TestEditQuestionDraftLifecycle(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, BeginEditQuestion{QuestionID: "q1"})
	if s.EditingQuestionID != "q1" {
		t.Fatalf("expected q1 in edit mode, got %q", s.EditingQuestionID)
	}
	if s.DraftText != "Pick a service" {
		t.Fatalf("expected draft seeded with current text, got %q", s.DraftText)
	}

	s = Reduce(s, SetDraftText{Text: "Choose a treatment"})
	s = Reduce(s, SaveQuestionText{})
	if s.EditingQuestionID != "" || s.DraftText != "" {
		t.Fatalf("expected edit mode cleared after save")
	}
	q := findQuestion(s.Graph, "q1")
	if q == nil || q.Text != "Choose a treatment" {
		t.Fatalf("expected saved text on q1, got %+v", q)
	}
}

func TestCancelEditDiscardsDraft(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, BeginEditQuestion{QuestionID: "q1"})
	s = Reduce(s, SetDraftText{Text: "never saved"})
	s = Reduce(s, CancelEditQuestion{})

	if s.EditingQuestionID != "" || s.DraftText != "" {
		t.Fatalf("expected edit mode cleared after cancel")
	}
	q := findQuestion(s.Graph, "q1")
	if q == nil || q.Text != "Pick a service" {
		t.Fatalf("expected original text preserved, got %+v", q)
	}
}

func TestSetDraftTextWithoutEditModeIsIgnored(t *testing.T) {
	s := Reduce(State{Graph: testGraph()}, SetDraftText{Text: "stray"})
	if s.DraftText != "" {
		t.Fatalf("expected draft untouched outside edit mode, got %q", s.DraftText)
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, RequestDelete{Target: DeleteTarget{Kind: TargetOption, ID: "o1", Title: "Massage"}})
	if s.PendingDelete == nil || s.PendingDelete.ID != "o1" {
		t.Fatalf("expected pending delete for o1, got %+v", s.PendingDelete)
	}

	s = Reduce(s, ConfirmDelete{})
	if s.PendingDelete != nil {
		t.Fatalf("expected pending delete cleared after confirm")
	}
	q := findQuestion(s.Graph, "q1")
	if len(q.Options) != 1 || q.Options[0].ID != "o2" {
		t.Fatalf("expected only o2 to remain on q1, got %+v", q.Options)
	}
}

func TestDeleteCancelLeavesGraphIntact(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, RequestDelete{Target: DeleteTarget{Kind: TargetQuestion, ID: "q2", Title: "Pick a time"}})
	s = Reduce(s, CancelDelete{})

	if s.PendingDelete != nil {
		t.Fatalf("expected pending delete cleared after cancel")
	}
	if findQuestion(s.Graph, "q2") == nil {
		t.Fatalf("expected q2 untouched after cancelled delete")
	}
}

func TestConfirmDeleteQuestionKeepsDanglingReferences(t *testing.T) {
	graph := testGraph()
	next := "q2"
	graph[1].Options[0].NextQuestionID = &next
	s := State{Graph: graph}

	s = Reduce(s, RequestDelete{Target: DeleteTarget{Kind: TargetQuestion, ID: "q2"}})
	s = Reduce(s, ConfirmDelete{})

	if findQuestion(s.Graph, "q2") != nil {
		t.Fatalf("expected q2 removed")
	}
	q1 := findQuestion(s.Graph, "q1")
	if q1.Options[0].NextQuestionID == nil || *q1.Options[0].NextQuestionID != "q2" {
		t.Fatalf("expected o1 to keep its dangling reference to q2")
	}
}

func TestApplyDeletedRemovesWithoutConfirmation(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, ApplyOptionDeleted{OptionID: "o1"})
	q1 := findQuestion(s.Graph, "q1")
	if len(q1.Options) != 1 || q1.Options[0].ID != "o2" {
		t.Fatalf("expected o1 removed, got %+v", q1.Options)
	}

	s = Reduce(s, ApplyQuestionDeleted{QuestionID: "q2"})
	if findQuestion(s.Graph, "q2") != nil {
		t.Fatalf("expected q2 removed")
	}
	if s.PendingDelete != nil {
		t.Fatalf("server-confirmed delete must not touch pending state")
	}
}

func TestMoveQuestionSwapsAndResorts(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, MoveQuestion{QuestionID: "q2", Direction: MoveUp})

	got := questionIDs(s.Graph)
	want := []string{"start", "q2", "q1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v after move, got %v", want, got)
		}
	}

	// Moving the first question up is a no-op.
	before := questionIDs(s.Graph)
	s = Reduce(s, MoveQuestion{QuestionID: "start", Direction: MoveUp})
	after := questionIDs(s.Graph)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("boundary move changed order: %v -> %v", before, after)
		}
	}
}

func TestMoveOptionSwapsWithinQuestion(t *testing.T) {
	s := State{Graph: testGraph()}

	s = Reduce(s, MoveOption{QuestionID: "q1", OptionID: "o2", Direction: MoveUp})

	q1 := findQuestion(s.Graph, "q1")
	if q1.Options[0].ID != "o2" || q1.Options[1].ID != "o1" {
		t.Fatalf("expected o2 before o1, got %+v", q1.Options)
	}

	// Unknown option leaves the list alone.
	s = Reduce(s, MoveOption{QuestionID: "q1", OptionID: "missing", Direction: MoveDown})
	q1 = findQuestion(s.Graph, "q1")
	if q1.Options[0].ID != "o2" || q1.Options[1].ID != "o1" {
		t.Fatalf("unknown option move changed order: %+v", q1.Options)
	}
}

func TestApplyOptionCreatedInsertsSorted(t *testing.T) {
	s := State{Graph: testGraph()}

	now := time.Now()
	newOption := types.OptionWithServices{
		BookingFlowOption: types.BookingFlowOption{
			ID: "o0", QuestionID: "q1", OptionTitle: "Hot Stone", Order: 0,
			CreatedAt: now, UpdatedAt: now,
		},
		Services: []types.Service{},
	}
	s = Reduce(s, ApplyOptionCreated{Option: newOption})

	q1 := findQuestion(s.Graph, "q1")
	if len(q1.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(q1.Options))
	}
	if q1.Options[0].ID != "o0" {
		t.Fatalf("expected new option sorted first, got %+v", q1.Options)
	}
}

func TestApplyQuestionUpdatedResorts(t *testing.T) {
	s := State{Graph: testGraph()}

	order := 10
	s = Reduce(s, ApplyQuestionUpdated{QuestionID: "q1", Order: &order})

	got := questionIDs(s.Graph)
	want := []string{"start", "q2", "q1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v after update, got %v", want, got)
		}
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	original := State{Graph: testGraph()}

	_ = Reduce(original, ApplyQuestionUpdated{QuestionID: "q1", Text: strPtr("changed")})

	q := findQuestion(original.Graph, "q1")
	if q.Text != "Pick a service" {
		t.Fatalf("input state was mutated: %q", q.Text)
	}
}

func strPtr(s string) *string { return &s }
