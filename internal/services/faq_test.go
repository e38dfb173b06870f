package services

import (
	"context"
	"testing"

	"github.com/ReasonJ01/admin-app/internal/repos"
)

func newFAQService(t *testing.T) FAQService {
	t.Helper()

	gdb := newTestDB(t)
	log := newTestLogger(t)
	return NewFAQService(gdb, log, repos.NewFAQRepo(gdb, log))
}

func faqOrder(t *testing.T, s FAQService) []string {
	t.Helper()

	faqs, err := s.GetFAQs(context.Background())
	if err != nil {
		t.Fatalf("GetFAQs: %v", err)
	}
	questions := make([]string, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, faq.Question)
	}
	return questions
}

func TestAddFAQAssignsNextOrder(t *testing.T) {
	s := newFAQService(t)
	ctx := context.Background()

	first, err := s.AddFAQ(ctx, "What are your hours?", "9-5 weekdays")
	if err != nil {
		t.Fatalf("AddFAQ: %v", err)
	}
	if first.Order != 1 {
		t.Fatalf("expected first faq order 1, got %d", first.Order)
	}

	second, err := s.AddFAQ(ctx, "Do you take walk-ins?", "Bookings only")
	if err != nil {
		t.Fatalf("AddFAQ: %v", err)
	}
	if second.Order != 2 {
		t.Fatalf("expected second faq order 2, got %d", second.Order)
	}
}

func TestAddFAQRejectsEmptyFields(t *testing.T) {
	s := newFAQService(t)
	ctx := context.Background()

	if _, err := s.AddFAQ(ctx, "", "answer"); err == nil {
		t.Fatalf("expected error for empty question")
	}
	if _, err := s.AddFAQ(ctx, "question", ""); err == nil {
		t.Fatalf("expected error for empty answer")
	}
}

func TestReorderFAQSwapsNeighbors(t *testing.T) {
	s := newFAQService(t)
	ctx := context.Background()

	a, err := s.AddFAQ(ctx, "A", "a")
	if err != nil {
		t.Fatalf("AddFAQ A: %v", err)
	}
	if _, err := s.AddFAQ(ctx, "B", "b"); err != nil {
		t.Fatalf("AddFAQ B: %v", err)
	}
	if _, err := s.AddFAQ(ctx, "C", "c"); err != nil {
		t.Fatalf("AddFAQ C: %v", err)
	}

	if err := s.ReorderFAQ(ctx, a.ID, MoveDown); err != nil {
		t.Fatalf("ReorderFAQ down: %v", err)
	}
	got := faqOrder(t, s)
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after move down: expected %v, got %v", want, got)
		}
	}

	if err := s.ReorderFAQ(ctx, a.ID, MoveUp); err != nil {
		t.Fatalf("ReorderFAQ up: %v", err)
	}
	got = faqOrder(t, s)
	want = []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after move back up: expected %v, got %v", want, got)
		}
	}
}

func TestReorderFAQBoundaryIsNoop(t *testing.T) {
	s := newFAQService(t)
	ctx := context.Background()

	a, err := s.AddFAQ(ctx, "A", "a")
	if err != nil {
		t.Fatalf("AddFAQ A: %v", err)
	}
	b, err := s.AddFAQ(ctx, "B", "b")
	if err != nil {
		t.Fatalf("AddFAQ B: %v", err)
	}

	if err := s.ReorderFAQ(ctx, a.ID, MoveUp); err != nil {
		t.Fatalf("ReorderFAQ first up: %v", err)
	}
	if err := s.ReorderFAQ(ctx, b.ID, MoveDown); err != nil {
		t.Fatalf("ReorderFAQ last down: %v", err)
	}

	got := faqOrder(t, s)
	want := []string{"A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("boundary moves changed order: expected %v, got %v", want, got)
		}
	}
}

func TestReorderFAQUnknownID(t *testing.T) {
	s := newFAQService(t)

	if err := s.ReorderFAQ(context.Background(), "missing", MoveUp); err == nil {
		t.Fatalf("expected error for unknown faq id")
	}
}

func TestDeleteFAQs(t *testing.T) {
	s := newFAQService(t)
	ctx := context.Background()

	a, err := s.AddFAQ(ctx, "A", "a")
	if err != nil {
		t.Fatalf("AddFAQ A: %v", err)
	}
	b, err := s.AddFAQ(ctx, "B", "b")
	if err != nil {
		t.Fatalf("AddFAQ B: %v", err)
	}
	if _, err := s.AddFAQ(ctx, "C", "c"); err != nil {
		t.Fatalf("AddFAQ C: %v", err)
	}

	if err := s.DeleteFAQs(ctx, []string{a.ID, b.ID}); err != nil {
		t.Fatalf("DeleteFAQs: %v", err)
	}

	got := faqOrder(t, s)
	if len(got) != 1 || got[0] != "C" {
		t.Fatalf("expected only C to remain, got %v", got)
	}
}
