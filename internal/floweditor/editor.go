// Package floweditor holds the booking flow editor's interaction state: the
// in-memory graph the operator is editing, which question is in text-edit
// mode, which add/edit panel is open, and any delete awaiting confirmation.
// All transitions go through Reduce, so optimistic local patches and
// server-confirmed updates share one code path.
package floweditor

import (
	"sort"

	"github.com/ReasonJ01/admin-app/internal/types"
)

type PanelKind string

const (
	PanelAddOption  PanelKind = "add-option"
	PanelEditOption PanelKind = "edit-option"
)

// Panel is the single open add/edit surface. Only one panel exists for the
// whole editor, not one per row: opening another replaces it.
type Panel struct {
	Kind       PanelKind
	QuestionID string
	OptionID   string
}

type TargetKind string

const (
	TargetQuestion TargetKind = "question"
	TargetOption   TargetKind = "option"
)

// DeleteTarget is a deletion waiting for the operator to confirm. Title is
// carried only for display in the confirmation prompt.
type DeleteTarget struct {
	Kind  TargetKind
	ID    string
	Title string
}

type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

type State struct {
	Graph             []types.QuestionWithOptions
	EditingQuestionID string
	DraftText         string
	OpenPanel         *Panel
	PendingDelete     *DeleteTarget
}

type Action interface {
	isAction()
}

type GraphLoaded struct {
	Graph []types.QuestionWithOptions
}

type BeginEditQuestion struct {
	QuestionID string
}

type SetDraftText struct {
	Text string
}

// SaveQuestionText commits the draft to the local graph and leaves edit mode.
type SaveQuestionText struct{}

// CancelEditQuestion leaves edit mode, discarding the unsaved draft.
type CancelEditQuestion struct{}

type OpenAddOption struct {
	QuestionID string
}

type OpenEditOption struct {
	OptionID string
}

type ClosePanel struct{}

type RequestDelete struct {
	Target DeleteTarget
}

type CancelDelete struct{}

// ConfirmDelete applies the pending removal to the local graph and clears the
// pending state. Dispatching the server mutation is the caller's concern.
type ConfirmDelete struct{}

type ApplyQuestionCreated struct {
	Question types.BookingFlowQuestion
}

type ApplyQuestionUpdated struct {
	QuestionID string
	Text       *string
	Order      *int
}

type ApplyOptionCreated struct {
	Option types.OptionWithServices
}

type ApplyOptionUpdated struct {
	Option types.OptionWithServices
}

// ApplyQuestionDeleted and ApplyOptionDeleted mirror a server-confirmed
// removal without going through the confirmation prompt.
type ApplyQuestionDeleted struct {
	QuestionID string
}

type ApplyOptionDeleted struct {
	OptionID string
}

type MoveQuestion struct {
	QuestionID string
	Direction  Direction
}

type MoveOption struct {
	QuestionID string
	OptionID   string
	Direction  Direction
}

func (GraphLoaded) isAction()          {}
func (BeginEditQuestion) isAction()    {}
func (SetDraftText) isAction()         {}
func (SaveQuestionText) isAction()     {}
func (CancelEditQuestion) isAction()   {}
func (OpenAddOption) isAction()        {}
func (OpenEditOption) isAction()       {}
func (ClosePanel) isAction()           {}
func (RequestDelete) isAction()        {}
func (CancelDelete) isAction()         {}
func (ConfirmDelete) isAction()        {}
func (ApplyQuestionCreated) isAction() {}
func (ApplyQuestionUpdated) isAction() {}
func (ApplyOptionCreated) isAction()   {}
func (ApplyOptionUpdated) isAction()   {}
func (ApplyQuestionDeleted) isAction() {}
func (ApplyOptionDeleted) isAction()   {}
func (MoveQuestion) isAction()         {}
func (MoveOption) isAction()           {}

// Reduce returns the state after applying one action. The input state is
// never mutated.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case GraphLoaded:
		s.Graph = sortGraph(act.Graph)

	case BeginEditQuestion:
		if q := findQuestion(s.Graph, act.QuestionID); q != nil {
			s.EditingQuestionID = act.QuestionID
			s.DraftText = q.Text
		}

	case SetDraftText:
		if s.EditingQuestionID != "" {
			s.DraftText = act.Text
		}

	case SaveQuestionText:
		if s.EditingQuestionID != "" {
			s.Graph = patchQuestion(s.Graph, s.EditingQuestionID, func(q *types.QuestionWithOptions) {
				q.Text = s.DraftText
			})
			s.EditingQuestionID = ""
			s.DraftText = ""
		}

	case CancelEditQuestion:
		s.EditingQuestionID = ""
		s.DraftText = ""

	case OpenAddOption:
		s.OpenPanel = &Panel{Kind: PanelAddOption, QuestionID: act.QuestionID}

	case OpenEditOption:
		s.OpenPanel = &Panel{Kind: PanelEditOption, OptionID: act.OptionID}

	case ClosePanel:
		s.OpenPanel = nil

	case RequestDelete:
		target := act.Target
		s.PendingDelete = &target

	case CancelDelete:
		s.PendingDelete = nil

	case ConfirmDelete:
		if s.PendingDelete != nil {
			switch s.PendingDelete.Kind {
			case TargetQuestion:
				s.Graph = removeQuestion(s.Graph, s.PendingDelete.ID)
			case TargetOption:
				s.Graph = removeOption(s.Graph, s.PendingDelete.ID)
			}
			s.PendingDelete = nil
		}

	case ApplyQuestionCreated:
		graph := cloneGraph(s.Graph)
		graph = append(graph, types.QuestionWithOptions{
			BookingFlowQuestion: act.Question,
			Options:             []types.OptionWithServices{},
		})
		s.Graph = sortGraph(graph)

	case ApplyQuestionUpdated:
		s.Graph = patchQuestion(s.Graph, act.QuestionID, func(q *types.QuestionWithOptions) {
			if act.Text != nil {
				q.Text = *act.Text
			}
			if act.Order != nil {
				q.Order = *act.Order
			}
		})
		s.Graph = sortGraph(s.Graph)

	case ApplyOptionCreated:
		s.Graph = patchQuestion(s.Graph, act.Option.QuestionID, func(q *types.QuestionWithOptions) {
			q.Options = append(append([]types.OptionWithServices{}, q.Options...), act.Option)
			sortOptions(q.Options)
		})

	case ApplyOptionUpdated:
		s.Graph = patchQuestion(s.Graph, act.Option.QuestionID, func(q *types.QuestionWithOptions) {
			options := append([]types.OptionWithServices{}, q.Options...)
			for i := range options {
				if options[i].ID == act.Option.ID {
					options[i] = act.Option
					break
				}
			}
			sortOptions(options)
			q.Options = options
		})

	case ApplyQuestionDeleted:
		s.Graph = removeQuestion(s.Graph, act.QuestionID)

	case ApplyOptionDeleted:
		s.Graph = removeOption(s.Graph, act.OptionID)

	case MoveQuestion:
		graph := cloneGraph(s.Graph)
		idx := indexOfQuestion(graph, act.QuestionID)
		if neighbor, ok := neighborIndex(idx, len(graph), act.Direction); ok {
			graph[idx].Order, graph[neighbor].Order = graph[neighbor].Order, graph[idx].Order
			s.Graph = sortGraph(graph)
		}

	case MoveOption:
		s.Graph = patchQuestion(s.Graph, act.QuestionID, func(q *types.QuestionWithOptions) {
			options := append([]types.OptionWithServices{}, q.Options...)
			idx := -1
			for i := range options {
				if options[i].ID == act.OptionID {
					idx = i
					break
				}
			}
			if neighbor, ok := neighborIndex(idx, len(options), act.Direction); ok {
				options[idx].Order, options[neighbor].Order = options[neighbor].Order, options[idx].Order
				sortOptions(options)
			}
			q.Options = options
		})
	}
	return s
}

func cloneGraph(graph []types.QuestionWithOptions) []types.QuestionWithOptions {
	return append([]types.QuestionWithOptions{}, graph...)
}

func sortGraph(graph []types.QuestionWithOptions) []types.QuestionWithOptions {
	sorted := cloneGraph(graph)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

func sortOptions(options []types.OptionWithServices) {
	sort.SliceStable(options, func(i, j int) bool { return options[i].Order < options[j].Order })
}

func findQuestion(graph []types.QuestionWithOptions, id string) *types.QuestionWithOptions {
	for i := range graph {
		if graph[i].ID == id {
			return &graph[i]
		}
	}
	return nil
}

func indexOfQuestion(graph []types.QuestionWithOptions, id string) int {
	for i := range graph {
		if graph[i].ID == id {
			return i
		}
	}
	return -1
}

func patchQuestion(graph []types.QuestionWithOptions, id string, patch func(q *types.QuestionWithOptions)) []types.QuestionWithOptions {
	cloned := cloneGraph(graph)
	for i := range cloned {
		if cloned[i].ID == id {
			patch(&cloned[i])
			break
		}
	}
	return cloned
}

// removeQuestion drops the question node only. Options on other questions
// that point at it keep their dangling next-question reference, matching what
// the server does.
func removeQuestion(graph []types.QuestionWithOptions, id string) []types.QuestionWithOptions {
	result := make([]types.QuestionWithOptions, 0, len(graph))
	for _, q := range graph {
		if q.ID != id {
			result = append(result, q)
		}
	}
	return result
}

func removeOption(graph []types.QuestionWithOptions, optionID string) []types.QuestionWithOptions {
	cloned := cloneGraph(graph)
	for i := range cloned {
		options := make([]types.OptionWithServices, 0, len(cloned[i].Options))
		removed := false
		for _, o := range cloned[i].Options {
			if o.ID == optionID {
				removed = true
				continue
			}
			options = append(options, o)
		}
		if removed {
			cloned[i].Options = options
			break
		}
	}
	return cloned
}

func neighborIndex(idx, length int, direction Direction) (int, bool) {
	if idx < 0 {
		return 0, false
	}
	var neighbor int
	switch direction {
	case MoveUp:
		neighbor = idx - 1
	case MoveDown:
		neighbor = idx + 1
	default:
		return 0, false
	}
	if neighbor < 0 || neighbor >= length {
		return 0, false
	}
	return neighbor, true
}
