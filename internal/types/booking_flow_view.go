package types

// OptionWithServices decorates an option with its resolved services for the
// editor's denormalized view of the flow.
type OptionWithServices struct {
	BookingFlowOption
	Services []Service `json:"services"`
}

// QuestionWithOptions is one node of the assembled flow graph.
type QuestionWithOptions struct {
	BookingFlowQuestion
	Options []OptionWithServices `json:"options"`
}
