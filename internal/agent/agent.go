package agent

import "context"

// Answerer is the retrieval+generation collaborator for messages that
// match no command rule. How it answers (vector search, model choice)
// is opaque to the dispatcher.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// PlanRequest carries the confirmed training-plan parameters.
type PlanRequest struct {
	Difficulty string
	Mode       string
	NumPeople  int
	Duration   int
	TargetUser string
}

// PlanGenerator produces a training plan after the staged request has
// been confirmed.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (string, error)
}
