package agent

import (
	"context"

	"tripmind/pkg/ai"
	"tripmind/pkg/plan/types"
)

// StayAgent finds lodging. It runs alone in the first stage; the pipeline has
// nothing to plan around if it fails, so the scheduler treats its failure as
// fatal (unlike every later agent).
type StayAgent struct {
	ai  ai.Client
	min int // minimum options below which the result is a quality failure
}

func NewStay(c ai.Client, minResults int) *StayAgent {
	if minResults <= 0 {
		minResults = 3
	}
	return &StayAgent{ai: c, min: minResults}
}

func (a *StayAgent) Name() string { return "stay" }

func (a *StayAgent) Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result {
	opts, err := a.ai.SearchLodging(ctx, req, slice.KBContext)
	if err != nil {
		return failedf(a.Name(), "lodging search: %v", err)
	}
	if len(opts) < a.min {
		return failedf(a.Name(), "only %d lodging options, need at least %d", len(opts), a.min)
	}
	return ok(a.Name(), types.StagePayload{Lodging: opts})
}
