package agent

import (
	"context"

	"tripmind/pkg/ai"
	"tripmind/pkg/plan/types"
)

// PlannerAgent builds the day-by-day itinerary from everything upstream. If
// it fails the plan simply ships without an itinerary; the other categories
// survive untouched.
type PlannerAgent struct {
	ai ai.Client
}

func NewPlanner(c ai.Client) *PlannerAgent { return &PlannerAgent{ai: c} }

func (a *PlannerAgent) Name() string { return "planner" }

func (a *PlannerAgent) Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result {
	var picks types.StagePayload
	if stay, ok := slice.Stage(StageStay); ok {
		picks.Merge(stay)
	}
	if search, ok := slice.Stage(StageSearch); ok {
		picks.Merge(search)
	}
	if budget, ok := slice.Stage(StageBudget); ok {
		picks.Budget = budget.Budget
	}

	days, err := a.ai.BuildItinerary(ctx, req, picks)
	if err != nil {
		return failedf(a.Name(), "itinerary: %v", err)
	}
	if len(days) == 0 {
		return failedf(a.Name(), "empty itinerary returned")
	}
	return ok(a.Name(), types.StagePayload{Itinerary: days})
}
