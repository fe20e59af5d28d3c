package agent

import (
	"context"

	"tripmind/pkg/ai"
	"tripmind/pkg/plan/types"
)

// TravelAgent finds transport to the destination and around it.
type TravelAgent struct {
	ai ai.Client
}

func NewTravel(c ai.Client) *TravelAgent { return &TravelAgent{ai: c} }

func (a *TravelAgent) Name() string { return "travel" }

func (a *TravelAgent) Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result {
	opts, err := a.ai.SearchTransport(ctx, req, slice.anchor(req))
	if err != nil {
		return failedf(a.Name(), "transport search: %v", err)
	}
	if len(opts) == 0 {
		return failedf(a.Name(), "no transport options returned")
	}
	return ok(a.Name(), types.StagePayload{Transport: opts})
}
