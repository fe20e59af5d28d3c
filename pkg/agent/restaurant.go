package agent

import (
	"context"

	"tripmind/pkg/ai"
	"tripmind/pkg/plan/types"
)

// RestaurantAgent finds dining options around the stay-stage anchor.
type RestaurantAgent struct {
	ai ai.Client
}

func NewRestaurant(c ai.Client) *RestaurantAgent { return &RestaurantAgent{ai: c} }

func (a *RestaurantAgent) Name() string { return "restaurant" }

func (a *RestaurantAgent) Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result {
	opts, err := a.ai.SearchDining(ctx, req, slice.anchor(req), slice.KBContext)
	if err != nil {
		return failedf(a.Name(), "dining search: %v", err)
	}
	if len(opts) == 0 {
		return failedf(a.Name(), "no dining options returned")
	}
	return ok(a.Name(), types.StagePayload{Food: opts})
}
