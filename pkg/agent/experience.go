package agent

import (
	"context"

	"tripmind/pkg/ai"
	"tripmind/pkg/plan/types"
)

// ExperienceAgent finds local activities around the stay-stage anchor.
type ExperienceAgent struct {
	ai ai.Client
}

func NewExperience(c ai.Client) *ExperienceAgent { return &ExperienceAgent{ai: c} }

func (a *ExperienceAgent) Name() string { return "experience" }

func (a *ExperienceAgent) Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result {
	opts, err := a.ai.SearchExperiences(ctx, req, slice.anchor(req), slice.KBContext)
	if err != nil {
		return failedf(a.Name(), "experience search: %v", err)
	}
	if len(opts) == 0 {
		return failedf(a.Name(), "no experiences returned")
	}
	return ok(a.Name(), types.StagePayload{Activities: opts})
}
