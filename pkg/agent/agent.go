package agent

import (
	"context"
	"fmt"

	"tripmind/pkg/plan/types"
)

// Agent is the uniform adapter every reasoning capability satisfies. Invoke
// must settle to a Result: network faults, timeouts, malformed responses and
// below-minimum result sets all become Failed results, never errors, so the
// scheduler needs no agent-specific failure knowledge.
type Agent interface {
	Name() string
	Invoke(ctx context.Context, slice Slice, req types.PlanRequest) Result
}

// Result is the settled outcome of one invocation. Failure is data: a Failed
// result carries a reason and an empty payload.
type Result struct {
	Agent   string
	Failed  bool
	Reason  string
	Payload types.StagePayload
}

func ok(name string, p types.StagePayload) Result {
	return Result{Agent: name, Payload: p}
}

func failedf(name, format string, args ...any) Result {
	return Result{Agent: name, Failed: true, Reason: fmt.Sprintf(format, args...)}
}

// Slice is the upstream view an agent's stage is entitled to read: the
// settled payloads of declared dependencies only, plus retrieval context for
// prompts. Sibling outputs from the agent's own stage are never visible.
type Slice struct {
	KBContext string
	outputs   map[string]types.StagePayload
}

func NewSlice(kbCtx string, outputs map[string]types.StagePayload) Slice {
	return Slice{KBContext: kbCtx, outputs: outputs}
}

func (s Slice) Stage(name string) (types.StagePayload, bool) {
	p, ok := s.outputs[name]
	return p, ok
}

// anchor returns the address agents should search around: the first lodging
// option of the stay stage, or the destination when stay produced nothing.
func (s Slice) anchor(req types.PlanRequest) string {
	if stay, ok := s.Stage(StageStay); ok && len(stay.Lodging) > 0 {
		return stay.Lodging[0].Address
	}
	return req.Destination
}

// Stage names shared between the graph and the agents that read them.
const (
	StageStay    = "stay"
	StageSearch  = "search"
	StageBudget  = "budget"
	StagePlanner = "planner"
)
