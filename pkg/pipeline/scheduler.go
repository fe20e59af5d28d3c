package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"tripmind/pkg/agent"
	"tripmind/pkg/plan/types"
)

var (
	// ErrFatal wraps first-stage failures and malformed requests. No plan is
	// produced and nothing is persisted.
	ErrFatal = errors.New("pipeline fatal")
	// ErrAborted wraps cooperative cancellation. Partial results are dropped.
	ErrAborted = errors.New("pipeline aborted")
)

// Scheduler executes the stage graph once per request: fan the stage's
// agents out, join, merge, advance. Later stages never observe an unsettled
// upstream payload because the merge happens strictly between joins.
type Scheduler struct {
	graph        Graph
	agentTimeout time.Duration
}

func NewScheduler(g Graph, agentTimeout time.Duration) (*Scheduler, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("stage graph: %w", err)
	}
	if agentTimeout <= 0 {
		agentTimeout = 30 * time.Second
	}
	return &Scheduler{graph: g, agentTimeout: agentTimeout}, nil
}

// Run executes every stage in graph order and folds the settled payloads
// into a CompositePlan. A non-first-stage agent failure only empties its
// category; the run still succeeds.
func (s *Scheduler) Run(ctx context.Context, req types.PlanRequest, kbCtx string) (*types.CompositePlan, error) {
	if req.UserID == "" || req.Prompt == "" {
		return nil, fmt.Errorf("%w: request needs user_id and prompt", ErrFatal)
	}

	outputs := make(map[string]types.StagePayload, len(s.graph))
	for i, st := range s.graph {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAborted, err)
		}

		slice := s.slice(st, outputs, kbCtx)
		results, err := s.runStage(ctx, st, slice, req)
		if err != nil {
			return nil, err
		}

		var merged types.StagePayload
		for _, r := range results {
			if r.Failed {
				log.Printf("[pipeline] stage=%s agent=%s failed: %s", st.Name, r.Agent, r.Reason)
				if i == 0 {
					return nil, fmt.Errorf("%w: %s agent failed: %s", ErrFatal, r.Agent, r.Reason)
				}
				continue
			}
			merged.Merge(r.Payload)
		}
		outputs[st.Name] = merged
	}

	return Aggregate(req, outputs), nil
}

// slice exposes only the payloads of declared dependencies. The copy keeps a
// stage from reaching into outputs written after its slice was taken.
func (s *Scheduler) slice(st Stage, outputs map[string]types.StagePayload, kbCtx string) agent.Slice {
	visible := make(map[string]types.StagePayload, len(st.DependsOn))
	for _, dep := range st.DependsOn {
		if p, ok := outputs[dep]; ok {
			visible[dep] = p
		}
	}
	return agent.NewSlice(kbCtx, visible)
}

// runStage fans the stage's agents out and joins them. Every agent gets an
// independent timeout; a timed-out or failed agent settles as a Failed
// result without disturbing its siblings. Only parent cancellation makes the
// join return an error.
func (s *Scheduler) runStage(ctx context.Context, st Stage, slice agent.Slice, req types.PlanRequest) ([]agent.Result, error) {
	results := make([]agent.Result, len(st.Agents))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range st.Agents {
		g.Go(func() error {
			actx, cancel := context.WithTimeout(gctx, s.agentTimeout)
			defer cancel()
			r := a.Invoke(actx, slice, req)
			if r.Agent == "" {
				r.Agent = a.Name()
			}
			results[i] = r
			// Propagate only the parent's cancellation, not agent failures.
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: stage %s: %v", ErrAborted, st.Name, err)
	}
	return results, nil
}
