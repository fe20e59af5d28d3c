package serviceImp

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"tripmind/entities"
	accessSvc "tripmind/pkg/access/service"
	msgSvc "tripmind/pkg/message/service"
	"tripmind/pkg/pipeline"
	"tripmind/pkg/plan/types"
	"tripmind/pkg/trip/repository"
	"tripmind/pkg/trip/service"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.GuideChunk, error)
}

type profileMerger interface {
	MergeDefaults(req *types.PlanRequest)
}

type TripSvc struct {
	scheduler *pipeline.Scheduler
	repo      repository.TripRepository
	gate      accessSvc.AccessService
	msgs      msgSvc.MessageService
	profiles  profileMerger
	kb        kbSearcher // may be nil; planning degrades to no retrieval context
}

func New(sched *pipeline.Scheduler, repo repository.TripRepository, gate accessSvc.AccessService,
	msgs msgSvc.MessageService, profiles profileMerger, kb kbSearcher) service.TripService {
	return &TripSvc{scheduler: sched, repo: repo, gate: gate, msgs: msgs, profiles: profiles, kb: kb}
}

func (s *TripSvc) Plan(ctx context.Context, req types.PlanRequest) (*types.CompositePlan, int, error) {
	newTrip := req.TripID == ""
	if !newTrip {
		if err := s.gate.Authorize(req.TripID, req.UserID, accessSvc.ActionWritePlan); err != nil {
			return nil, 0, err
		}
	}

	if s.profiles != nil {
		s.profiles.MergeDefaults(&req)
	}
	ExtractTripDetails(&req)

	plan, err := s.scheduler.Run(ctx, req, s.kbContext(req))
	if err != nil {
		return nil, 0, err
	}

	tripID := req.TripID
	if newTrip {
		tripID = uuid.NewString()
	}
	plan.TripID = tripID
	plan.Request.TripID = tripID

	raw, err := json.Marshal(plan)
	if err != nil {
		return nil, 0, err
	}

	version := 1
	if newTrip {
		t := &entities.Trip{TripID: tripID, OwnerUserID: req.UserID}
		if err := s.repo.Create(t, string(raw)); err != nil {
			return nil, 0, err
		}
	} else {
		if version, err = s.repo.Append(tripID, string(raw), req.UserID); err != nil {
			return nil, 0, err
		}
	}

	// The request's prompt becomes the user's turn, the derived summary the
	// assistant's. Chat failures don't undo a committed version.
	if _, err := s.msgs.Append(tripID, req.UserID, entities.RoleUser, req.Prompt, nil); err != nil {
		log.Printf("[trip] append user message: %v", err)
	}
	if _, err := s.msgs.Append(tripID, req.UserID, entities.RoleAssistant, pipeline.Summarize(plan), plan); err != nil {
		log.Printf("[trip] append summary message: %v", err)
	}
	return plan, version, nil
}

func (s *TripSvc) kbContext(req types.PlanRequest) string {
	if s.kb == nil || req.Destination == "" {
		return ""
	}
	chunks, err := s.kb.Search(req.Destination+" travel guide", 6)
	if err != nil {
		return "" // retrieval is best-effort
	}
	var ctx string
	for _, ch := range chunks {
		if len(ctx) > 6000 {
			break
		}
		ctx += "\n---\n" + ch.Text
	}
	return ctx
}

func (s *TripSvc) Latest(tripID, asUserID string) (*types.CompositePlan, error) {
	if err := s.gate.Authorize(tripID, asUserID, accessSvc.ActionReadPlan); err != nil {
		return nil, err
	}
	t, err := s.repo.Find(tripID)
	if err != nil {
		return nil, err
	}
	return unmarshalPlan(t.LatestJSON)
}

func (s *TripSvc) Version(tripID, asUserID string, n int) (*types.CompositePlan, error) {
	if err := s.gate.Authorize(tripID, asUserID, accessSvc.ActionReadPlan); err != nil {
		return nil, err
	}
	v, err := s.repo.Version(tripID, n)
	if err != nil {
		return nil, err
	}
	return unmarshalPlan(v.PlanJSON)
}

func (s *TripSvc) ListVersions(tripID, asUserID string) ([]entities.PlanVersion, error) {
	if err := s.gate.Authorize(tripID, asUserID, accessSvc.ActionReadPlan); err != nil {
		return nil, err
	}
	return s.repo.ListVersions(tripID)
}

func (s *TripSvc) ListMine(userID string) ([]entities.Trip, error) {
	return s.repo.ListByOwner(userID)
}

// Delete removes the trip and everything under it. Owner only; the denial is
// indistinguishable from an unknown trip.
func (s *TripSvc) Delete(tripID, userID string) error {
	owner, err := s.repo.Owner(tripID)
	if err != nil || owner != userID {
		return accessSvc.ErrDenied
	}
	return s.repo.Delete(tripID)
}

func unmarshalPlan(raw string) (*types.CompositePlan, error) {
	var p types.CompositePlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
