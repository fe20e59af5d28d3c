package ai

import (
	"context"

	"tripmind/pkg/plan/types"
)

// Client is the boundary to the external reasoning/search capability. Each
// method maps to one agent's need; implementations translate the model's
// loose text into typed options or return an error for the adapter layer to
// absorb.
type Client interface {
	SearchLodging(ctx context.Context, req types.PlanRequest, kbCtx string) ([]types.LodgingOption, error)
	SearchDining(ctx context.Context, req types.PlanRequest, near, kbCtx string) ([]types.DiningOption, error)
	SearchTransport(ctx context.Context, req types.PlanRequest, near string) ([]types.TransportOption, error)
	SearchExperiences(ctx context.Context, req types.PlanRequest, near, kbCtx string) ([]types.ExperienceOption, error)
	BuildItinerary(ctx context.Context, req types.PlanRequest, picks types.StagePayload) ([]types.ItineraryDay, error)
}
