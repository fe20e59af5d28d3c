package service

import (
	"context"

	"tripmind/entities"
	"tripmind/pkg/plan/types"
)

// TripService runs the planning pipeline and fronts the version store. Plan
// handles both flows: no trip id creates a trip at version 1, an existing id
// appends the next version (subject to write_plan authorization).
type TripService interface {
	Plan(ctx context.Context, req types.PlanRequest) (*types.CompositePlan, int, error)
	Latest(tripID, asUserID string) (*types.CompositePlan, error)
	Version(tripID, asUserID string, n int) (*types.CompositePlan, error)
	ListVersions(tripID, asUserID string) ([]entities.PlanVersion, error)
	ListMine(userID string) ([]entities.Trip, error)
	Delete(tripID, userID string) error
}
