package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/pkg/plan/types"
)

// fakeClient lets each method be programmed per test and records the anchor
// the search agents pass down.
type fakeClient struct {
	lodging     []types.LodgingOption
	lodgingErr  error
	dining      []types.DiningOption
	diningErr   error
	diningNear  string
	transport   []types.TransportOption
	experiences []types.ExperienceOption
	itinerary   []types.ItineraryDay
	itinErr     error
	itinPicks   types.StagePayload
}

func (f *fakeClient) SearchLodging(_ context.Context, _ types.PlanRequest, _ string) ([]types.LodgingOption, error) {
	return f.lodging, f.lodgingErr
}

func (f *fakeClient) SearchDining(_ context.Context, _ types.PlanRequest, near, _ string) ([]types.DiningOption, error) {
	f.diningNear = near
	return f.dining, f.diningErr
}

func (f *fakeClient) SearchTransport(_ context.Context, _ types.PlanRequest, _ string) ([]types.TransportOption, error) {
	return f.transport, nil
}

func (f *fakeClient) SearchExperiences(_ context.Context, _ types.PlanRequest, _, _ string) ([]types.ExperienceOption, error) {
	return f.experiences, nil
}

func (f *fakeClient) BuildItinerary(_ context.Context, _ types.PlanRequest, picks types.StagePayload) ([]types.ItineraryDay, error) {
	f.itinPicks = picks
	return f.itinerary, f.itinErr
}

func lodgingN(n int) []types.LodgingOption {
	out := make([]types.LodgingOption, n)
	for i := range out {
		out[i] = types.LodgingOption{ID: "l", Address: "old town 1"}
	}
	return out
}

func TestStayBelowMinimumFails(t *testing.T) {
	a := NewStay(&fakeClient{lodging: lodgingN(2)}, 3)
	r := a.Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{})
	require.True(t, r.Failed)
	assert.Contains(t, r.Reason, "need at least 3")
	assert.Empty(t, r.Payload.Lodging)
}

func TestStayMeetsMinimum(t *testing.T) {
	a := NewStay(&fakeClient{lodging: lodgingN(3)}, 3)
	r := a.Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{})
	require.False(t, r.Failed)
	assert.Len(t, r.Payload.Lodging, 3)
	assert.Equal(t, "stay", r.Agent)
}

func TestStayErrorBecomesFailedResult(t *testing.T) {
	a := NewStay(&fakeClient{lodgingErr: errors.New("connection refused")}, 3)
	r := a.Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{})
	require.True(t, r.Failed)
	assert.Contains(t, r.Reason, "connection refused")
}

func TestRestaurantAnchorsOnStayOutput(t *testing.T) {
	f := &fakeClient{dining: []types.DiningOption{{ID: "d1"}}}
	slice := NewSlice("", map[string]types.StagePayload{
		StageStay: {Lodging: []types.LodgingOption{{ID: "l1", Address: "old town 1"}}},
	})
	r := NewRestaurant(f).Invoke(context.Background(), slice, types.PlanRequest{Destination: "Bern"})
	require.False(t, r.Failed)
	assert.Equal(t, "old town 1", f.diningNear)
}

func TestRestaurantFallsBackToDestination(t *testing.T) {
	f := &fakeClient{dining: []types.DiningOption{{ID: "d1"}}}
	NewRestaurant(f).Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{Destination: "Bern"})
	assert.Equal(t, "Bern", f.diningNear)
}

func TestRestaurantEmptyResultFails(t *testing.T) {
	r := NewRestaurant(&fakeClient{}).Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{})
	require.True(t, r.Failed)
	assert.Contains(t, r.Reason, "no dining options")
}

func TestPlannerMergesUpstreamPicks(t *testing.T) {
	f := &fakeClient{itinerary: []types.ItineraryDay{{Day: 1}}}
	b := types.BudgetBreakdown{Total: 100}
	slice := NewSlice("", map[string]types.StagePayload{
		StageStay:   {Lodging: lodgingN(1)},
		StageSearch: {Food: []types.DiningOption{{ID: "f1"}}},
		StageBudget: {Budget: &b},
	})
	r := NewPlanner(f).Invoke(context.Background(), slice, types.PlanRequest{})
	require.False(t, r.Failed)
	assert.Len(t, r.Payload.Itinerary, 1)
	assert.Len(t, f.itinPicks.Lodging, 1)
	assert.Len(t, f.itinPicks.Food, 1)
	require.NotNil(t, f.itinPicks.Budget)
	assert.Equal(t, 100.0, f.itinPicks.Budget.Total)
}

func TestPlannerEmptyItineraryFails(t *testing.T) {
	r := NewPlanner(&fakeClient{}).Invoke(context.Background(), NewSlice("", nil), types.PlanRequest{})
	require.True(t, r.Failed)
}
