package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/pkg/agent"
	"tripmind/pkg/plan/types"
)

func TestAggregateAlwaysPopulatesCategories(t *testing.T) {
	plan := Aggregate(types.PlanRequest{TripID: "t1", UserID: "u"}, map[string]types.StagePayload{})
	require.NotNil(t, plan)

	assert.NotNil(t, plan.Lodging)
	assert.NotNil(t, plan.Food)
	assert.NotNil(t, plan.Transport)
	assert.NotNil(t, plan.Activities)
	assert.NotNil(t, plan.Itinerary)
	assert.Empty(t, plan.Lodging)
	assert.Equal(t, types.StatusDraft, plan.Status)
	assert.Equal(t, "t1", plan.TripID)
}

func TestAggregateAppliesSelections(t *testing.T) {
	outputs := map[string]types.StagePayload{
		agent.StageStay: {Lodging: []types.LodgingOption{
			{ID: "stay-1"}, {ID: "stay-2", Selected: true}, {ID: "stay-3"},
		}},
	}
	plan := Aggregate(types.PlanRequest{SelectedOptionIDs: []string{"stay-3"}}, outputs)

	assert.False(t, plan.Lodging[0].Selected)
	// Explicit selection overrides whatever the payload carried.
	assert.False(t, plan.Lodging[1].Selected)
	assert.True(t, plan.Lodging[2].Selected)
}

func TestAggregateCopiesBudget(t *testing.T) {
	b := types.BudgetBreakdown{Total: 1234.5, Currency: "USD"}
	plan := Aggregate(types.PlanRequest{}, map[string]types.StagePayload{
		agent.StageBudget: {Budget: &b},
	})
	assert.Equal(t, 1234.5, plan.Budget.Total)
}

func TestSummarize(t *testing.T) {
	plan := &types.CompositePlan{
		Request: types.PlanRequest{Destination: "Bern", DurationDays: 3},
		Lodging: []types.LodgingOption{{}, {}},
		Food:    []types.DiningOption{{}},
		Itinerary: []types.ItineraryDay{
			{Day: 1}, {Day: 2}, {Day: 3},
		},
		Budget: types.BudgetBreakdown{Total: 900, Currency: "USD"},
	}
	got := Summarize(plan)
	assert.Contains(t, got, "3-day trip to Bern")
	assert.Contains(t, got, "2 lodging options")
	assert.Contains(t, got, "1 restaurant")
	assert.Contains(t, got, "covers 3 day(s)")
	assert.Contains(t, got, "900.00 USD")
}

func TestSummarizeWithoutItinerary(t *testing.T) {
	plan := &types.CompositePlan{Request: types.PlanRequest{}}
	got := Summarize(plan)
	assert.Contains(t, got, "your trip")
	assert.Contains(t, got, "No day-by-day itinerary")
}
