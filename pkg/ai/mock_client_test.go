package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmind/pkg/plan/types"
)

func TestMockLodgingIsDeterministicAndPriced(t *testing.T) {
	c := NewMock(nil)
	req := types.PlanRequest{Destination: "Bern", DurationDays: 4}

	opts, err := c.SearchLodging(context.Background(), req, "")
	require.NoError(t, err)
	require.Len(t, opts, 4)

	again, err := c.SearchLodging(context.Background(), req, "")
	require.NoError(t, err)
	assert.Equal(t, opts, again)

	for _, o := range opts {
		assert.Contains(t, o.ID, "stay-bern-")
		assert.Greater(t, o.PricePerNight, 0.0)
		assert.InDelta(t, o.PricePerNight*4, o.TotalPrice, 0.001)
	}
}

func TestMockDiningCoversDietaryNeeds(t *testing.T) {
	c := NewMock(nil)
	opts, err := c.SearchDining(context.Background(), types.PlanRequest{Destination: "Bern"}, "old town", "")
	require.NoError(t, err)
	require.Len(t, opts, 4)

	var vegTagged bool
	for _, o := range opts {
		assert.Equal(t, "old town", o.Address)
		if o.Cuisine == "vegetarian" {
			vegTagged = len(o.DietTags) > 0
		}
	}
	assert.True(t, vegTagged)
}

func TestMockTransportRecommendsTrain(t *testing.T) {
	c := NewMock(nil)
	opts, err := c.SearchTransport(context.Background(), types.PlanRequest{Destination: "Bern", HomeCity: "Paris"}, "old town")
	require.NoError(t, err)
	require.Len(t, opts, 3)

	var rec *types.TransportOption
	for i := range opts {
		if opts[i].Recommended {
			rec = &opts[i]
		}
	}
	require.NotNil(t, rec)
	assert.Equal(t, "train", rec.Mode)
	assert.Equal(t, "Paris", rec.Origin)
}

func TestMockItineraryCoversEveryDay(t *testing.T) {
	c := NewMock(nil)
	picks := types.StagePayload{
		Activities: []types.ExperienceOption{{Name: "walking tour"}, {Name: "hike"}},
		Food:       []types.DiningOption{{Name: "bistro"}},
	}
	days, err := c.BuildItinerary(context.Background(), types.PlanRequest{DurationDays: 5}, picks)
	require.NoError(t, err)
	require.Len(t, days, 5)

	assert.Equal(t, "arrival and check-in", days[0].Notes)
	assert.Equal(t, "checkout and departure", days[4].Notes)
	for _, d := range days {
		assert.NotEmpty(t, d.Activities)
		assert.NotEmpty(t, d.Meals)
	}
}

func TestMockItineraryDefaultsToThreeDays(t *testing.T) {
	c := NewMock(nil)
	days, err := c.BuildItinerary(context.Background(), types.PlanRequest{}, types.StagePayload{})
	require.NoError(t, err)
	assert.Len(t, days, 3)
}
