package ai

import (
	"context"
	"fmt"
	"strings"

	"tripmind/pkg/plan/types"
	"tripmind/pkg/rates"
)

// mockClient produces deterministic offline plans priced from the rate table.
// Used when no LLM endpoint is configured, and by tests.
type mockClient struct {
	rates *rates.Table
}

func NewMock(t *rates.Table) Client {
	if t == nil {
		t = rates.Default()
	}
	return &mockClient{rates: t}
}

func (m *mockClient) dest(req types.PlanRequest) string {
	if req.Destination != "" {
		return req.Destination
	}
	return "your destination"
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func nights(req types.PlanRequest) int {
	if req.DurationDays > 0 {
		return req.DurationDays
	}
	return 3
}

func ptr(v float64) *float64 { return &v }

func (m *mockClient) SearchLodging(_ context.Context, req types.PlanRequest, _ string) ([]types.LodgingOption, error) {
	dest := m.dest(req)
	base := m.rates.PerDay("lodging", dest)
	n := nights(req)
	kinds := []struct {
		name   string
		factor float64
		rating float64
	}{
		{"Central Hotel", 1.0, 4.4},
		{"Old Town Apartment", 0.85, 4.6},
		{"Boutique Guesthouse", 1.2, 4.8},
		{"Budget Hostel", 0.45, 4.1},
	}
	out := make([]types.LodgingOption, 0, len(kinds))
	for i, k := range kinds {
		pn := base * k.factor
		out = append(out, types.LodgingOption{
			ID:            fmt.Sprintf("stay-%s-%d", slug(dest), i+1),
			Title:         fmt.Sprintf("%s %s", dest, k.name),
			Address:       fmt.Sprintf("%s city center", dest),
			PricePerNight: pn,
			TotalPrice:    pn * float64(n),
			Rating:        ptr(k.rating),
			Amenities:     []string{"wifi", "breakfast"},
		})
	}
	return out, nil
}

func (m *mockClient) SearchDining(_ context.Context, req types.PlanRequest, near, _ string) ([]types.DiningOption, error) {
	dest := m.dest(req)
	base := m.rates.PerDay("meals", dest) / 3 // per meal
	cuisines := []string{"local", "italian", "asian", "vegetarian"}
	out := make([]types.DiningOption, 0, len(cuisines))
	for i, cz := range cuisines {
		tags := []string{}
		if cz == "vegetarian" {
			tags = append(tags, "vegetarian", "vegan")
		}
		out = append(out, types.DiningOption{
			ID:             fmt.Sprintf("eat-%s-%d", slug(dest), i+1),
			Name:           fmt.Sprintf("%s %s kitchen", dest, cz),
			Cuisine:        cz,
			Address:        near,
			PricePerPerson: base * (0.8 + 0.2*float64(i)),
			Rating:         ptr(4.2 + 0.1*float64(i)),
			DietTags:       tags,
		})
	}
	return out, nil
}

func (m *mockClient) SearchTransport(_ context.Context, req types.PlanRequest, near string) ([]types.TransportOption, error) {
	dest := m.dest(req)
	origin := req.HomeCity
	if origin == "" {
		origin = "home"
	}
	base := m.rates.PerDay("transport", dest)
	out := []types.TransportOption{
		{
			ID: "go-" + slug(dest) + "-flight", Mode: "flight",
			Origin: origin, Destination: dest,
			Price: base * 3.5, DurationMinutes: 120, Provider: "regional air",
			CarbonKg: ptr(180.0),
		},
		{
			ID: "go-" + slug(dest) + "-train", Mode: "train",
			Origin: origin, Destination: dest,
			Price: base * 1.5, DurationMinutes: 300, Provider: "national rail",
			CarbonKg: ptr(24.0), Recommended: true,
			Reason: "best price/carbon balance for this distance",
		},
		{
			ID: "go-" + slug(dest) + "-transit", Mode: "transit",
			Origin: dest, Destination: near,
			Price: base * 0.1, DurationMinutes: 25, Provider: "local transit",
		},
	}
	return out, nil
}

func (m *mockClient) SearchExperiences(_ context.Context, req types.PlanRequest, near, _ string) ([]types.ExperienceOption, error) {
	dest := m.dest(req)
	base := m.rates.PerDay("experience", dest)
	kinds := []struct {
		name, cat string
		factor    float64
		hours     float64
	}{
		{"old town walking tour", "culture", 0.5, 2.5},
		{"lake panorama hike", "hiking", 0.2, 5},
		{"food market tasting", "food", 0.9, 3},
		{"museum day pass", "culture", 0.7, 4},
	}
	out := make([]types.ExperienceOption, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, types.ExperienceOption{
			ID:            fmt.Sprintf("do-%s-%d", slug(dest), i+1),
			Name:          fmt.Sprintf("%s %s", dest, k.name),
			Category:      k.cat,
			Address:       near,
			Price:         ptr(base * k.factor),
			DurationHours: ptr(k.hours),
			Rating:        ptr(4.3 + 0.1*float64(i)),
		})
	}
	return out, nil
}

func (m *mockClient) BuildItinerary(_ context.Context, req types.PlanRequest, picks types.StagePayload) ([]types.ItineraryDay, error) {
	n := nights(req)
	days := make([]types.ItineraryDay, 0, n)
	for d := 1; d <= n; d++ {
		var acts, meals []string
		if len(picks.Activities) > 0 {
			acts = append(acts, picks.Activities[(d-1)%len(picks.Activities)].Name)
		} else {
			acts = append(acts, "free exploration")
		}
		if len(picks.Food) > 0 {
			meals = append(meals, "dinner at "+picks.Food[(d-1)%len(picks.Food)].Name)
		} else {
			meals = append(meals, "dinner near the accommodation")
		}
		day := types.ItineraryDay{Day: d, Activities: acts, Meals: meals}
		switch d {
		case 1:
			day.Notes = "arrival and check-in"
		case n:
			day.Notes = "checkout and departure"
		}
		days = append(days, day)
	}
	return days, nil
}
