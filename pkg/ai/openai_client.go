package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tripmind/pkg/plan/types"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 45 * time.Second},
	}
}

const systemPrompt = "You are a travel planning assistant. Reply ONLY with valid JSON matching the requested schema, no prose."

func (c *openAI) chat(ctx context.Context, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, "POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions: status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return stripFences(content), nil
}

// stripFences removes a ```json ... ``` wrapper some models insist on.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func (c *openAI) SearchLodging(ctx context.Context, req types.PlanRequest, kbCtx string) ([]types.LodgingOption, error) {
	raw, err := c.chat(ctx, renderLodgingPrompt(req, kbCtx))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Lodging []types.LodgingOption `json:"lodging"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse lodging: %w", err)
	}
	return payload.Lodging, nil
}

func (c *openAI) SearchDining(ctx context.Context, req types.PlanRequest, near, kbCtx string) ([]types.DiningOption, error) {
	raw, err := c.chat(ctx, renderDiningPrompt(req, near, kbCtx))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Restaurants []types.DiningOption `json:"restaurants"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse restaurants: %w", err)
	}
	return payload.Restaurants, nil
}

func (c *openAI) SearchTransport(ctx context.Context, req types.PlanRequest, near string) ([]types.TransportOption, error) {
	raw, err := c.chat(ctx, renderTransportPrompt(req, near))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Options []types.TransportOption `json:"options"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse transport: %w", err)
	}
	return payload.Options, nil
}

func (c *openAI) SearchExperiences(ctx context.Context, req types.PlanRequest, near, kbCtx string) ([]types.ExperienceOption, error) {
	raw, err := c.chat(ctx, renderExperiencesPrompt(req, near, kbCtx))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Experiences []types.ExperienceOption `json:"experiences"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse experiences: %w", err)
	}
	return payload.Experiences, nil
}

func (c *openAI) BuildItinerary(ctx context.Context, req types.PlanRequest, picks types.StagePayload) ([]types.ItineraryDay, error) {
	raw, err := c.chat(ctx, renderItineraryPrompt(req, picks))
	if err != nil {
		return nil, err
	}
	var payload struct {
		Days []types.ItineraryDay `json:"days"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse itinerary: %w", err)
	}
	return payload.Days, nil
}

func renderTripDetails(req types.PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip description: %s\n", req.Prompt)
	if req.Destination != "" {
		fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	}
	if req.StartDate != "" {
		fmt.Fprintf(&b, "Start date: %s\n", req.StartDate)
	}
	if req.DurationDays > 0 {
		fmt.Fprintf(&b, "Duration: %d days\n", req.DurationDays)
	}
	if req.BudgetUSD > 0 {
		fmt.Fprintf(&b, "Budget: $%.2f total\n", req.BudgetUSD)
	}
	fmt.Fprintf(&b, "Travelers: %d\n", max(req.Travelers, 1))
	if req.HomeCity != "" {
		fmt.Fprintf(&b, "Traveling from: %s\n", req.HomeCity)
	}
	if len(req.DietPrefs) > 0 {
		fmt.Fprintf(&b, "Dietary preferences: %s\n", strings.Join(req.DietPrefs, ", "))
	}
	return b.String()
}

func renderLodgingPrompt(req types.PlanRequest, kbCtx string) string {
	return fmt.Sprintf(`Find hotel/apartment options for this trip.
%s
Return JSON: {"lodging":[{"id":"...","title":"...","address":"...","price_per_night":120,"total_price":600,"rating":4.5,"amenities":["wifi"],"booking_url":"..."}]}
Give at least 3 realistic options sorted by fit.

DESTINATION NOTES:
%s`, renderTripDetails(req), kbCtx)
}

func renderDiningPrompt(req types.PlanRequest, near, kbCtx string) string {
	return fmt.Sprintf(`Find restaurants near the chosen accommodation for this trip.
%sAccommodation area: %s
Return JSON: {"restaurants":[{"id":"...","name":"...","cuisine":"...","address":"...","price_per_person":35,"rating":4.4,"diet_tags":["vegetarian"]}]}
Respect the dietary preferences above.

DESTINATION NOTES:
%s`, renderTripDetails(req), near, kbCtx)
}

func renderTransportPrompt(req types.PlanRequest, near string) string {
	return fmt.Sprintf(`Find transport options to reach the destination and get around.
%sAccommodation area: %s
Return JSON: {"options":[{"id":"...","mode":"flight|train|bus|car|transit","origin":"...","destination":"...","price":240,"duration_minutes":90,"provider":"...","carbon_kg":80,"recommended":true,"reason":"..."}]}
Mark exactly one arrival option recommended and say why.`, renderTripDetails(req), near)
}

func renderExperiencesPrompt(req types.PlanRequest, near, kbCtx string) string {
	return fmt.Sprintf(`Find local activities and experiences for this trip.
%sAccommodation area: %s
Return JSON: {"experiences":[{"id":"...","name":"...","category":"hiking|food|culture|nightlife","address":"...","price":40,"duration_hours":3,"rating":4.6}]}

DESTINATION NOTES:
%s`, renderTripDetails(req), near, kbCtx)
}

func renderItineraryPrompt(req types.PlanRequest, picks types.StagePayload) string {
	picksJSON, _ := json.Marshal(picks)
	return fmt.Sprintf(`Build a day-by-day itinerary from the options already selected for this trip.
%s
SELECTED OPTIONS (JSON): %s
Return JSON: {"days":[{"day":1,"date":"2025-06-01","activities":["..."],"meals":["..."],"notes":"..."}]}
Cover every day of the trip, no day without at least one activity and one meal.`, renderTripDetails(req), picksJSON)
}
