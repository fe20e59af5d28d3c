package pipeline

import (
	"fmt"
	"strings"
	"time"

	"tripmind/pkg/agent"
	"tripmind/pkg/plan/types"
)

// Aggregate folds the settled stage payloads into one CompositePlan. Every
// category is present regardless of agent outcomes; failures surface as
// empty collections, never as missing keys or nils.
func Aggregate(req types.PlanRequest, outputs map[string]types.StagePayload) *types.CompositePlan {
	stay := outputs[agent.StageStay]
	search := outputs[agent.StageSearch]
	budget := outputs[agent.StageBudget]
	planner := outputs[agent.StagePlanner]

	plan := &types.CompositePlan{
		TripID:     req.TripID,
		Request:    req,
		Status:     types.StatusDraft,
		Lodging:    emptyNotNil(stay.Lodging),
		Food:       emptyNotNil(search.Food),
		Transport:  emptyNotNil(search.Transport),
		Activities: emptyNotNil(search.Activities),
		Itinerary:  emptyNotNil(planner.Itinerary),
		CreatedAt:  time.Now().UTC(),
	}
	if budget.Budget != nil {
		plan.Budget = *budget.Budget
	}
	applySelections(plan, req.SelectedOptionIDs)
	return plan
}

func emptyNotNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func applySelections(plan *types.CompositePlan, ids []string) {
	if len(ids) == 0 {
		return
	}
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	for i := range plan.Lodging {
		plan.Lodging[i].Selected = selected[plan.Lodging[i].ID]
	}
}

// Summarize derives the human-readable paragraph appended to the message log
// as the assistant's turn. Deterministic over the plan contents: counts for
// populated categories, total budget when present.
func Summarize(plan *types.CompositePlan) string {
	dest := plan.Request.Destination
	if dest == "" {
		dest = "your trip"
	}
	var parts []string
	add := func(n int, singular, plural string) {
		if n == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", singular))
		} else if n > 1 {
			parts = append(parts, fmt.Sprintf("%d %s", n, plural))
		}
	}
	add(len(plan.Lodging), "lodging option", "lodging options")
	add(len(plan.Food), "restaurant", "restaurants")
	add(len(plan.Transport), "transport option", "transport options")
	add(len(plan.Activities), "activity", "activities")

	var b strings.Builder
	if plan.Request.DurationDays > 0 {
		fmt.Fprintf(&b, "Planned a %d-day trip to %s", plan.Request.DurationDays, dest)
	} else {
		fmt.Fprintf(&b, "Planned a trip to %s", dest)
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, " with %s", strings.Join(parts, ", "))
	}
	b.WriteString(".")
	if n := len(plan.Itinerary); n > 0 {
		fmt.Fprintf(&b, " The itinerary covers %d day(s).", n)
	} else {
		b.WriteString(" No day-by-day itinerary could be generated for this version.")
	}
	if plan.Budget.Total > 0 {
		fmt.Fprintf(&b, " Estimated budget: %.2f %s.", plan.Budget.Total, plan.Budget.Currency)
	}
	return b.String()
}
