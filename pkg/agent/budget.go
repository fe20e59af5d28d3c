package agent

import (
	"context"
	"math"

	"tripmind/pkg/plan/types"
)

// BudgetAgent derives the cost breakdown arithmetically from the settled
// upstream stages. It needs no external call but satisfies the same adapter
// contract, so the scheduler treats it like any remote agent.
type BudgetAgent struct{}

func NewBudget() *BudgetAgent { return &BudgetAgent{} }

func (a *BudgetAgent) Name() string { return "budget" }

const miscBufferRate = 0.12

func (a *BudgetAgent) Invoke(_ context.Context, slice Slice, req types.PlanRequest) Result {
	stay, _ := slice.Stage(StageStay)
	search, _ := slice.Stage(StageSearch)

	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}
	days := req.DurationDays
	if days < 1 {
		days = 3
	}

	b := types.BudgetBreakdown{
		Lodging:     lodgingCost(stay.Lodging, days),
		Transport:   transportCost(search.Transport, travelers),
		Meals:       mealsCost(search.Food, days, travelers),
		Experiences: experiencesCost(search.Activities, travelers),
		Currency:    "USD",
	}
	subtotal := b.Lodging + b.Transport + b.Meals + b.Experiences
	b.Miscellaneous = round2(subtotal * miscBufferRate)
	b.Total = round2(subtotal + b.Miscellaneous)
	return ok(a.Name(), types.StagePayload{Budget: &b})
}

// lodgingCost prefers the selected option, else averages the candidates.
func lodgingCost(opts []types.LodgingOption, days int) float64 {
	if len(opts) == 0 {
		return 0
	}
	for _, o := range opts {
		if o.Selected {
			return round2(total(o, days))
		}
	}
	var sum float64
	for _, o := range opts {
		sum += total(o, days)
	}
	return round2(sum / float64(len(opts)))
}

func total(o types.LodgingOption, days int) float64 {
	if o.TotalPrice > 0 {
		return o.TotalPrice
	}
	return o.PricePerNight * float64(days)
}

// transportCost uses the recommended arrival option when one is marked,
// otherwise the cheapest, plus every local (non-arrival) segment.
func transportCost(opts []types.TransportOption, travelers int) float64 {
	if len(opts) == 0 {
		return 0
	}
	var arrival *types.TransportOption
	var local float64
	for i := range opts {
		o := &opts[i]
		if o.Mode == "transit" {
			local += o.Price * float64(travelers)
			continue
		}
		switch {
		case o.Recommended:
			arrival = o
		case arrival == nil || (!arrival.Recommended && o.Price < arrival.Price):
			arrival = o
		}
	}
	var sum float64
	if arrival != nil {
		sum = arrival.Price * float64(travelers)
	}
	return round2(sum + local)
}

const mealsPerDay = 3

func mealsCost(opts []types.DiningOption, days, travelers int) float64 {
	if len(opts) == 0 {
		return 0
	}
	var sum float64
	for _, o := range opts {
		sum += o.PricePerPerson
	}
	avg := sum / float64(len(opts))
	return round2(avg * mealsPerDay * float64(days) * float64(travelers))
}

func experiencesCost(opts []types.ExperienceOption, travelers int) float64 {
	var sum float64
	for _, o := range opts {
		if o.Price != nil {
			sum += *o.Price
		}
	}
	return round2(sum * float64(travelers))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
