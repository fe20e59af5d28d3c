package serviceImp

import (
	"regexp"
	"strconv"
	"strings"

	"tripmind/pkg/plan/types"
)

var (
	durationRe  = regexp.MustCompile(`(?i)(\d+)[\s-]*(?:day|days|night|nights)`)
	travelersRe = regexp.MustCompile(`(?i)(\d+)\s*(?:people|persons|travellers|travelers|adults|friends|of us)`)
	budgetRe    = regexp.MustCompile(`(?i)(?:\$|usd\s*|budget(?:\s+of)?\s+\$?)(\d[\d,]*)`)
	// Destination is the capitalized run after a locative preposition,
	// e.g. "a week in New York" or "somewhere near Lake Como".
	destinationRe = regexp.MustCompile(`(?:\b(?:in|to|near|around|at)\s+)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`)
)

// ExtractTripDetails fills the structured request fields from the free-text
// prompt. Explicitly provided fields always win over extracted ones.
func ExtractTripDetails(req *types.PlanRequest) {
	if req.DurationDays == 0 {
		if m := durationRe.FindStringSubmatch(req.Prompt); m != nil {
			req.DurationDays, _ = strconv.Atoi(m[1])
		}
	}
	if req.Travelers == 0 {
		if m := travelersRe.FindStringSubmatch(req.Prompt); m != nil {
			req.Travelers, _ = strconv.Atoi(m[1])
		}
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}
	if req.BudgetUSD == 0 {
		if m := budgetRe.FindStringSubmatch(req.Prompt); m != nil {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
				req.BudgetUSD = v
			}
		}
	}
	if req.Destination == "" {
		if m := destinationRe.FindStringSubmatch(req.Prompt); m != nil {
			req.Destination = strings.TrimSpace(m[1])
		}
	}
}
