package types

import "time"

// PlanRequest is one planning invocation. TripID empty means "new trip";
// set means "append a new version to an existing trip the caller can edit".
type PlanRequest struct {
	TripID            string   `json:"trip_id,omitempty"`
	UserID            string   `json:"user_id"`
	Prompt            string   `json:"prompt"`
	Destination       string   `json:"destination,omitempty"`
	StartDate         string   `json:"start_date,omitempty"` // YYYY-MM-DD
	DurationDays      int      `json:"duration_days,omitempty"`
	Travelers         int      `json:"travelers,omitempty"`
	BudgetUSD         float64  `json:"budget_usd,omitempty"`
	HomeCity          string   `json:"home_city,omitempty"`
	DietPrefs         []string `json:"diet_prefs,omitempty"`
	SelectedOptionIDs []string `json:"selected_option_ids,omitempty"`
}

type LodgingOption struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"price_per_night"`
	TotalPrice    float64  `json:"total_price"`
	Rating        *float64 `json:"rating,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	BookingURL    string   `json:"booking_url,omitempty"`
	Selected      bool     `json:"selected,omitempty"`
}

type DiningOption struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Cuisine        string   `json:"cuisine"`
	Address        string   `json:"address"`
	PricePerPerson float64  `json:"price_per_person"`
	Rating         *float64 `json:"rating,omitempty"`
	DietTags       []string `json:"diet_tags,omitempty"`
}

type TransportOption struct {
	ID              string   `json:"id"`
	Mode            string   `json:"mode"` // flight|train|bus|car|transit
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Provider        string   `json:"provider,omitempty"`
	CarbonKg        *float64 `json:"carbon_kg,omitempty"`
	Recommended     bool     `json:"recommended,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

type ExperienceOption struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"` // hiking|food|culture|...
	Address       string   `json:"address"`
	Price         *float64 `json:"price,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	Date       string   `json:"date,omitempty"` // YYYY-MM-DD
	Activities []string `json:"activities"`
	Meals      []string `json:"meals"`
	Notes      string   `json:"notes,omitempty"`
}

// BudgetBreakdown's zero value doubles as the "agent failed" empty budget.
type BudgetBreakdown struct {
	Lodging       float64 `json:"lodging"`
	Transport     float64 `json:"transport"`
	Meals         float64 `json:"meals"`
	Experiences   float64 `json:"experiences"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

const (
	StatusDraft     = "draft"
	StatusFinalized = "finalized"
)

// CompositePlan is the merged artifact of one pipeline run. Every category is
// always present; an agent failure leaves its category empty, never absent.
type CompositePlan struct {
	TripID     string             `json:"trip_id"`
	Request    PlanRequest        `json:"request"`
	Status     string             `json:"status"` // draft|finalized
	Lodging    []LodgingOption    `json:"lodging"`
	Food       []DiningOption     `json:"food"`
	Transport  []TransportOption  `json:"transport"`
	Activities []ExperienceOption `json:"activities"`
	Budget     BudgetBreakdown    `json:"budget"`
	Itinerary  []ItineraryDay     `json:"itinerary"`
	CreatedAt  time.Time          `json:"created_at"`
}

// StagePayload is the pre-merged output of one settled stage. Agents sharing
// a stage each fill their own category; the scheduler merges them into a
// single payload before any downstream stage may read it.
type StagePayload struct {
	Lodging    []LodgingOption    `json:"lodging,omitempty"`
	Food       []DiningOption     `json:"food,omitempty"`
	Transport  []TransportOption  `json:"transport,omitempty"`
	Activities []ExperienceOption `json:"activities,omitempty"`
	Budget     *BudgetBreakdown   `json:"budget,omitempty"`
	Itinerary  []ItineraryDay     `json:"itinerary,omitempty"`
}

// Merge folds another payload into p. Category slices are disjoint across
// agents of one stage, so appends never interleave a single category.
func (p *StagePayload) Merge(o StagePayload) {
	p.Lodging = append(p.Lodging, o.Lodging...)
	p.Food = append(p.Food, o.Food...)
	p.Transport = append(p.Transport, o.Transport...)
	p.Activities = append(p.Activities, o.Activities...)
	if o.Budget != nil {
		p.Budget = o.Budget
	}
	p.Itinerary = append(p.Itinerary, o.Itinerary...)
}
