package entities

import "time"

// User is the read-only traveler profile merged into plan requests before the
// pipeline runs. Profile data arrives from the frontend; the planner never
// writes it.
type User struct {
	ID             uint     `gorm:"primaryKey" json:"-"`
	UserID         string   `gorm:"uniqueIndex;size:64" json:"user_id"`
	Name           string   `json:"name"`
	Email          string   `gorm:"uniqueIndex" json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Country        string   `json:"country,omitempty"`
	HomeCity       string   `json:"home_city,omitempty"`
	DietPreference string   `json:"diet_preference,omitempty"` // comma-separated
	DefaultBudget  *float64 `json:"default_budget,omitempty"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
