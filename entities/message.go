package entities

import "time"

// Message is one turn in a trip's chat log. MessageID is monotonic per trip
// and is the ordering; it is assigned under a per-trip lock so concurrent
// appends cannot duplicate or skip ids.
type Message struct {
	TripID       string    `gorm:"primaryKey;size:64" json:"trip_id"`
	MessageID    int       `gorm:"primaryKey;autoIncrement:false" json:"message_id"`
	SenderUserID string    `json:"sender_user_id"`
	Role         string    `json:"role"` // user|assistant
	Content      string    `gorm:"type:text" json:"content"`
	PlanJSON     string    `gorm:"type:text" json:"-"` // optional attached CompositePlan
	CreatedAt    time.Time `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
