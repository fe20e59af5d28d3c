package entities

import "time"

// AccessGrant records a non-owner's permission on a trip. The owner never has
// a row; ownership is checked against trips.owner_user_id directly. At most
// one row per (trip, grantee) pair, re-inviting updates it.
type AccessGrant struct {
	TripID        string    `gorm:"primaryKey;size:64" json:"trip_id"`
	GranteeUserID string    `gorm:"primaryKey;size:64" json:"grantee_user_id"`
	Permission    string    `json:"permission"` // view_only|view_edit
	Status        string    `json:"status"`     // invited|accepted
	GrantedAt     time.Time `json:"granted_at"`
}

const (
	PermViewOnly = "view_only"
	PermViewEdit = "view_edit"

	GrantInvited  = "invited"
	GrantAccepted = "accepted"
)
