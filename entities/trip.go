package entities

import "time"

// Trip is the one durable record per trip. LatestVersion/LatestJSON always
// mirror the highest-numbered PlanVersion row; both are written in the same
// transaction that inserts the version.
type Trip struct {
	TripID        string `gorm:"primaryKey;size:64" json:"trip_id"`
	OwnerUserID   string `gorm:"index" json:"owner_user_id"`
	LatestVersion int    `json:"latest_version"`
	LatestJSON    string `gorm:"type:text" json:"-"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PlanVersion is append-only; rows are never updated or deleted except by
// whole-trip deletion.
type PlanVersion struct {
	TripID        string `gorm:"primaryKey;size:64" json:"trip_id"`
	VersionNumber int    `gorm:"primaryKey;autoIncrement:false" json:"version_number"`
	ModifiedBy    string `json:"modified_by"`
	PlanJSON      string `gorm:"type:text" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
