package repository

import (
	"errors"

	"tripmind/entities"
)

var ErrNotFound = errors.New("grant not found")

// GrantRepository persists AccessGrant rows. Upsert keeps the invariant of
// one row per (trip, grantee) pair.
type GrantRepository interface {
	Find(tripID, granteeUserID string) (*entities.AccessGrant, error)
	Upsert(g *entities.AccessGrant) error
	ListByTrip(tripID string) ([]entities.AccessGrant, error)
}
