package repository

import (
	"errors"

	"tripmind/entities"
)

var (
	ErrAlreadyExists = errors.New("trip already exists")
	ErrNotFound      = errors.New("not found")
)

// TripRepository is the version store. Create and Append are atomic: the
// trip's latest pointer and the backing version row commit together or not
// at all, and appends for one trip are serialized so version numbers are
// gapless and strictly increasing.
type TripRepository interface {
	Create(t *entities.Trip, planJSON string) error
	Append(tripID, planJSON, modifiedBy string) (int, error)
	Find(tripID string) (*entities.Trip, error)
	Owner(tripID string) (string, error)
	Version(tripID string, n int) (*entities.PlanVersion, error)
	ListVersions(tripID string) ([]entities.PlanVersion, error)
	ListByOwner(userID string) ([]entities.Trip, error)
	// Delete removes the trip with all its versions, grants and messages as
	// one unit.
	Delete(tripID string) error
}
