package service

import (
	"errors"

	"tripmind/entities"
)

// Action enumerates everything the gate can authorize.
type Action string

const (
	ActionReadPlan      Action = "read_plan"
	ActionWritePlan     Action = "write_plan" // trigger a pipeline run
	ActionInvite        Action = "invite"
	ActionReadMessages  Action = "read_messages"
	ActionWriteMessages Action = "write_messages"
)

var (
	// ErrDenied is deliberately uniform: a missing trip, a missing grant and
	// an insufficient grant all surface identically so callers cannot probe
	// for trip existence.
	ErrDenied       = errors.New("denied")
	ErrUserNotFound = errors.New("user not found")
)

type AccessService interface {
	Authorize(tripID, userID string, action Action) error
	Invite(tripID, ownerUserID, invitee, permission string) (*entities.AccessGrant, error)
	Accept(tripID, userID string) (*entities.AccessGrant, error)
	ListGrants(tripID, userID string) ([]entities.AccessGrant, error)
}
