package serviceImp

import (
	"errors"
	"time"

	"tripmind/entities"
	"tripmind/pkg/access/repository"
	"tripmind/pkg/access/service"
)

type ownerLookup interface {
	Owner(tripID string) (string, error)
}

type userLookup interface {
	FindByIdentifier(id string) (*entities.User, error)
}

// Gate is the single authorization decision point for trips, plans and
// message logs.
type Gate struct {
	trips  ownerLookup
	users  userLookup
	grants repository.GrantRepository

	// requireAccepted selects the strict sharing policy: an invited-but-not-
	// accepted grant no longer suffices for reads. Default policy lets
	// invited users read, matching how shared links behave in practice.
	requireAccepted bool
}

func New(trips ownerLookup, users userLookup, grants repository.GrantRepository, requireAccepted bool) service.AccessService {
	return &Gate{trips: trips, users: users, grants: grants, requireAccepted: requireAccepted}
}

func (g *Gate) Authorize(tripID, userID string, action service.Action) error {
	if tripID == "" || userID == "" {
		return service.ErrDenied
	}
	owner, err := g.trips.Owner(tripID)
	if err != nil {
		// Unknown trip and no access answer identically.
		return service.ErrDenied
	}
	if owner == userID {
		return nil
	}
	if action == service.ActionInvite {
		return service.ErrDenied
	}

	grant, err := g.grants.Find(tripID, userID)
	if err != nil {
		return service.ErrDenied
	}
	if g.requireAccepted && grant.Status != entities.GrantAccepted {
		return service.ErrDenied
	}
	if action == service.ActionWritePlan && grant.Permission != entities.PermViewEdit {
		return service.ErrDenied
	}
	return nil
}

// Invite creates or refreshes a grant. Only the owner may invite; the
// invitee must resolve to a known user (by user id or email). Re-inviting
// updates permission and timestamp but never resets an accepted status.
func (g *Gate) Invite(tripID, ownerUserID, invitee, permission string) (*entities.AccessGrant, error) {
	if err := g.Authorize(tripID, ownerUserID, service.ActionInvite); err != nil {
		return nil, err
	}
	if permission == "" {
		permission = entities.PermViewOnly
	}
	if permission != entities.PermViewOnly && permission != entities.PermViewEdit {
		return nil, service.ErrDenied
	}

	u, err := g.users.FindByIdentifier(invitee)
	if err != nil || u == nil {
		return nil, service.ErrUserNotFound
	}
	if u.UserID == ownerUserID {
		// The owner holds every permission implicitly; no row to write.
		return nil, service.ErrDenied
	}

	grant := &entities.AccessGrant{
		TripID:        tripID,
		GranteeUserID: u.UserID,
		Permission:    permission,
		Status:        entities.GrantInvited,
		GrantedAt:     time.Now().UTC(),
	}
	if existing, err := g.grants.Find(tripID, u.UserID); err == nil {
		grant.Status = existing.Status
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := g.grants.Upsert(grant); err != nil {
		return nil, err
	}
	return grant, nil
}

// Accept flips the caller's own grant from invited to accepted.
func (g *Gate) Accept(tripID, userID string) (*entities.AccessGrant, error) {
	grant, err := g.grants.Find(tripID, userID)
	if err != nil {
		return nil, service.ErrDenied
	}
	if grant.Status == entities.GrantAccepted {
		return grant, nil
	}
	grant.Status = entities.GrantAccepted
	if err := g.grants.Upsert(grant); err != nil {
		return nil, err
	}
	return grant, nil
}

func (g *Gate) ListGrants(tripID, userID string) ([]entities.AccessGrant, error) {
	if err := g.Authorize(tripID, userID, service.ActionReadPlan); err != nil {
		return nil, err
	}
	return g.grants.ListByTrip(tripID)
}
