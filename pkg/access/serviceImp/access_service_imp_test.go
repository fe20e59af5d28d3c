package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripmind/database"
	"tripmind/entities"
	grantRepoImp "tripmind/pkg/access/repositoryImp"
	"tripmind/pkg/access/service"
	userRepoImp "tripmind/pkg/profile/repositoryImp"
	tripRepoImp "tripmind/pkg/trip/repositoryImp"
)

type fixture struct {
	gate       service.AccessService
	strictGate service.AccessService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "access.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	trips := tripRepoImp.New(db)
	users := userRepoImp.New(db)
	grants := grantRepoImp.New(db)

	for _, u := range []entities.User{
		{UserID: "alice", Email: "alice@example.com"},
		{UserID: "bob", Email: "bob@example.com"},
	} {
		u := u
		require.NoError(t, users.Upsert(&u))
	}
	require.NoError(t, trips.Create(&entities.Trip{TripID: "t1", OwnerUserID: "alice"}, "{}"))

	return fixture{
		gate:       New(trips, users, grants, false),
		strictGate: New(trips, users, grants, true),
	}
}

func TestOwnerHoldsEveryAction(t *testing.T) {
	f := newFixture(t)
	for _, action := range []service.Action{
		service.ActionReadPlan, service.ActionWritePlan, service.ActionInvite,
		service.ActionReadMessages, service.ActionWriteMessages,
	} {
		assert.NoError(t, f.gate.Authorize("t1", "alice", action), string(action))
	}
}

func TestStrangerAndUnknownTripDenyIdentically(t *testing.T) {
	f := newFixture(t)
	errStranger := f.gate.Authorize("t1", "bob", service.ActionReadPlan)
	errUnknown := f.gate.Authorize("ghost", "bob", service.ActionReadPlan)
	require.ErrorIs(t, errStranger, service.ErrDenied)
	require.ErrorIs(t, errUnknown, service.ErrDenied)
	assert.Equal(t, errStranger.Error(), errUnknown.Error())
}

func TestAuthorizeRejectsEmptyIdentifiers(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.gate.Authorize("", "alice", service.ActionReadPlan), service.ErrDenied)
	assert.ErrorIs(t, f.gate.Authorize("t1", "", service.ActionReadPlan), service.ErrDenied)
}

func TestInvitedViewOnlyCanReadButNotWrite(t *testing.T) {
	f := newFixture(t)
	_, err := f.gate.Invite("t1", "alice", "bob", entities.PermViewOnly)
	require.NoError(t, err)

	assert.NoError(t, f.gate.Authorize("t1", "bob", service.ActionReadPlan))
	assert.NoError(t, f.gate.Authorize("t1", "bob", service.ActionReadMessages))
	assert.ErrorIs(t, f.gate.Authorize("t1", "bob", service.ActionWritePlan), service.ErrDenied)
	assert.ErrorIs(t, f.gate.Authorize("t1", "bob", service.ActionInvite), service.ErrDenied)
}

func TestViewEditGrantAllowsPlanWrites(t *testing.T) {
	f := newFixture(t)
	_, err := f.gate.Invite("t1", "alice", "bob", entities.PermViewEdit)
	require.NoError(t, err)
	assert.NoError(t, f.gate.Authorize("t1", "bob", service.ActionWritePlan))
}

func TestStrictPolicyRequiresAcceptance(t *testing.T) {
	f := newFixture(t)
	_, err := f.strictGate.Invite("t1", "alice", "bob", entities.PermViewOnly)
	require.NoError(t, err)

	assert.ErrorIs(t, f.strictGate.Authorize("t1", "bob", service.ActionReadPlan), service.ErrDenied)

	grant, err := f.strictGate.Accept("t1", "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.GrantAccepted, grant.Status)
	assert.NoError(t, f.strictGate.Authorize("t1", "bob", service.ActionReadPlan))
}

func TestInviteByEmail(t *testing.T) {
	f := newFixture(t)
	grant, err := f.gate.Invite("t1", "alice", "bob@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "bob", grant.GranteeUserID)
	assert.Equal(t, entities.PermViewOnly, grant.Permission) // default
	assert.Equal(t, entities.GrantInvited, grant.Status)
}

func TestInviteRules(t *testing.T) {
	f := newFixture(t)

	_, err := f.gate.Invite("t1", "bob", "alice", entities.PermViewOnly)
	assert.ErrorIs(t, err, service.ErrDenied, "non-owner cannot invite")

	_, err = f.gate.Invite("t1", "alice", "nobody", entities.PermViewOnly)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = f.gate.Invite("t1", "alice", "alice", entities.PermViewOnly)
	assert.ErrorIs(t, err, service.ErrDenied, "owner needs no grant")

	_, err = f.gate.Invite("t1", "alice", "bob", "superuser")
	assert.ErrorIs(t, err, service.ErrDenied, "unknown permission")
}

func TestReinvitePreservesAcceptedStatus(t *testing.T) {
	f := newFixture(t)
	_, err := f.gate.Invite("t1", "alice", "bob", entities.PermViewOnly)
	require.NoError(t, err)
	_, err = f.gate.Accept("t1", "bob")
	require.NoError(t, err)

	grant, err := f.gate.Invite("t1", "alice", "bob", entities.PermViewEdit)
	require.NoError(t, err)
	assert.Equal(t, entities.PermViewEdit, grant.Permission)
	assert.Equal(t, entities.GrantAccepted, grant.Status)

	grants, err := f.gate.ListGrants("t1", "alice")
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}

func TestAcceptWithoutInvite(t *testing.T) {
	f := newFixture(t)
	_, err := f.gate.Accept("t1", "bob")
	assert.ErrorIs(t, err, service.ErrDenied)
}

func TestListGrantsRequiresAccess(t *testing.T) {
	f := newFixture(t)
	_, err := f.gate.ListGrants("t1", "bob")
	assert.ErrorIs(t, err, service.ErrDenied)
}
