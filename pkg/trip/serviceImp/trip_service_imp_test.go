package serviceImp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripmind/database"
	"tripmind/entities"
	grantRepoImp "tripmind/pkg/access/repositoryImp"
	accessSvc "tripmind/pkg/access/service"
	accessSvcImp "tripmind/pkg/access/serviceImp"
	"tripmind/pkg/ai"
	msgRepoImp "tripmind/pkg/message/repositoryImp"
	msgSvc "tripmind/pkg/message/service"
	msgSvcImp "tripmind/pkg/message/serviceImp"
	"tripmind/pkg/pipeline"
	"tripmind/pkg/plan/types"
	profRepoImp "tripmind/pkg/profile/repositoryImp"
	profSvcImp "tripmind/pkg/profile/serviceImp"
	tripRepoImp "tripmind/pkg/trip/repositoryImp"
	"tripmind/pkg/trip/service"
)

type env struct {
	svc  service.TripService
	gate accessSvc.AccessService
	msgs msgSvc.MessageService
}

func newEnv(t *testing.T) env {
	return newEnvWith(t, ai.NewMock(nil))
}

func newEnvWith(t *testing.T, client ai.Client) env {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "trips.db")), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	trips := tripRepoImp.New(db)
	users := profRepoImp.New(db)
	grants := grantRepoImp.New(db)
	for _, u := range []entities.User{
		{UserID: "alice", Email: "alice@example.com"},
		{UserID: "bob", Email: "bob@example.com"},
	} {
		u := u
		require.NoError(t, users.Upsert(&u))
	}

	gate := accessSvcImp.New(trips, users, grants, false)
	msgs := msgSvcImp.New(msgRepoImp.New(db), gate)

	sched, err := pipeline.NewScheduler(pipeline.DefaultGraph(client, 3), time.Second)
	require.NoError(t, err)

	return env{
		svc:  New(sched, trips, gate, msgs, profSvcImp.New(users), nil),
		gate: gate,
		msgs: msgs,
	}
}

func TestPlanCreatesTripAtVersionOne(t *testing.T) {
	e := newEnv(t)
	plan, version, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice",
		Prompt: "5 days near Zurich for 2 people",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	require.NotEmpty(t, plan.TripID)

	// Details extracted from the prompt drove the pipeline.
	assert.Equal(t, "Zurich", plan.Request.Destination)
	assert.Len(t, plan.Itinerary, 5)
	assert.Len(t, plan.Lodging, 4)
	assert.Greater(t, plan.Budget.Total, 0.0)

	latest, err := e.svc.Latest(plan.TripID, "alice")
	require.NoError(t, err)
	assert.Equal(t, plan.TripID, latest.TripID)
	assert.Equal(t, len(plan.Lodging), len(latest.Lodging))

	trips, err := e.svc.ListMine("alice")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, 1, trips[0].LatestVersion)
}

func TestPlanAppendsVersionsAndChatTurns(t *testing.T) {
	e := newEnv(t)
	first, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice", Prompt: "3 days in Bern",
	})
	require.NoError(t, err)

	_, version, err := e.svc.Plan(context.Background(), types.PlanRequest{
		TripID: first.TripID, UserID: "alice", Prompt: "make it 4 days in Bern instead",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	versions, err := e.svc.ListVersions(first.TripID, "alice")
	require.NoError(t, err)
	require.Len(t, versions, 2)

	v1, err := e.svc.Version(first.TripID, "alice", 1)
	require.NoError(t, err)
	assert.Len(t, v1.Itinerary, 3)
	latest, err := e.svc.Latest(first.TripID, "alice")
	require.NoError(t, err)
	assert.Len(t, latest.Itinerary, 4)

	// Two turns per run: the prompt and the assistant summary with the plan.
	log, err := e.msgs.List(first.TripID, "alice")
	require.NoError(t, err)
	require.Len(t, log, 4)
	assert.Equal(t, entities.RoleUser, log[0].Role)
	assert.Equal(t, "3 days in Bern", log[0].Content)
	assert.Equal(t, entities.RoleAssistant, log[1].Role)
	assert.NotEmpty(t, log[1].PlanJSON)
	assert.Equal(t, "make it 4 days in Bern instead", log[2].Content)
}

func TestPlanOnForeignTripRequiresEditGrant(t *testing.T) {
	e := newEnv(t)
	plan, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice", Prompt: "3 days in Bern",
	})
	require.NoError(t, err)

	_, _, err = e.svc.Plan(context.Background(), types.PlanRequest{
		TripID: plan.TripID, UserID: "bob", Prompt: "2 days in Bern",
	})
	require.ErrorIs(t, err, accessSvc.ErrDenied)

	_, err = e.gate.Invite(plan.TripID, "alice", "bob", entities.PermViewEdit)
	require.NoError(t, err)

	_, version, err := e.svc.Plan(context.Background(), types.PlanRequest{
		TripID: plan.TripID, UserID: "bob", Prompt: "2 days in Bern",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	versions, err := e.svc.ListVersions(plan.TripID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "bob", versions[1].ModifiedBy)
}

func TestPlanRejectsUnknownTripID(t *testing.T) {
	e := newEnv(t)
	_, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		TripID: "ghost", UserID: "alice", Prompt: "3 days in Bern",
	})
	require.ErrorIs(t, err, accessSvc.ErrDenied)
}

func TestReadsAreGated(t *testing.T) {
	e := newEnv(t)
	plan, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice", Prompt: "3 days in Bern",
	})
	require.NoError(t, err)

	_, err = e.svc.Latest(plan.TripID, "bob")
	require.ErrorIs(t, err, accessSvc.ErrDenied)
	_, err = e.svc.ListVersions(plan.TripID, "bob")
	require.ErrorIs(t, err, accessSvc.ErrDenied)

	_, err = e.gate.Invite(plan.TripID, "alice", "bob", entities.PermViewOnly)
	require.NoError(t, err)
	_, err = e.svc.Latest(plan.TripID, "bob")
	require.NoError(t, err)
}

type lodgingOutage struct{ ai.Client }

func (lodgingOutage) SearchLodging(context.Context, types.PlanRequest, string) ([]types.LodgingOption, error) {
	return nil, errors.New("upstream down")
}

func TestFatalRunPersistsNothing(t *testing.T) {
	e := newEnvWith(t, lodgingOutage{Client: ai.NewMock(nil)})
	_, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice", Prompt: "3 days in Bern",
	})
	require.ErrorIs(t, err, pipeline.ErrFatal)

	trips, err := e.svc.ListMine("alice")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestDeleteIsOwnerOnly(t *testing.T) {
	e := newEnv(t)
	plan, _, err := e.svc.Plan(context.Background(), types.PlanRequest{
		UserID: "alice", Prompt: "3 days in Bern",
	})
	require.NoError(t, err)

	require.ErrorIs(t, e.svc.Delete(plan.TripID, "bob"), accessSvc.ErrDenied)
	require.NoError(t, e.svc.Delete(plan.TripID, "alice"))

	_, err = e.svc.Latest(plan.TripID, "alice")
	require.ErrorIs(t, err, accessSvc.ErrDenied)
	require.ErrorIs(t, e.svc.Delete(plan.TripID, "alice"), accessSvc.ErrDenied)
}
