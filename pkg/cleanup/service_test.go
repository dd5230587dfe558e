package cleanup

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/state"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
)

func testConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		StatusRetention:  10,
		AgentErrorWindow: 30 * 24 * time.Hour,
		EventWindow:      7 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

func newService(client *ent.Client) (*Service, *services.StatusService, *services.EventService) {
	engine := state.NewEngine(client, nil, state.Options{})
	statusService := services.NewStatusService(client, engine, nil, 10)
	agentService := services.NewAgentService(client, engine, nil)
	eventService := services.NewEventService(client)
	return NewService(testConfig(), statusService, agentService, eventService), statusService, eventService
}

// seedTask builds the minimal project → hash list → campaign → attack →
// task chain a status frame needs.
func seedTask(t *testing.T, client *ent.Client, st task.State) *ent.Task {
	t.Helper()
	ctx := context.Background()

	p := client.Project.Create().
		SetName("retention-" + uuid.NewString()).
		SaveX(ctx)
	hl := client.HashList.Create().
		SetProjectID(p.ID).
		SetName("dump-" + uuid.NewString()).
		SetHashTypeID(1000).
		SetItemCount(10).
		SetUncrackedCount(10).
		SaveX(ctx)
	c := client.Campaign.Create().
		SetProjectID(p.ID).
		SetHashListID(hl.ID).
		SetName("audit-" + uuid.NewString()).
		SetState(campaign.StateActive).
		SaveX(ctx)
	atk := client.Attack.Create().
		SetCampaignID(c.ID).
		SetAttackMode(attack.AttackModeMask).
		SetMask("?d?d?d?d").
		SetState(attack.StateRunning).
		SetTotalKeyspace(10000).
		SaveX(ctx)
	return client.Task.Create().
		SetAttackID(atk.ID).
		SetState(st).
		SetKeyspaceOffset(0).
		SetKeyspaceLimit(10000).
		SaveX(ctx)
}

func seedFrames(t *testing.T, client *ent.Client, taskID, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < n; i++ {
		client.HashcatStatus.Create().
			SetTaskID(taskID).
			SetSession("hashcat").
			SetStatusCode(3).
			SetProgressDone(int64(i * 100)).
			SetProgressTotal(10000).
			SetReceivedAt(base.Add(time.Duration(i) * time.Minute)).
			SaveX(ctx)
	}
}

func TestService_TrimsTerminalStatusHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, statusService, _ := newService(client.Client)
	ctx := context.Background()

	failed := seedTask(t, client.Client, task.StateFailed)
	seedFrames(t, client.Client, failed.ID, 15)

	svc.runAll(ctx)

	frames, err := statusService.History(ctx, failed.ID)
	require.NoError(t, err)
	assert.Len(t, frames, 10, "terminal task history should be trimmed to retention")

	// The newest frames survive.
	assert.Equal(t, int64(1400), frames[0].ProgressDone)
}

func TestService_PreservesRunningTaskHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, statusService, _ := newService(client.Client)
	ctx := context.Background()

	running := seedTask(t, client.Client, task.StateRunning)
	seedFrames(t, client.Client, running.ID, 15)

	svc.runAll(ctx)

	frames, err := statusService.History(ctx, running.ID)
	require.NoError(t, err)
	assert.Len(t, frames, 15, "live task history is ingest's business, not the cleanup loop's")
}

func TestService_PurgesOldAgentErrors(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newService(client.Client)
	ctx := context.Background()

	a := client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-agent/6.2.6").
		SaveX(ctx)

	client.AgentError.Create().
		SetAgentID(a.ID).
		SetSeverity(agenterror.SeverityWarning).
		SetMessage("GPU temperature high").
		SetRecordedAt(time.Now().Add(-40 * 24 * time.Hour)).
		SaveX(ctx)
	client.AgentError.Create().
		SetAgentID(a.ID).
		SetSeverity(agenterror.SeverityInfo).
		SetMessage("hashcat restarted").
		SaveX(ctx)

	svc.runAll(ctx)

	remaining := client.AgentError.Query().
		Where(agenterror.AgentIDEQ(a.ID)).
		AllX(ctx)
	require.Len(t, remaining, 1, "only the error inside the window survives")
	assert.Equal(t, "hashcat restarted", remaining[0].Message)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, eventService := newService(client.Client)
	ctx := context.Background()

	channel := fmt.Sprintf("campaign:%s", uuid.NewString())
	client.Event.Create().
		SetChannel(channel).
		SetEventType("campaign.status").
		SetPayload(map[string]any{"state": "active"}).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		SaveX(ctx)
	client.Event.Create().
		SetChannel(channel).
		SetEventType("campaign.status").
		SetPayload(map[string]any{"state": "completed"}).
		SaveX(ctx)

	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc, _, _ := newService(client.Client)

	svc.Start(context.Background())
	svc.Stop()

	// Stop again is a no-op rather than a panic.
	svc.Stop()
}
