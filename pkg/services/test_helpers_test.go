package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/state"
)

// newEngine builds a broadcast-less state engine for service tests.
func newEngine(client *ent.Client) *state.Engine {
	return state.NewEngine(client, nil, state.Options{})
}

func seedProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	return client.Project.Create().
		SetName("red-team-" + uuid.NewString()).
		SaveX(context.Background())
}

// seedHashList creates a list with the given counters already set. Tests
// that need real items create them through HashListService instead.
func seedHashList(t *testing.T, client *ent.Client, projectID int, items, uncracked int64) *ent.HashList {
	t.Helper()
	return client.HashList.Create().
		SetProjectID(projectID).
		SetName("ntlm-dump-" + uuid.NewString()).
		SetHashTypeID(1000).
		SetItemCount(items).
		SetUncrackedCount(uncracked).
		SaveX(context.Background())
}

// seedWordList creates a shared word list when projectID is zero, otherwise
// one scoped to that project.
func seedWordList(t *testing.T, client *ent.Client, projectID int, lines int64) *ent.Resource {
	t.Helper()
	create := client.Resource.Create().
		SetName("rockyou-" + uuid.NewString()).
		SetFileName("rockyou.txt").
		SetFileHandle("resources/" + uuid.NewString() + "/rockyou.txt").
		SetResourceType(resource.ResourceTypeWordList).
		SetByteSize(1 << 20)
	if projectID != 0 {
		create.AddProjectIDs(projectID)
	}
	if lines >= 0 {
		create.SetLineCount(lines)
	}
	return create.SaveX(context.Background())
}

func seedMaskList(t *testing.T, client *ent.Client, projectID int, lines int64) *ent.Resource {
	t.Helper()
	create := client.Resource.Create().
		SetName("masks-" + uuid.NewString()).
		SetFileName("common.hcmask").
		SetFileHandle("resources/" + uuid.NewString() + "/common.hcmask").
		SetResourceType(resource.ResourceTypeMaskList).
		SetByteSize(1 << 10)
	if projectID != 0 {
		create.AddProjectIDs(projectID)
	}
	if lines >= 0 {
		create.SetLineCount(lines)
	}
	return create.SaveX(context.Background())
}

func seedActiveCampaign(t *testing.T, client *ent.Client, projectID, hashListID int) *ent.Campaign {
	t.Helper()
	return client.Campaign.Create().
		SetProjectID(projectID).
		SetHashListID(hashListID).
		SetName("quarterly-audit-" + uuid.NewString()).
		SetState(campaign.StateActive).
		SaveX(context.Background())
}

// seedRunningAttack is a dictionary attack mid-flight: keyspace planned
// and fully dispatched.
func seedRunningAttack(t *testing.T, client *ent.Client, campaignID, wordListID int, total int64) *ent.Attack {
	t.Helper()
	return client.Attack.Create().
		SetCampaignID(campaignID).
		SetAttackMode(attack.AttackModeDictionary).
		SetWordListID(wordListID).
		SetState(attack.StateRunning).
		SetTotalKeyspace(total).
		SetDispatchedKeyspace(total).
		SetStartTime(time.Now()).
		SaveX(context.Background())
}

func seedActiveAgent(t *testing.T, client *ent.Client, projectIDs ...int) *ent.Agent {
	t.Helper()
	return client.Agent.Create().
		SetHostName("rig-" + uuid.NewString()).
		SetClientSignature("hashcat-agent/6.2.6").
		SetOperatingSystem("linux").
		SetDevices([]string{"NVIDIA GeForce RTX 4090"}).
		SetToken("csa_0_" + uuid.NewString()).
		SetState(agent.StateActive).
		AddProjectIDs(projectIDs...).
		SaveX(context.Background())
}

func seedLeasedTask(t *testing.T, client *ent.Client, attackID, agentID int, st task.State, offset, limit int64) *ent.Task {
	t.Helper()
	create := client.Task.Create().
		SetAttackID(attackID).
		SetState(st).
		SetKeyspaceOffset(offset).
		SetKeyspaceLimit(limit)
	if agentID != 0 {
		create.SetAgentID(agentID)
	}
	return create.SaveX(context.Background())
}
