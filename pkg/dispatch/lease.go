package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// claimTx binds one pending unassigned task to the agent with a single
// conditional update. Zero affected rows means another claimer won the
// race. The partial unique index on (agent_id) WHERE state = 'running'
// rejects a second claim by the same agent as a constraint error.
func claimTx(ctx context.Context, tx *ent.Tx, taskID, agentID int, now time.Time) (bool, error) {
	n, err := tx.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StateEQ(task.StatePending),
			task.AgentIDIsNil(),
		).
		SetState(task.StateRunning).
		SetAgentID(agentID).
		SetActivityTimestamp(now).
		SetStartDate(now).
		SetStale(false).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim task %d: %w", taskID, err)
	}
	return n == 1, nil
}
