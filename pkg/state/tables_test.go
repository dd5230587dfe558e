package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

func TestNextTaskState(t *testing.T) {
	tests := []struct {
		name    string
		from    task.State
		event   TaskEvent
		want    task.State
		wantErr bool
	}{
		{name: "accept claims pending", from: task.StatePending, event: TaskEventAccept, want: task.StateRunning},
		{name: "accept rejects running", from: task.StateRunning, event: TaskEventAccept, wantErr: true},
		{name: "accept rejects completed", from: task.StateCompleted, event: TaskEventAccept, wantErr: true},
		{name: "run starts pending", from: task.StatePending, event: TaskEventRun, want: task.StateRunning},
		{name: "complete ends running", from: task.StateRunning, event: TaskEventComplete, want: task.StateCompleted},
		{name: "complete rejects pending", from: task.StatePending, event: TaskEventComplete, wantErr: true},
		{name: "exhaust ends running", from: task.StateRunning, event: TaskEventExhaust, want: task.StateExhausted},
		{name: "exhaust rejects paused", from: task.StatePaused, event: TaskEventExhaust, wantErr: true},
		{name: "pause parks pending", from: task.StatePending, event: TaskEventPause, want: task.StatePaused},
		{name: "pause parks running", from: task.StateRunning, event: TaskEventPause, want: task.StatePaused},
		{name: "pause rejects failed", from: task.StateFailed, event: TaskEventPause, wantErr: true},
		{name: "resume requeues paused", from: task.StatePaused, event: TaskEventResume, want: task.StatePending},
		{name: "resume rejects running", from: task.StateRunning, event: TaskEventResume, wantErr: true},
		{name: "error fails running", from: task.StateRunning, event: TaskEventError, want: task.StateFailed},
		{name: "error rejects pending", from: task.StatePending, event: TaskEventError, wantErr: true},
		{name: "cancel fails pending", from: task.StatePending, event: TaskEventCancel, want: task.StateFailed},
		{name: "cancel fails paused", from: task.StatePaused, event: TaskEventCancel, want: task.StateFailed},
		{name: "cancel rejects exhausted", from: task.StateExhausted, event: TaskEventCancel, wantErr: true},
		{name: "abandon requeues running", from: task.StateRunning, event: TaskEventAbandon, want: task.StatePending},
		{name: "abandon rejects pending", from: task.StatePending, event: TaskEventAbandon, wantErr: true},
		{name: "status frame starts pending", from: task.StatePending, event: TaskEventAcceptStatus, want: task.StateRunning},
		{name: "status frame keeps running", from: task.StateRunning, event: TaskEventAcceptStatus, want: task.StateRunning},
		{name: "status frame rejects paused", from: task.StatePaused, event: TaskEventAcceptStatus, wantErr: true},
		{name: "status frame rejects completed", from: task.StateCompleted, event: TaskEventAcceptStatus, wantErr: true},
		{name: "crack batch keeps running", from: task.StateRunning, event: TaskEventAcceptCrack, want: task.StateRunning},
		{name: "crack batch rejects completed", from: task.StateCompleted, event: TaskEventAcceptCrack, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextTaskState(tt.from, tt.event)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrGuardRejected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextAttackState(t *testing.T) {
	tests := []struct {
		name    string
		from    attack.State
		event   AttackEvent
		want    attack.State
		wantErr bool
	}{
		{name: "accept starts pending", from: attack.StatePending, event: AttackEventAccept, want: attack.StateRunning},
		{name: "accept keeps running", from: attack.StateRunning, event: AttackEventAccept, want: attack.StateRunning},
		{name: "accept rejects completed", from: attack.StateCompleted, event: AttackEventAccept, wantErr: true},
		{name: "run starts pending", from: attack.StatePending, event: AttackEventRun, want: attack.StateRunning},
		{name: "complete ends running", from: attack.StateRunning, event: AttackEventComplete, want: attack.StateCompleted},
		{name: "complete ends paused", from: attack.StatePaused, event: AttackEventComplete, want: attack.StateCompleted},
		{name: "complete rejects exhausted", from: attack.StateExhausted, event: AttackEventComplete, wantErr: true},
		{name: "exhaust ends running", from: attack.StateRunning, event: AttackEventExhaust, want: attack.StateExhausted},
		{name: "exhaust rejects pending", from: attack.StatePending, event: AttackEventExhaust, wantErr: true},
		{name: "pause parks running", from: attack.StateRunning, event: AttackEventPause, want: attack.StatePaused},
		{name: "resume requeues paused", from: attack.StatePaused, event: AttackEventResume, want: attack.StatePending},
		{name: "error fails running", from: attack.StateRunning, event: AttackEventError, want: attack.StateFailed},
		{name: "cancel fails paused", from: attack.StatePaused, event: AttackEventCancel, want: attack.StateFailed},
		{name: "cancel rejects failed", from: attack.StateFailed, event: AttackEventCancel, wantErr: true},
		{name: "abandon requeues running", from: attack.StateRunning, event: AttackEventAbandon, want: attack.StatePending},
		{name: "reset revives failed", from: attack.StateFailed, event: AttackEventReset, want: attack.StatePending},
		{name: "reset revives exhausted", from: attack.StateExhausted, event: AttackEventReset, want: attack.StatePending},
		{name: "reset revives completed", from: attack.StateCompleted, event: AttackEventReset, want: attack.StatePending},
		{name: "reset rejects running", from: attack.StateRunning, event: AttackEventReset, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextAttackState(tt.from, tt.event)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrGuardRejected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, TaskTerminal(task.StateCompleted))
	assert.True(t, TaskTerminal(task.StateExhausted))
	assert.True(t, TaskTerminal(task.StateFailed))
	assert.False(t, TaskTerminal(task.StatePending))
	assert.False(t, TaskTerminal(task.StateRunning))
	assert.False(t, TaskTerminal(task.StatePaused))

	assert.True(t, AttackTerminal(attack.StateCompleted))
	assert.True(t, AttackTerminal(attack.StateExhausted))
	assert.True(t, AttackTerminal(attack.StateFailed))
	assert.False(t, AttackTerminal(attack.StatePending))
	assert.False(t, AttackTerminal(attack.StateRunning))
	assert.False(t, AttackTerminal(attack.StatePaused))
}

// A terminal task state must never have an outgoing transition other
// than through attack reset (which destroys the task instead).
func TestNoEscapeFromTerminalTaskStates(t *testing.T) {
	terminal := []task.State{task.StateCompleted, task.StateExhausted, task.StateFailed}
	events := []TaskEvent{
		TaskEventAccept, TaskEventRun, TaskEventComplete, TaskEventExhaust,
		TaskEventPause, TaskEventResume, TaskEventError, TaskEventCancel,
		TaskEventAbandon, TaskEventAcceptStatus, TaskEventAcceptCrack,
	}
	for _, from := range terminal {
		for _, ev := range events {
			_, err := NextTaskState(from, ev)
			assert.ErrorIs(t, err, ErrGuardRejected, "task %s must reject %s", from, ev)
		}
	}
}
