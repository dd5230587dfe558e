// Package state owns the task, attack, and campaign lifecycles: pure
// transition tables plus an executor that applies events inside a
// transaction and cascades them upward (task → attack → campaign).
//
// Guard rejections surface as ErrGuardRejected and map to HTTP 409.
// Cascade failures never fail the primary transition; they are logged
// and swallowed.
package state

import (
	"errors"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// ErrGuardRejected is returned when an event is not legal from the
// entity's current state.
var ErrGuardRejected = errors.New("transition not allowed from current state")

// TaskEvent is a lifecycle event a task can receive.
type TaskEvent string

// Task lifecycle events.
const (
	// TaskEventAccept fires when an agent claims the task.
	TaskEventAccept TaskEvent = "accept"
	// TaskEventRun is an alias transition used when work begins without
	// a distinct claim step (re-served leases).
	TaskEventRun TaskEvent = "run"
	// TaskEventComplete fires when the agent finished its slice and the
	// hash list is fully cracked, or on an explicit completion signal.
	TaskEventComplete TaskEvent = "complete"
	// TaskEventExhaust fires when the agent ran out of candidates.
	TaskEventExhaust TaskEvent = "exhaust"
	// TaskEventPause suspends a pending or running task.
	TaskEventPause TaskEvent = "pause"
	// TaskEventResume requeues a paused task; the task is marked stale
	// so the agent re-fetches attack parameters.
	TaskEventResume TaskEvent = "resume"
	// TaskEventError fires on an agent-reported fatal failure.
	TaskEventError TaskEvent = "error"
	// TaskEventCancel fires on operator cancellation.
	TaskEventCancel TaskEvent = "cancel"
	// TaskEventAbandon requeues a running task whose agent went away.
	// The slice offsets are preserved for re-dispatch.
	TaskEventAbandon TaskEvent = "abandon"
	// TaskEventAcceptStatus fires on every ingested status frame.
	TaskEventAcceptStatus TaskEvent = "accept_status"
	// TaskEventAcceptCrack fires after a crack batch lands. The executor
	// escalates it to completed when the hash list is fully cracked.
	TaskEventAcceptCrack TaskEvent = "accept_crack"
)

// AttackEvent is a lifecycle event an attack can receive.
type AttackEvent string

// Attack lifecycle events.
const (
	// AttackEventAccept fires when the attack's first task is claimed.
	AttackEventAccept AttackEvent = "accept"
	// AttackEventRun starts the attack and stamps start_time.
	AttackEventRun AttackEvent = "run"
	// AttackEventComplete ends the attack successfully.
	AttackEventComplete AttackEvent = "complete"
	// AttackEventExhaust ends the attack with keyspace fully searched
	// and hashes still uncracked.
	AttackEventExhaust AttackEvent = "exhaust"
	// AttackEventPause suspends the attack and its live tasks.
	AttackEventPause AttackEvent = "pause"
	// AttackEventResume requeues a paused attack; paused tasks return
	// to pending and are marked stale.
	AttackEventResume AttackEvent = "resume"
	// AttackEventError fails the attack after a fatal task failure.
	AttackEventError AttackEvent = "error"
	// AttackEventCancel fails the attack by operator action and cancels
	// its live tasks.
	AttackEventCancel AttackEvent = "cancel"
	// AttackEventAbandon requeues the attack and destroys its tasks;
	// the keyspace is re-planned against current resources.
	AttackEventAbandon AttackEvent = "abandon"
	// AttackEventReset returns a terminal attack to pending, destroying
	// tasks and clearing keyspace bookkeeping.
	AttackEventReset AttackEvent = "reset"
)

var taskTransitions = map[TaskEvent]map[task.State]task.State{
	TaskEventAccept: {
		task.StatePending: task.StateRunning,
	},
	TaskEventRun: {
		task.StatePending: task.StateRunning,
	},
	TaskEventComplete: {
		task.StateRunning: task.StateCompleted,
	},
	TaskEventExhaust: {
		task.StateRunning: task.StateExhausted,
	},
	TaskEventPause: {
		task.StatePending: task.StatePaused,
		task.StateRunning: task.StatePaused,
	},
	TaskEventResume: {
		task.StatePaused: task.StatePending,
	},
	TaskEventError: {
		task.StateRunning: task.StateFailed,
	},
	TaskEventCancel: {
		task.StatePending: task.StateFailed,
		task.StateRunning: task.StateFailed,
		task.StatePaused:  task.StateFailed,
	},
	TaskEventAbandon: {
		task.StateRunning: task.StatePending,
	},
	TaskEventAcceptStatus: {
		task.StatePending: task.StateRunning,
		task.StateRunning: task.StateRunning,
	},
	// accept_crack keeps the task running; the executor escalates to
	// completed when the hash list has no uncracked items left.
	TaskEventAcceptCrack: {
		task.StateRunning: task.StateRunning,
	},
}

var attackTransitions = map[AttackEvent]map[attack.State]attack.State{
	AttackEventAccept: {
		attack.StatePending: attack.StateRunning,
		attack.StateRunning: attack.StateRunning,
	},
	AttackEventRun: {
		attack.StatePending: attack.StateRunning,
	},
	AttackEventComplete: {
		attack.StatePending: attack.StateCompleted,
		attack.StateRunning: attack.StateCompleted,
		attack.StatePaused:  attack.StateCompleted,
	},
	AttackEventExhaust: {
		attack.StateRunning: attack.StateExhausted,
	},
	AttackEventPause: {
		attack.StatePending: attack.StatePaused,
		attack.StateRunning: attack.StatePaused,
	},
	AttackEventResume: {
		attack.StatePaused: attack.StatePending,
	},
	AttackEventError: {
		attack.StateRunning: attack.StateFailed,
	},
	AttackEventCancel: {
		attack.StatePending: attack.StateFailed,
		attack.StateRunning: attack.StateFailed,
		attack.StatePaused:  attack.StateFailed,
	},
	AttackEventAbandon: {
		attack.StateRunning: attack.StatePending,
	},
	AttackEventReset: {
		attack.StateCompleted: attack.StatePending,
		attack.StateExhausted: attack.StatePending,
		attack.StateFailed:    attack.StatePending,
	},
}

// NextTaskState returns the state a task moves to when ev fires, or
// ErrGuardRejected when ev is not legal from the current state.
func NextTaskState(from task.State, ev TaskEvent) (task.State, error) {
	to, ok := taskTransitions[ev][from]
	if !ok {
		return "", fmt.Errorf("%w: task %s on %q", ErrGuardRejected, from, ev)
	}
	return to, nil
}

// NextAttackState returns the state an attack moves to when ev fires,
// or ErrGuardRejected when ev is not legal from the current state.
func NextAttackState(from attack.State, ev AttackEvent) (attack.State, error) {
	to, ok := attackTransitions[ev][from]
	if !ok {
		return "", fmt.Errorf("%w: attack %s on %q", ErrGuardRejected, from, ev)
	}
	return to, nil
}

// TaskTerminal reports whether s is a terminal task state. A terminal
// task never runs again except through attack reset, which destroys it.
func TaskTerminal(s task.State) bool {
	switch s {
	case task.StateCompleted, task.StateExhausted, task.StateFailed:
		return true
	}
	return false
}

// AttackTerminal reports whether s is a terminal attack state.
func AttackTerminal(s attack.State) bool {
	switch s {
	case attack.StateCompleted, attack.StateExhausted, attack.StateFailed:
		return true
	}
	return false
}
