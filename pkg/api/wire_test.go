package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

func TestTaskResponse_SliceBounds(t *testing.T) {
	now := time.Now()
	resp := taskResponse(&ent.Task{
		ID:             42,
		AttackID:       7,
		State:          task.StateRunning,
		StartDate:      now,
		KeyspaceOffset: 10000,
		KeyspaceLimit:  5000,
	})

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.AttackID)
	assert.Equal(t, "running", resp.Status)
	require.NotNil(t, resp.Skip)
	require.NotNil(t, resp.Limit)
	assert.Equal(t, int64(10000), *resp.Skip)
	assert.Equal(t, int64(5000), *resp.Limit)
}

// A zero keyspace limit means the task covers the whole attack; the
// agent then runs hashcat without --skip/--limit.
func TestTaskResponse_WholeKeyspaceOmitsBounds(t *testing.T) {
	resp := taskResponse(&ent.Task{ID: 1, AttackID: 2, State: task.StatePending})
	assert.Nil(t, resp.Skip)
	assert.Nil(t, resp.Limit)
}

func TestResourceFile_NilResource(t *testing.T) {
	s := &Server{}
	assert.Nil(t, s.resourceFile(nil))
}
