package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	TasksDispatched.Inc()
	TasksReclaimed.Inc()
	TasksByState.WithLabelValues("pending").Set(3)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "cipherswarm_tasks_dispatched_total")
	assert.Contains(t, body, "cipherswarm_tasks_reclaimed_total")
	assert.Contains(t, body, `cipherswarm_tasks{state="pending"} 3`)
	assert.Contains(t, body, "cipherswarm_queue_depth")
}
