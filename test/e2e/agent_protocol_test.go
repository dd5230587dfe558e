package e2e

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

func TestRegistrationFlow(t *testing.T) {
	app := NewTestApp(t)
	op := app.Operator()

	var pre struct {
		AgentID           int64  `json:"agent_id"`
		RegistrationToken string `json:"registration_token"`
	}
	op.post("/api/v1/agents", map[string]any{"label": "rig-01"}, &pre, http.StatusCreated)
	require.True(t, strings.HasPrefix(pre.RegistrationToken, "csi_"))

	var reg models.RegistrationResponse
	op.post("/api/v1/client/agents", map[string]any{
		"token":            pre.RegistrationToken,
		"host_name":        "rig-01.lab",
		"client_signature": "cipherswarm-agent/1.4.2",
	}, &reg, http.StatusCreated)
	assert.Equal(t, pre.AgentID, reg.AgentID)
	assert.True(t, strings.HasPrefix(reg.Token, "csa_"))

	// The registration token is one-shot.
	code := op.do(http.MethodPost, "/api/v1/client/agents", map[string]any{
		"token":            pre.RegistrationToken,
		"host_name":        "rig-01.lab",
		"client_signature": "cipherswarm-agent/1.4.2",
	}, nil)
	assert.Equal(t, http.StatusNotFound, code)

	agent := app.Agent(reg.Token)
	var auth struct {
		Authenticated bool `json:"authenticated"`
		AgentID       int  `json:"agent_id"`
	}
	agent.get("/api/v1/client/authenticate", &auth, http.StatusOK)
	assert.True(t, auth.Authenticated)
	assert.Equal(t, int(pre.AgentID), auth.AgentID)

	// Agents only see themselves.
	code = agent.do(http.MethodGet, fmt.Sprintf("/api/v1/client/agents/%d", pre.AgentID+1), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)

	// A forged bearer is a 401, not a 404.
	forged := app.Agent(fmt.Sprintf("csa_%d_definitelynotthetoken", pre.AgentID))
	code = forged.do(http.MethodGet, "/api/v1/client/authenticate", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestBenchmarkGate(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "gate", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 10, "routine")

	_, agent := registerAgent(t, app, "rig-02.lab", fx.ProjectID)

	// Work exists, but the agent has no speed measurement yet.
	var status models.TaskStatusResponse
	agent.get("/api/v1/client/tasks/next", &status, http.StatusOK)
	assert.Equal(t, "benchmark_required", status.Status)
}

func TestNoWorkOutsideProject(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "theirs", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 10, "routine")

	op := app.Operator()
	var other entityRef
	op.post("/api/v1/projects", map[string]any{"name": "ours"}, &other, http.StatusCreated)

	agentID, agent := registerAgent(t, app, "rig-03.lab", other.ID)
	submitBenchmark(t, agent, agentID, 0, 100_000_000)

	// The only active campaign belongs to a project the agent is not in.
	var status models.TaskStatusResponse
	agent.get("/api/v1/client/tasks/next", &status, http.StatusOK)
	assert.Equal(t, "no_work", status.Status)

	// Its attack does not exist from this agent's point of view.
	code := agent.do(http.MethodGet, fmt.Sprintf("/api/v1/client/attacks/%d", fx.AttackID), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPollBackpressure(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.PollRate = 0.001
	cfg.PollBurst = 2
	cfg.BackoffSeconds = 45
	app := NewTestApp(t, WithServerConfig(cfg))

	agentID, agent := registerAgent(t, app, "rig-04.lab")

	// Burn the burst.
	for i := 0; i < cfg.PollBurst; i++ {
		var status models.TaskStatusResponse
		agent.get("/api/v1/client/tasks/next", &status, http.StatusOK)
		assert.Equal(t, "no_work", status.Status)
	}

	var backoff struct {
		Error          string `json:"error"`
		BackoffSeconds int    `json:"backoff_seconds"`
	}
	code := agent.do(http.MethodGet, "/api/v1/client/tasks/next", nil, &backoff)
	require.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, 45, backoff.BackoffSeconds)

	// The tripped limiter turns the next heartbeat into a backoff order.
	var hb models.HeartbeatResponse
	agent.post(fmt.Sprintf("/api/v1/client/agents/%d/heartbeat", agentID), nil, &hb, http.StatusOK)
	assert.Equal(t, models.CommandBackoff, hb.Command)
	assert.Equal(t, 45, hb.BackoffSeconds)
}

func TestSignedHashListDownload(t *testing.T) {
	app := NewTestApp(t)
	hashes := []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
		"098f6bcd4621d373cade4e832627b4f6",
	}
	fx := seedDictionaryCampaign(t, app, "download", hashes, 1000, 10, "routine")

	agentID, agent := registerAgent(t, app, "rig-05.lab", fx.ProjectID)
	submitBenchmark(t, agent, agentID, 0, 100_000_000)

	var atk models.AttackResponse
	agent.get(fmt.Sprintf("/api/v1/client/attacks/%d", fx.AttackID), &atk, http.StatusOK)
	require.NotEmpty(t, atk.HashListURL)

	u, err := url.Parse(atk.HashListURL)
	require.NoError(t, err)
	signedPath := u.Path + "?" + u.RawQuery

	// An unauthenticated fetch works; the signature is the credential.
	code, body := app.Operator().getText(signedPath)
	require.Equal(t, http.StatusOK, code)
	for _, h := range hashes {
		assert.Contains(t, body, h)
	}

	// A tampered signature is indistinguishable from a missing file.
	q := u.Query()
	q.Set("signature", strings.Repeat("0", len(q.Get("signature"))))
	code, _ = app.Operator().getText(u.Path + "?" + q.Encode())
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLifecycleReportFromNonHolder(t *testing.T) {
	app := NewTestApp(t)
	fx := seedDictionaryCampaign(t, app, "holders", []string{
		"5f4dcc3b5aa765d61d8327deb882cf99",
	}, 1000, 10, "routine")

	holderID, holder := registerAgent(t, app, "rig-06.lab", fx.ProjectID)
	submitBenchmark(t, holder, holderID, 0, 100_000_000)

	var task models.TaskResponse
	holder.get("/api/v1/client/tasks/next", &task, http.StatusOK)
	require.NotZero(t, task.ID)

	intruderID, intruder := registerAgent(t, app, "rig-07.lab", fx.ProjectID)
	submitBenchmark(t, intruder, intruderID, 0, 100_000_000)

	for _, action := range []string{"exhausted", "completed", "abandon"} {
		code := intruder.do(http.MethodPost,
			fmt.Sprintf("/api/v1/client/tasks/%d/%s", task.ID, action), nil, nil)
		assert.Equal(t, http.StatusConflict, code, action)
	}

	// The holder's lease is untouched by the rejected reports.
	holder.post(fmt.Sprintf("/api/v1/client/tasks/%d/status", task.ID),
		statusFrame(100, 10_000), nil, http.StatusNoContent)
}
