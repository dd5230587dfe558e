package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// apiClient is a thin JSON client over the test server. A zero bearer
// is the operator surface; agents carry their csa_ token.
type apiClient struct {
	t       *testing.T
	baseURL string
	bearer  string
	http    *http.Client
}

// Operator returns a client for the unauthenticated operator surface.
func (app *TestApp) Operator() *apiClient {
	return &apiClient{
		t:       app.t,
		baseURL: app.BaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Agent returns a client presenting the given bearer token.
func (app *TestApp) Agent(token string) *apiClient {
	return &apiClient{
		t:       app.t,
		baseURL: app.BaseURL,
		bearer:  token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs one request and decodes the response body into out when
// out is non-nil and the body is JSON. It returns the status code.
func (c *apiClient) do(method, path string, body, out any) int {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if out != nil && len(data) > 0 {
		require.NoError(c.t, json.Unmarshal(data, out),
			"undecodable %s %s response: %s", method, path, data)
	}
	return resp.StatusCode
}

// getText performs a GET and returns the raw body, for plain-text
// endpoints like the hash list download.
func (c *apiClient) getText(path string) (int, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	require.NoError(c.t, err)
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, string(data)
}

func (c *apiClient) post(path string, body, out any, expect int) {
	c.t.Helper()
	code := c.do(http.MethodPost, path, body, out)
	require.Equal(c.t, expect, code, "POST %s", path)
}

func (c *apiClient) get(path string, out any, expect int) {
	c.t.Helper()
	code := c.do(http.MethodGet, path, nil, out)
	require.Equal(c.t, expect, code, "GET %s", path)
}

// entityRef is the slice of an entity response the scenarios care about.
type entityRef struct {
	ID             int    `json:"id"`
	State          string `json:"state"`
	UncrackedCount int64  `json:"uncracked_count"`
	UpdatedAt      string `json:"updated_at"`
}

// fixture is one dispatchable dictionary campaign built over the
// operator API.
type fixture struct {
	ProjectID  int
	HashListID int
	WordListID int
	RuleListID int
	CampaignID int
	AttackID   int
}

// seedDictionaryCampaign drives the operator surface end to end:
// project, hash list with items, word/rule resources with known line
// counts, one dictionary attack, campaign started.
func seedDictionaryCampaign(t *testing.T, app *TestApp, name string, hashes []string, wordLines, ruleLines int64, priority string) fixture {
	t.Helper()
	op := app.Operator()

	var project entityRef
	op.post("/api/v1/projects", map[string]any{"name": name}, &project, http.StatusCreated)

	items := make([]map[string]any, 0, len(hashes))
	for _, h := range hashes {
		items = append(items, map[string]any{"hash": h})
	}
	var hashList entityRef
	op.post("/api/v1/hash_lists", map[string]any{
		"project_id":   project.ID,
		"name":         name + "-md5",
		"hash_type_id": 0,
		"items":        items,
	}, &hashList, http.StatusCreated)

	var wordList entityRef
	op.post("/api/v1/resources", map[string]any{
		"name":          name + "-words",
		"file_name":     "wordlist.txt",
		"resource_type": "word_list",
		"line_count":    wordLines,
	}, &wordList, http.StatusCreated)

	var ruleList entityRef
	op.post("/api/v1/resources", map[string]any{
		"name":          name + "-rules",
		"file_name":     "best64.rule",
		"resource_type": "rule_list",
		"line_count":    ruleLines,
	}, &ruleList, http.StatusCreated)

	var camp entityRef
	op.post("/api/v1/campaigns", map[string]any{
		"project_id":   project.ID,
		"hash_list_id": hashList.ID,
		"name":         name,
		"priority":     priority,
	}, &camp, http.StatusCreated)

	var atk entityRef
	op.post(fmt.Sprintf("/api/v1/campaigns/%d/attacks", camp.ID), map[string]any{
		"attack_mode":  "dictionary",
		"word_list_id": wordList.ID,
		"rule_list_id": ruleList.ID,
	}, &atk, http.StatusCreated)

	op.post(fmt.Sprintf("/api/v1/campaigns/%d/start", camp.ID), nil, nil, http.StatusOK)

	return fixture{
		ProjectID:  project.ID,
		HashListID: hashList.ID,
		WordListID: wordList.ID,
		RuleListID: ruleList.ID,
		CampaignID: camp.ID,
		AttackID:   atk.ID,
	}
}

// registerAgent walks the full bootstrap: operator pre-registration,
// token exchange, first heartbeat (which activates the agent).
func registerAgent(t *testing.T, app *TestApp, hostName string, projectIDs ...int) (int, *apiClient) {
	t.Helper()
	op := app.Operator()

	var pre struct {
		AgentID           int64  `json:"agent_id"`
		RegistrationToken string `json:"registration_token"`
	}
	op.post("/api/v1/agents", map[string]any{
		"label":       hostName,
		"project_ids": projectIDs,
	}, &pre, http.StatusCreated)

	var reg models.RegistrationResponse
	op.post("/api/v1/client/agents", map[string]any{
		"token":            pre.RegistrationToken,
		"host_name":        hostName,
		"client_signature": "cipherswarm-agent/1.4.2",
		"operating_system": "linux",
		"devices":          []string{"NVIDIA GeForce RTX 4090"},
	}, &reg, http.StatusCreated)

	agent := app.Agent(reg.Token)
	var hb models.HeartbeatResponse
	agent.post(fmt.Sprintf("/api/v1/client/agents/%d/heartbeat", reg.AgentID), nil, &hb, http.StatusOK)
	require.Equal(t, models.CommandContinue, hb.Command)

	return int(reg.AgentID), agent
}

// submitBenchmark records one device speed for the hash type.
func submitBenchmark(t *testing.T, agent *apiClient, agentID, hashType int, speed float64) {
	t.Helper()
	agent.post(fmt.Sprintf("/api/v1/client/agents/%d/benchmark", agentID), map[string]any{
		"hashcat_benchmarks": []map[string]any{
			{"hash_type": hashType, "device": 1, "hash_speed": speed, "runtime_ms": 1000},
		},
	}, nil, http.StatusNoContent)
}

// statusFrame builds a plausible mid-flight hashcat status frame.
func statusFrame(done, total int64) models.HashcatStatusFrame {
	now := time.Now().UTC()
	return models.HashcatStatusFrame{
		Time:         now,
		Session:      "cipherswarm",
		Status:       3,
		Target:       "hashlist.txt",
		Progress:     []int64{done, total},
		RestorePoint: done,
		Devices: []models.DeviceStatus{
			{DeviceID: 1, DeviceName: "NVIDIA GeForce RTX 4090", DeviceType: "GPU", Speed: 100_000_000, Utilization: 98, Temperature: 61},
		},
		TimeStart:     now.Add(-30 * time.Second),
		EstimatedStop: now.Add(30 * time.Second),
	}
}
