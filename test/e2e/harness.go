// Package e2e exercises the distribution core over the wire: a real
// HTTP server over a real PostgreSQL schema, driven the way a hashcat
// agent and an operator would drive it.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/api"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/dispatch"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/state"
	"github.com/cipherswarm/cipherswarm/pkg/storage"
	testdb "github.com/cipherswarm/cipherswarm/test/database"
	"github.com/cipherswarm/cipherswarm/test/util"
)

// TestApp boots a complete CipherSwarm server for wire-level testing.
// The sweeper is constructed but not started; tests drive reclamation
// explicitly through SweepOnce so timing stays deterministic.
type TestApp struct {
	DBClient *database.Client
	Ent      *ent.Client

	Engine  *state.Engine
	Matcher *dispatch.Matcher
	Sweeper *dispatch.Sweeper
	Server  *api.Server

	BaseURL string
	WSURL   string

	t *testing.T
}

type testAppConfig struct {
	serverCfg   *config.ServerConfig
	dispatchCfg *config.DispatchConfig
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithServerConfig overrides the HTTP/backpressure settings.
func WithServerConfig(cfg *config.ServerConfig) TestAppOption {
	return func(c *testAppConfig) { c.serverCfg = cfg }
}

// WithDispatchConfig overrides slice sizing and lease settings.
func WithDispatchConfig(cfg *config.DispatchConfig) TestAppOption {
	return func(c *testAppConfig) { c.dispatchCfg = cfg }
}

// NewTestApp creates and starts a full server instance on an ephemeral
// port. Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.serverCfg == nil {
		tc.serverCfg = config.DefaultServerConfig()
		// Tests poll hard; only the backpressure tests want the
		// production limiter.
		tc.serverCfg.PollRate = 1000
		tc.serverCfg.PollBurst = 1000
	}
	if tc.dispatchCfg == nil {
		tc.dispatchCfg = config.DefaultDispatchConfig()
	}
	retentionCfg := config.DefaultRetentionConfig()

	ctx := context.Background()

	// 1. Database — per-test schema on the shared container.
	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	// 2. Streaming infrastructure, real and backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(entClient)
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)

	// NOTIFY is database-level, so the listener connects without the
	// test schema's search_path.
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), connManager)
	require.NoError(t, notifyListener.Start(ctx))
	connManager.SetListener(notifyListener)
	t.Cleanup(func() { notifyListener.Stop(context.Background()) })

	// 3. Lifecycle engine and domain services.
	engine := state.NewEngine(entClient, eventPublisher, state.Options{
		StatusRetention:    retentionCfg.StatusRetention,
		ExhaustToCompleted: tc.dispatchCfg.ExhaustToCompleted,
	})
	benchmarkService := services.NewBenchmarkService(entClient, eventPublisher, tc.dispatchCfg.BenchmarkMaxAge)
	svcs := api.Services{
		Agents:     services.NewAgentService(entClient, engine, eventPublisher),
		Tasks:      services.NewTaskService(entClient, engine),
		Attacks:    services.NewAttackService(entClient, engine),
		Campaigns:  services.NewCampaignService(entClient, engine),
		Projects:   services.NewProjectService(entClient),
		HashLists:  services.NewHashListService(entClient),
		Resources:  services.NewResourceService(entClient),
		Cracks:     services.NewCrackService(entClient, engine, eventPublisher),
		Statuses:   services.NewStatusService(entClient, engine, eventPublisher, retentionCfg.StatusRetention),
		Benchmarks: benchmarkService,
	}

	matcher := dispatch.NewMatcher(entClient, engine, benchmarkService, tc.dispatchCfg)
	sweeper := dispatch.NewSweeper(entClient, engine, tc.dispatchCfg)

	// 4. HTTP server on an ephemeral port. The listener comes first so
	// the signer can mint URLs pointing back at the right address.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())

	signer, err := storage.NewSigner(&config.StorageConfig{
		BaseURL:       baseURL,
		SigningSecret: "e2e-signing-secret",
		URLTTL:        15 * time.Minute,
	})
	require.NoError(t, err)

	server := api.NewServer(tc.serverCfg, dbClient, svcs, matcher, signer, connManager)
	go func() {
		_ = server.StartWithListener(ln)
	}()
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	return &TestApp{
		DBClient: dbClient,
		Ent:      entClient,
		Engine:   engine,
		Matcher:  matcher,
		Sweeper:  sweeper,
		Server:   server,
		BaseURL:  baseURL,
		WSURL:    "ws" + baseURL[len("http"):] + "/api/v1/events/ws",
		t:        t,
	}
}
