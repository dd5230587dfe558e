// CipherSwarm distribution core — plans keyspace slices, leases them to
// hashcat agents over HTTP, ingests progress and cracks, and streams
// lifecycle events to operator dashboards.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cipherswarm/cipherswarm/pkg/api"
	"github.com/cipherswarm/cipherswarm/pkg/cleanup"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/dispatch"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/metrics"
	"github.com/cipherswarm/cipherswarm/pkg/services"
	"github.com/cipherswarm/cipherswarm/pkg/state"
	"github.com/cipherswarm/cipherswarm/pkg/storage"
	"github.com/cipherswarm/cipherswarm/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Load configuration
	serverCfg, err := config.LoadServerFromEnv()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}
	dispatchCfg, err := config.LoadDispatchFromEnv()
	if err != nil {
		slog.Error("Failed to load dispatch config", "error", err)
		os.Exit(1)
	}
	retentionCfg, err := config.LoadRetentionFromEnv()
	if err != nil {
		slog.Error("Failed to load retention config", "error", err)
		os.Exit(1)
	}
	storageCfg, err := config.LoadStorageFromEnv()
	if err != nil {
		slog.Error("Failed to load storage config", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting CipherSwarm",
		"version", version.Full(),
		"http_port", serverCfg.HTTPPort,
		"lease_ttl", dispatchCfg.LeaseTTL,
		"slice_target", dispatchCfg.SliceTarget)

	// 2. Connect to PostgreSQL, run migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Download URL signer
	signer, err := storage.NewSigner(storageCfg)
	if err != nil {
		slog.Error("Failed to initialize URL signer", "error", err)
		os.Exit(1)
	}
	if signer.Ephemeral() {
		slog.Warn("STORAGE_SIGNING_SECRET not set; download URLs will not survive a restart")
	}

	// 4. Streaming infrastructure: persistent events + LISTEN/NOTIFY relay
	eventService := services.NewEventService(dbClient.Client)
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Lifecycle engine and domain services
	engine := state.NewEngine(dbClient.Client, eventPublisher, state.Options{
		StatusRetention:    retentionCfg.StatusRetention,
		ExhaustToCompleted: dispatchCfg.ExhaustToCompleted,
	})

	benchmarkService := services.NewBenchmarkService(dbClient.Client, eventPublisher, dispatchCfg.BenchmarkMaxAge)
	svcs := api.Services{
		Agents:     services.NewAgentService(dbClient.Client, engine, eventPublisher),
		Tasks:      services.NewTaskService(dbClient.Client, engine),
		Attacks:    services.NewAttackService(dbClient.Client, engine),
		Campaigns:  services.NewCampaignService(dbClient.Client, engine),
		Projects:   services.NewProjectService(dbClient.Client),
		HashLists:  services.NewHashListService(dbClient.Client),
		Resources:  services.NewResourceService(dbClient.Client),
		Cracks:     services.NewCrackService(dbClient.Client, engine, eventPublisher),
		Statuses:   services.NewStatusService(dbClient.Client, engine, eventPublisher, retentionCfg.StatusRetention),
		Benchmarks: benchmarkService,
	}
	slog.Info("Services initialized")

	// 6. Dispatch matcher and lease sweeper
	matcher := dispatch.NewMatcher(dbClient.Client, engine, benchmarkService, dispatchCfg)
	sweeper := dispatch.NewSweeper(dbClient.Client, engine, dispatchCfg)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 7. Retention loop
	cleanupService := cleanup.NewService(retentionCfg, svcs.Statuses, svcs.Agents, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Gauge poller for Prometheus
	metricsPoller := metrics.NewPoller(dbClient.Client, 15*time.Second)
	metricsPoller.Start(ctx)
	defer metricsPoller.Stop()

	// 9. HTTP server
	httpServer := api.NewServer(serverCfg, dbClient, svcs, matcher, signer, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + serverCfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CipherSwarm started successfully")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop taking requests first, then the
	// background loops via the deferred Stops. In-flight leases survive
	// in the database and the sweeper reclaims them on next startup.
	shutdownCtx, cancel := context.WithTimeout(ctx, serverCfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
