// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// Service periodically enforces retention policies:
//   - Re-trims status history on terminal tasks to the retention bound
//   - Deletes agent error reports past their window
//   - Deletes persisted event rows past their window
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config        *config.RetentionConfig
	statusService *services.StatusService
	agentService  *services.AgentService
	eventService  *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	statusService *services.StatusService,
	agentService *services.AgentService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:        cfg,
		statusService: statusService,
		agentService:  agentService,
		eventService:  eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"status_retention", s.config.StatusRetention,
		"agent_error_window", s.config.AgentErrorWindow,
		"event_window", s.config.EventWindow,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.trimStatusHistory(ctx)
	s.purgeAgentErrors(ctx)
	s.purgeOldEvents(ctx)
}

func (s *Service) trimStatusHistory(_ context.Context) {
	count, err := s.statusService.TrimTerminalHistory(context.Background())
	if err != nil {
		slog.Error("Retention: status history trim failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: trimmed terminal status history", "count", count)
	}
}

func (s *Service) purgeAgentErrors(_ context.Context) {
	cutoff := time.Now().Add(-s.config.AgentErrorWindow)
	count, err := s.agentService.PurgeOldErrors(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: agent error purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old agent errors", "count", count)
	}
}

func (s *Service) purgeOldEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.EventWindow)
	count, err := s.eventService.CleanupOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}
