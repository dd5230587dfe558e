package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/event"
)

// EventService reads the durable event feed. Writes happen in
// events.EventPublisher; this side serves websocket catchup and
// retention cleanup.
type EventService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{
		client: client,
		logger: slog.With("component", "event_service"),
	}
}

// GetEventsSince returns up to limit events on channel with ID > sinceID,
// oldest first. Reconnecting websocket clients replay from here before
// following live notifications.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	evts, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel), event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return evts, nil
}

// LatestEventID returns the newest event ID on channel, or 0 when the
// channel has no history.
func (s *EventService) LatestEventID(ctx context.Context, channel string) (int, error) {
	latest, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel)).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query latest event: %w", err)
	}
	return latest.ID, nil
}

// CleanupOlderThan deletes events created before the cutoff and returns
// the number removed. The retention service calls this on its sweep.
func (s *EventService) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired events: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired events removed", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
