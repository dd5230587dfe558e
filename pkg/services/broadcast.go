package services

import (
	"context"

	"github.com/cipherswarm/cipherswarm/pkg/events"
)

// Broadcaster is the slice of events.EventPublisher the services need.
// Declared here so tests can record broadcasts and wiring can pass nil
// to disable them.
type Broadcaster interface {
	PublishAgentStatus(ctx context.Context, payload events.AgentStatusPayload) error
	PublishBenchmarkSubmitted(ctx context.Context, payload events.BenchmarkSubmittedPayload) error
	PublishCrackObserved(ctx context.Context, payload events.CrackObservedPayload) error
	PublishTaskProgress(ctx context.Context, payload events.TaskProgressPayload) error
}
