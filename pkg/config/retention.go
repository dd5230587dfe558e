package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// StatusRetention is how many of the newest hashcat status frames
	// survive per task. Ingest trims as it goes; the cleanup loop
	// re-trims terminal tasks as a safety net.
	StatusRetention int

	// AgentErrorWindow is the maximum age of agent error reports before
	// deletion.
	AgentErrorWindow time.Duration

	// EventWindow is the maximum age of persisted event rows before
	// deletion. WebSocket catchup only ever reaches back this far.
	EventWindow time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		StatusRetention:  10,
		AgentErrorWindow: 30 * 24 * time.Hour,
		EventWindow:      7 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

// LoadRetentionFromEnv loads retention configuration from environment
// variables, falling back to defaults.
func LoadRetentionFromEnv() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	var err error
	if cfg.StatusRetention, err = intEnv("RETENTION_STATUS_FRAMES", cfg.StatusRetention); err != nil {
		return nil, err
	}
	if cfg.AgentErrorWindow, err = durationEnv("RETENTION_AGENT_ERROR_WINDOW", cfg.AgentErrorWindow); err != nil {
		return nil, err
	}
	if cfg.EventWindow, err = durationEnv("RETENTION_EVENT_WINDOW", cfg.EventWindow); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = durationEnv("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}
