package config

import "time"

// ServerConfig controls the HTTP listener and agent poll backpressure.
type ServerConfig struct {
	// HTTPPort is the listen port for the combined agent/operator API.
	HTTPPort string

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration

	// PollRate is the sustained `tasks/next` request rate allowed per
	// agent, in requests per second. Exceeding it returns 429 and flips
	// the agent's next heartbeat to the backoff command.
	PollRate float64

	// PollBurst is the burst allowance on top of PollRate.
	PollBurst int

	// BackoffSeconds is the wait advertised with a 429 and with the
	// backoff heartbeat command.
	BackoffSeconds int
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPPort:        "8080",
		ShutdownTimeout: 10 * time.Second,
		PollRate:        1,
		PollBurst:       5,
		BackoffSeconds:  30,
	}
}

// LoadServerFromEnv loads server configuration from environment
// variables, falling back to defaults.
func LoadServerFromEnv() (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	cfg.HTTPPort = getEnvOrDefault("HTTP_PORT", cfg.HTTPPort)

	var err error
	if cfg.ShutdownTimeout, err = durationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.PollRate, err = floatEnv("AGENT_POLL_RATE", cfg.PollRate); err != nil {
		return nil, err
	}
	if cfg.PollBurst, err = intEnv("AGENT_POLL_BURST", cfg.PollBurst); err != nil {
		return nil, err
	}
	if cfg.BackoffSeconds, err = intEnv("AGENT_BACKOFF_SECONDS", cfg.BackoffSeconds); err != nil {
		return nil, err
	}
	return cfg, nil
}
