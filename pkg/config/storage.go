package config

import "time"

// StorageConfig controls signed download URL issuing. The core never
// touches file bodies beyond the hash list render; resources live behind
// opaque handles served by whatever fronts the object store.
type StorageConfig struct {
	// BaseURL is the externally reachable prefix signed URLs are built
	// on, e.g. "https://swarm.example.com".
	BaseURL string

	// SigningSecret keys the URL HMAC. When empty an ephemeral secret is
	// generated at startup: URLs stop verifying across restarts and the
	// health probe reports degraded.
	SigningSecret string

	// URLTTL is how long an issued download URL stays valid.
	URLTTL time.Duration
}

// DefaultStorageConfig returns the built-in storage defaults.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		BaseURL: "http://localhost:8080",
		URLTTL:  15 * time.Minute,
	}
}

// LoadStorageFromEnv loads storage configuration from environment
// variables, falling back to defaults.
func LoadStorageFromEnv() (*StorageConfig, error) {
	cfg := DefaultStorageConfig()
	cfg.BaseURL = getEnvOrDefault("STORAGE_BASE_URL", cfg.BaseURL)
	cfg.SigningSecret = getEnvOrDefault("STORAGE_SIGNING_SECRET", "")

	var err error
	if cfg.URLTTL, err = durationEnv("STORAGE_URL_TTL", cfg.URLTTL); err != nil {
		return nil, err
	}
	return cfg, nil
}
