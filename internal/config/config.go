package config

import (
	"fmt"
	"strings"
	"time"
)

// TwitterConfig holds the four posting credentials.
type TwitterConfig struct {
	AppKey       string
	AppSecret    string
	AccessToken  string
	AccessSecret string
}

// HistoryConfig selects where posted identities are persisted.
type HistoryConfig struct {
	Backend string
	Path    string
}

// SiteConfig controls the local receipt-site server.
type SiteConfig struct {
	Port string
	Dir  string
}

// ProviderConfig controls the upstream scoreboard client. Timezone names the
// zone game dates are mapped into; empty means the host's local zone.
type ProviderConfig struct {
	BaseURL       string
	Timezone      string
	RetryAttempts int
	RetryBackoff  time.Duration
}

// CaptureConfig bounds the capture waits.
type CaptureConfig struct {
	LoadTimeout    time.Duration
	OverlayTimeout time.Duration
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	OtlpEndpoint string
	OtlpInsecure bool
}

// Config holds runtime configuration for the autopost run.
type Config struct {
	DryRun    bool
	Twitter   TwitterConfig
	History   HistoryConfig
	Site      SiteConfig
	Provider  ProviderConfig
	Capture   CaptureConfig
	PostDelay time.Duration
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DryRun: boolEnvOrDefault(envDryRun, false),
		Twitter: TwitterConfig{
			AppKey:       envOrDefault(envAppKey, ""),
			AppSecret:    envOrDefault(envAppSecret, ""),
			AccessToken:  envOrDefault(envAccessToken, ""),
			AccessSecret: envOrDefault(envAccessSecret, ""),
		},
		History: HistoryConfig{
			Backend: envOrDefault(envHistoryBackend, defaultHistoryBackend),
			Path:    envOrDefault(envHistoryFile, defaultHistoryFile),
		},
		Site: SiteConfig{
			Port: envOrDefault(envSitePort, defaultSitePort),
			Dir:  envOrDefault(envSiteDir, defaultSiteDir),
		},
		Provider: ProviderConfig{
			BaseURL:       envOrDefault(envProviderBaseURL, ""),
			Timezone:      envOrDefault(envProviderTimezone, ""),
			RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
			RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		},
		Capture: CaptureConfig{
			LoadTimeout:    durationEnvOrDefault(envLoadTimeout, defaultLoadTimeout),
			OverlayTimeout: durationEnvOrDefault(envOverlayTimeout, defaultOverlayTimeout),
		},
		PostDelay: durationEnvOrDefault(envPostDelay, defaultPostDelay),
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
			OtlpEndpoint: envOrDefault(envMetricsOtlpEndpoint, ""),
			OtlpInsecure: boolEnvOrDefault(envMetricsOtlpInsecure, false),
		},
	}
}

// ConfigError reports configuration that prevents the process from starting.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// Validate enforces startup-time requirements. Outside dry-run mode all four
// posting credentials must be present; their absence is fatal before any
// network or browser work begins.
func (c Config) Validate() error {
	if c.DryRun {
		return nil
	}

	var missing []string
	if c.Twitter.AppKey == "" {
		missing = append(missing, envAppKey)
	}
	if c.Twitter.AppSecret == "" {
		missing = append(missing, envAppSecret)
	}
	if c.Twitter.AccessToken == "" {
		missing = append(missing, envAccessToken)
	}
	if c.Twitter.AccessSecret == "" {
		missing = append(missing, envAccessSecret)
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
