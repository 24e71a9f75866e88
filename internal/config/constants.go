package config

import "time"

const (
	envDryRun       = "DRY_RUN"
	envAppKey       = "TWITTER_APP_KEY"
	envAppSecret    = "TWITTER_APP_SECRET"
	envAccessToken  = "TWITTER_ACCESS_TOKEN"
	envAccessSecret = "TWITTER_ACCESS_SECRET"

	envHistoryFile    = "HISTORY_FILE"
	envHistoryBackend = "HISTORY_BACKEND"

	envSitePort = "SITE_PORT"
	envSiteDir  = "SITE_DIR"

	envProviderBaseURL  = "ESPN_BASE_URL"
	envProviderTimezone = "GAME_TIMEZONE"
	envRetryAttempts    = "PROVIDER_RETRY_ATTEMPTS"
	envRetryBackoff     = "PROVIDER_RETRY_BACKOFF"

	envPostDelay      = "POST_DELAY"
	envLoadTimeout    = "CAPTURE_LOAD_TIMEOUT"
	envOverlayTimeout = "CAPTURE_OVERLAY_TIMEOUT"

	envMetricsEnabled      = "METRICS_ENABLED"
	envMetricsOtlpEndpoint = "METRICS_OTLP_ENDPOINT"
	envMetricsOtlpInsecure = "METRICS_OTLP_INSECURE"
)

const (
	defaultHistoryFile    = "autopost-history.json"
	defaultHistoryBackend = BackendFile
	defaultSitePort       = "9182"
	defaultSiteDir        = "site"
	defaultRetryAttempts  = 3
	defaultRetryBackoff   = 200 * time.Millisecond
	defaultPostDelay      = 2 * time.Second
	defaultLoadTimeout    = 30 * time.Second
	defaultOverlayTimeout = 5 * time.Second
)

// History backends.
const (
	BackendFile = "file"
	BackendBolt = "bolt"
)
