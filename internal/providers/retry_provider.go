package providers

import (
	"context"
	"log/slog"
	"time"

	"finaltabs/internal/domain"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a GameProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       GameProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchFinishedGames(ctx context.Context, date string) ([]domain.Game, error) {
	var games []domain.Game
	err := r.retry(ctx, "scoreboard", func() error {
		var innerErr error
		games, innerErr = r.inner.FetchFinishedGames(ctx, date)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *retryingProvider) FetchBoxScore(ctx context.Context, eventID string) (domain.BoxScore, error) {
	var box domain.BoxScore
	err := r.retry(ctx, "summary", func() error {
		var innerErr error
		box, innerErr = r.inner.FetchBoxScore(ctx, eventID)
		return innerErr
	})
	if err != nil {
		return domain.BoxScore{}, err
	}
	return box, nil
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn("provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", lastErr)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn("provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
