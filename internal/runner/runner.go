// Package runner sequences one autopost run: fetch finished games, build
// receipts, capture them, and post each exactly once.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finaltabs/internal/domain"
	"finaltabs/internal/history"
	"finaltabs/internal/logging"
	"finaltabs/internal/metrics"
	"finaltabs/internal/providers"
	"finaltabs/internal/publish"
	"finaltabs/internal/receipt"
	"finaltabs/internal/timeutil"
)

// Capturer extracts rendered receipt images in page order.
type Capturer interface {
	CaptureAll(ctx context.Context) ([]domain.Capture, error)
}

// Publisher posts one captured receipt.
type Publisher interface {
	Publish(ctx context.Context, c domain.Capture) (publish.Result, error)
}

// Phase tracks where a run currently is.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseBuilding
	PhaseCapturing
	PhasePosting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseBuilding:
		return "building"
	case PhaseCapturing:
		return "capturing"
	case PhasePosting:
		return "posting"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Summary reports what one run did.
type Summary struct {
	Games     int
	Receipts  int
	Captured  int
	Attempted int
	Posted    int
	Skipped   int
	Failed    int
}

// ErrAllPostsFailed marks a run where posts were attempted and none went out.
// Distinct from "nothing needed posting", which is success.
var ErrAllPostsFailed = errors.New("posts were attempted and none succeeded")

// ErrNoDatesFetched marks a run where every date fetch failed, leaving no way
// to know whether games existed.
var ErrNoDatesFetched = errors.New("all scoreboard fetches failed")

// Config controls run behavior.
type Config struct {
	// PostDelay throttles successive posts. Dry runs are exempt.
	PostDelay time.Duration
	DryRun    bool
}

// Runner coordinates one run. It owns the only cross-stage state: the
// receipt set built once per run and the history store.
type Runner struct {
	provider  providers.GameProvider
	capturer  Capturer
	publisher Publisher
	history   history.Store
	logger    *slog.Logger
	metrics   *metrics.Recorder
	cfg       Config

	now   func() time.Time
	sleep func(context.Context, time.Duration)

	mu    sync.Mutex
	phase Phase
}

// New constructs a Runner.
func New(provider providers.GameProvider, capturer Capturer, publisher Publisher, store history.Store, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Runner {
	return &Runner{
		provider:  provider,
		capturer:  capturer,
		publisher: publisher,
		history:   store,
		logger:    logger,
		metrics:   recorder,
		cfg:       cfg,
		now:       time.Now,
		sleep:     sleepCtx,
	}
}

// Phase returns the run's current phase.
func (r *Runner) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Runner) setPhase(p Phase) {
	r.mu.Lock()
	r.phase = p
	r.mu.Unlock()
}

// Run executes the pipeline once: fetch yesterday's and today's finished
// games, build receipts, capture the page, then post unposted receipts in
// capture order. See package docs for the failure policy per stage.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	r.setPhase(PhaseFetching)
	games, err := r.fetchGames(ctx)
	if err != nil {
		r.setPhase(PhaseDone)
		return summary, err
	}
	summary.Games = len(games)
	if len(games) == 0 {
		logging.Info(r.logger, "no finished games on target dates")
		r.setPhase(PhaseDone)
		return summary, nil
	}

	r.setPhase(PhaseBuilding)
	receipts := r.buildReceipts(ctx, games)
	summary.Receipts = len(receipts)

	r.setPhase(PhaseCapturing)
	captures, err := r.capturer.CaptureAll(ctx)
	if err != nil {
		r.setPhase(PhaseDone)
		return summary, fmt.Errorf("capture: %w", err)
	}
	summary.Captured = len(captures)
	for range captures {
		r.metrics.RecordCapture()
	}

	r.setPhase(PhasePosting)
	r.postAll(ctx, captures, receipts, &summary)

	r.setPhase(PhaseDone)
	logging.Info(r.logger, "run complete",
		"games", summary.Games,
		"captured", summary.Captured,
		"posted", summary.Posted,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)

	if summary.Attempted > 0 && summary.Posted == 0 {
		return summary, ErrAllPostsFailed
	}
	return summary, nil
}

// fetchGames gathers yesterday's and today's finished games concurrently.
// One date's failure is logged and isolated; only both failing is fatal,
// since then there is no way to decide whether any games exist.
func (r *Runner) fetchGames(ctx context.Context) ([]domain.Game, error) {
	now := r.now()
	dates := []string{
		timeutil.ScoreboardDate(now.AddDate(0, 0, -1)),
		timeutil.ScoreboardDate(now),
	}

	results := make([][]domain.Game, len(dates))
	errs := make([]error, len(dates))

	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(i int, date string) {
			defer wg.Done()
			start := time.Now()
			games, err := r.provider.FetchFinishedGames(ctx, date)
			r.metrics.RecordProviderAttempt("scoreboard", time.Since(start), err)
			if err != nil {
				logging.Error(r.logger, "scoreboard fetch failed", err, logging.FieldDate, date)
				errs[i] = err
				return
			}
			logging.Info(r.logger, "scoreboard fetched", logging.FieldDate, date, logging.FieldCount, len(games))
			results[i] = games
		}(i, date)
	}
	wg.Wait()

	if errs[0] != nil && errs[1] != nil {
		return nil, fmt.Errorf("%w: %v; %v", ErrNoDatesFetched, errs[0], errs[1])
	}

	// Yesterday's games first: matches the page's key layout and therefore
	// the capture and posting order.
	var games []domain.Game
	for _, batch := range results {
		games = append(games, batch...)
	}
	return games, nil
}

// buildReceipts fetches box scores concurrently and builds one receipt per
// winning team. Failures are isolated per game: a missing box score degrades
// to an empty line-item list, a malformed game is logged and dropped.
func (r *Runner) buildReceipts(ctx context.Context, games []domain.Game) map[string]domain.Receipt {
	boxes := r.fetchBoxScores(ctx, games)

	receipts := make(map[string]domain.Receipt, len(games))
	for _, game := range games {
		winner, ok := game.Winner()
		if !ok {
			logging.Warn(r.logger, "finished game without winner flag", logging.FieldEventID, game.ID)
			continue
		}
		loser, ok := game.Opponent(winner.TeamID)
		if !ok {
			logging.Warn(r.logger, "finished game without opponent", logging.FieldEventID, game.ID)
			continue
		}

		rec, err := receipt.Build(game, winner, loser, boxes[game.ID])
		if err != nil {
			logging.Error(r.logger, "receipt build failed", err, logging.FieldEventID, game.ID)
			continue
		}
		receipts[rec.Identity] = rec
	}
	return receipts
}

func (r *Runner) fetchBoxScores(ctx context.Context, games []domain.Game) map[string]domain.BoxScore {
	boxes := make(map[string]domain.BoxScore, len(games))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, game := range games {
		wg.Add(1)
		go func(game domain.Game) {
			defer wg.Done()
			start := time.Now()
			box, err := r.provider.FetchBoxScore(ctx, game.ID)
			r.metrics.RecordProviderAttempt("summary", time.Since(start), err)
			if err != nil {
				// Omitted entry, not a run failure: the receipt still
				// builds, just without line items.
				logging.Warn(r.logger, "box score fetch failed", logging.FieldEventID, game.ID, logging.FieldError, err)
				return
			}
			mu.Lock()
			boxes[game.ID] = box
			mu.Unlock()
		}(game)
	}
	wg.Wait()
	return boxes
}

// postAll walks captures in order, consulting history before any network
// call. Posted identities are recorded immediately so a crash between posts
// loses at most the post in flight. Authorization failures abort the loop;
// transient failures skip to the next receipt.
func (r *Runner) postAll(ctx context.Context, captures []domain.Capture, receipts map[string]domain.Receipt, summary *Summary) {
	for i, c := range captures {
		logger := logging.WithIdentity(r.logger, c.Identity)

		if _, ok := receipts[c.Identity]; !ok {
			// A stale page render can surface a key from another date.
			// Resolve the identity's date so the log correlates with history.
			when, err := domain.IdentityDate(c.Identity, r.now())
			if err != nil {
				logging.Warn(logger, "captured receipt with malformed identity")
			} else {
				logging.Warn(logger, "captured receipt not in built set", logging.FieldDate, timeutil.ScoreboardDate(when))
			}
		}

		if r.history.HasPosted(c.Identity) {
			logging.Info(logger, "already posted, skipping")
			r.metrics.RecordPublishOutcome(publish.Skipped.String())
			summary.Skipped++
			continue
		}

		summary.Attempted++
		result, err := r.publisher.Publish(ctx, c)
		r.metrics.RecordPublishOutcome(result.String())

		switch result {
		case publish.Posted:
			summary.Posted++
			// Dry runs leave history untouched so the real run still posts.
			if !r.cfg.DryRun {
				if recErr := r.history.RecordPosted(c.Identity); recErr != nil {
					// The post went out; an unrecorded identity risks a
					// duplicate next run, which is the documented trade-off.
					logging.Error(logger, "failed to record posted identity", recErr)
				}
			}
			if r.cfg.PostDelay > 0 && !r.cfg.DryRun && i < len(captures)-1 {
				r.sleep(ctx, r.cfg.PostDelay)
			}
		case publish.FailedAuth:
			summary.Failed++
			logging.Error(logger, "authorization failure, aborting remaining posts", err)
			return
		default:
			summary.Failed++
			logging.Error(logger, "post failed, continuing", err)
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
