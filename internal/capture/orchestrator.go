package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"finaltabs/internal/domain"
	"finaltabs/internal/logging"
)

const (
	defaultLoadTimeout    = 30 * time.Second
	defaultOverlayTimeout = 5 * time.Second
	defaultSettleDelay    = time.Second
	defaultDismissDelay   = 800 * time.Millisecond
)

// Config bounds the orchestrator's waits. Zero values select defaults.
type Config struct {
	URL            string
	LoadTimeout    time.Duration
	OverlayTimeout time.Duration
	SettleDelay    time.Duration
	DismissDelay   time.Duration
}

// Orchestrator walks the receipt page's winner keys in document order and
// captures one image per receipt. Captures run strictly sequentially: the
// page is a single shared surface, never two overlays at once.
type Orchestrator struct {
	engine Engine
	logger *slog.Logger
	cfg    Config
	sleep  func(context.Context, time.Duration)
}

// New constructs an orchestrator over the given engine.
func New(engine Engine, logger *slog.Logger, cfg Config) *Orchestrator {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}
	if cfg.OverlayTimeout <= 0 {
		cfg.OverlayTimeout = defaultOverlayTimeout
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = defaultSettleDelay
	}
	if cfg.DismissDelay <= 0 {
		cfg.DismissDelay = defaultDismissDelay
	}
	return &Orchestrator{
		engine: engine,
		logger: logger,
		cfg:    cfg,
		sleep:  sleepCtx,
	}
}

type keyInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score string `json:"score"`
}

// CaptureAll navigates to the receipt page and captures every rendered
// winner receipt, in the order the keys appear. An empty page ("no finished
// games") returns an empty slice, not an error. A timeout waiting for an
// overlay aborts the remaining loop; captures taken so far are discarded
// with the error so the caller can decide what to post.
func (o *Orchestrator) CaptureAll(ctx context.Context) ([]domain.Capture, error) {
	if err := o.engine.Navigate(ctx, o.cfg.URL); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", o.cfg.URL, err)
	}

	if err := o.engine.WaitVisible(ctx, selectorReady, o.cfg.LoadTimeout); err != nil {
		return nil, &TimeoutError{Selector: selectorReady, Timeout: o.cfg.LoadTimeout, Err: err}
	}

	var hasKeys bool
	if err := o.engine.Evaluate(ctx, hasKeysScript, &hasKeys); err != nil {
		return nil, fmt.Errorf("check for winner keys: %w", err)
	}
	if !hasKeys {
		var pageText string
		_ = o.engine.Evaluate(ctx, pageTextScript, &pageText)
		logging.Info(o.logger, "no finished games rendered", "page_text", pageText)
		return []domain.Capture{}, nil
	}

	var keys []keyInfo
	if err := o.engine.Evaluate(ctx, discoverKeysScript, &keys); err != nil {
		return nil, fmt.Errorf("discover winner keys: %w", err)
	}
	logging.Info(o.logger, "winner keys discovered", logging.FieldCount, len(keys))

	captures := make([]domain.Capture, 0, len(keys))
	for _, key := range keys {
		c, err := o.captureOne(ctx, key)
		if err != nil {
			return nil, err
		}
		captures = append(captures, c)
	}
	return captures, nil
}

func (o *Orchestrator) captureOne(ctx context.Context, key keyInfo) (domain.Capture, error) {
	keySelector := fmt.Sprintf(`%s[data-team-id=%q]`, selectorKey, key.ID)
	if err := o.engine.Click(ctx, keySelector); err != nil {
		return domain.Capture{}, fmt.Errorf("click %s: %w", key.ID, err)
	}

	if err := o.engine.WaitVisible(ctx, selectorOverlay, o.cfg.OverlayTimeout); err != nil {
		return domain.Capture{}, &TimeoutError{Selector: selectorOverlay, Timeout: o.cfg.OverlayTimeout, Err: err}
	}

	if err := o.engine.Evaluate(ctx, freezeAnimationsScript, nil); err != nil {
		return domain.Capture{}, fmt.Errorf("freeze animations for %s: %w", key.ID, err)
	}
	if err := o.engine.Evaluate(ctx, awaitImagesScript, nil); err != nil {
		return domain.Capture{}, fmt.Errorf("await images for %s: %w", key.ID, err)
	}
	o.sleep(ctx, o.cfg.SettleDelay)

	var tagline string
	if err := o.engine.Evaluate(ctx, taglineScript, &tagline); err != nil {
		return domain.Capture{}, fmt.Errorf("read tagline for %s: %w", key.ID, err)
	}

	image, err := o.engine.Screenshot(ctx, selectorReceipt)
	if err != nil {
		return domain.Capture{}, fmt.Errorf("screenshot %s: %w", key.ID, err)
	}

	winnerScore, loserScore := parseScorePair(key.Score)
	capture := domain.Capture{
		Identity:    key.ID,
		TeamAbbrev:  key.Name,
		WinnerScore: winnerScore,
		LoserScore:  loserScore,
		Tagline:     tagline,
		Image:       image,
	}
	logging.Info(o.logger, "captured receipt",
		logging.FieldIdentity, key.ID,
		logging.FieldTeam, key.Name,
		"score", key.Score,
	)

	if err := o.engine.Evaluate(ctx, dismissScript, nil); err != nil {
		return domain.Capture{}, fmt.Errorf("dismiss %s: %w", key.ID, err)
	}
	o.sleep(ctx, o.cfg.DismissDelay)

	return capture, nil
}

// parseScorePair splits a "120-110" key label into its two totals.
func parseScorePair(raw string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	winner, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	loser, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	return winner, loser
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
