package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finaltabs/internal/domain"
	"finaltabs/internal/logging"
)

// Publisher posts captured receipts through an opaque Poster. In dry-run
// mode it composes and logs the caption and never touches the network.
type Publisher struct {
	poster Poster
	logger *slog.Logger
	dryRun bool
}

// New constructs a Publisher. poster may be nil when dryRun is set.
func New(poster Poster, logger *slog.Logger, dryRun bool) *Publisher {
	return &Publisher{
		poster: poster,
		logger: logger,
		dryRun: dryRun,
	}
}

// Publish uploads the capture's image and publishes it with a composed
// caption. Failures are classified, not retried.
func (p *Publisher) Publish(ctx context.Context, c domain.Capture) (Result, error) {
	text := ComposeCaption(c)

	if p.dryRun {
		logging.Info(p.logger, "dry run, would post",
			logging.FieldIdentity, c.Identity,
			"caption", text,
		)
		return Posted, nil
	}

	mediaRef, err := p.poster.UploadMedia(ctx, c.Image)
	if err != nil {
		return classify(err), fmt.Errorf("upload media for %s: %w", c.Identity, err)
	}

	if err := p.poster.Publish(ctx, text, mediaRef); err != nil {
		return classify(err), fmt.Errorf("publish %s: %w", c.Identity, err)
	}

	logging.Info(p.logger, "posted receipt",
		logging.FieldIdentity, c.Identity,
		logging.FieldTeam, c.TeamAbbrev,
	)
	return Posted, nil
}

// ComposeCaption renders the fixed caption template: tagline, result line,
// hashtags. Team identity and final score are always unambiguous.
func ComposeCaption(c domain.Capture) string {
	return strings.Join([]string{
		c.Tagline,
		fmt.Sprintf("%s win %d-%d", Handle(c.TeamAbbrev), c.WinnerScore, c.LoserScore),
		fmt.Sprintf("#NBA #%s #FinalTabs", strings.ToUpper(c.TeamAbbrev)),
	}, "\n")
}
