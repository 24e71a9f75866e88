// Package receipt turns a finished game into the structured receipt document
// posted for its winning team. Building is a pure transform: no I/O, no clock.
package receipt

import (
	"errors"
	"fmt"
	"sort"

	"finaltabs/internal/domain"
)

// Tagline is the fixed receipt caption line.
const Tagline = "Everyone Eats"

// lineItemThreshold is a display cutoff, not a correctness one: players below
// it still count toward the bonus bucket.
const lineItemThreshold = 10

// MalformedGameError reports a game whose flagged winner did not outscore the
// loser. This is a data-integrity fault on the provider side; the receipt is
// not built and the scores are never swapped.
type MalformedGameError struct {
	EventID     string
	WinnerScore int
	LoserScore  int
}

func (e *MalformedGameError) Error() string {
	return fmt.Sprintf("event %s: winner score %d does not beat loser score %d", e.EventID, e.WinnerScore, e.LoserScore)
}

// AsMalformedGameError attempts to unwrap an error into a MalformedGameError.
func AsMalformedGameError(err error) (*MalformedGameError, bool) {
	var mErr *MalformedGameError
	if errors.As(err, &mErr) {
		return mErr, true
	}
	return nil, false
}

// Build constructs the Receipt for the winning competitor of a finished game.
// A box score missing the winner's team yields a receipt with no line items
// rather than an error; the receipt is still postable.
func Build(game domain.Game, winner, loser domain.Competitor, box domain.BoxScore) (domain.Receipt, error) {
	if winner.Score <= loser.Score {
		return domain.Receipt{}, &MalformedGameError{
			EventID:     game.ID,
			WinnerScore: winner.Score,
			LoserScore:  loser.Score,
		}
	}

	items := lineItems(box, winner.TeamID)

	subtotal := 0
	for _, item := range items {
		subtotal += item.Points
	}

	return domain.Receipt{
		Identity:       domain.Identity(winner.Abbrev, game.Date),
		TeamAbbrev:     winner.Abbrev,
		TeamName:       winner.Name,
		TeamLogo:       winner.Logo,
		OpponentAbbrev: loser.Abbrev,
		OpponentName:   loser.Name,
		WinnerScore:    winner.Score,
		LoserScore:     loser.Score,
		Tagline:        Tagline,
		LineItems:      items,
		Subtotal:       subtotal,
		// Bonus may be zero or even negative on inconsistent provider data;
		// it is propagated as-is, never clamped.
		Bonus: winner.Score - subtotal,
	}, nil
}

func lineItems(box domain.BoxScore, teamID string) []domain.BoxScoreLine {
	lines, ok := box.TeamLines(teamID)
	if !ok {
		return []domain.BoxScoreLine{}
	}

	items := make([]domain.BoxScoreLine, 0, len(lines))
	for _, line := range lines {
		if line.Points >= lineItemThreshold {
			items = append(items, line)
		}
	}
	// Stable sort keeps input order for equal point totals.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Points > items[j].Points
	})
	return items
}
