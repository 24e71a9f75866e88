package espn

import (
	"strconv"
	"time"

	"finaltabs/internal/domain"
)

// ESPN event dates omit seconds, e.g. "2025-02-11T03:00Z".
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04Z07:00"}

func mapEvent(e eventResponse, loc *time.Location) domain.Game {
	game := domain.Game{
		ID:        e.ID,
		Date:      parseEventDate(e.Date, loc),
		Completed: e.Status.Type.State == stateFinished,
	}

	if len(e.Competitions) == 0 {
		return game
	}

	for _, c := range e.Competitions[0].Competitors {
		game.Competitors = append(game.Competitors, domain.Competitor{
			TeamID:    c.Team.ID,
			Name:      c.Team.DisplayName,
			ShortName: c.Team.ShortDisplayName,
			Abbrev:    c.Team.Abbreviation,
			Logo:      c.Team.Logo,
			Score:     parsePoints(c.Score),
			Winner:    c.Winner,
		})
	}
	return game
}

func mapSummary(s summaryResponse) domain.BoxScore {
	box := domain.BoxScore{}
	for _, p := range s.Boxscore.Players {
		if len(p.Statistics) == 0 {
			continue
		}
		stats := p.Statistics[0]
		ptsIndex := indexOf(stats.Labels, pointsLabel)
		if ptsIndex < 0 {
			continue
		}

		tb := domain.TeamBox{TeamID: p.Team.ID}
		for _, a := range stats.Athletes {
			points := 0
			if ptsIndex < len(a.Stats) {
				points = parsePoints(a.Stats[ptsIndex])
			}
			tb.Lines = append(tb.Lines, domain.BoxScoreLine{
				Name:   a.Athlete.DisplayName,
				Points: points,
			})
		}
		box.Teams = append(box.Teams, tb)
	}
	return box
}

// parseEventDate parses an upstream UTC timestamp and shifts it into loc.
// The receipt page derives its keys from the date in the browser's zone, so
// identities built here must use the same calendar day, not the UTC one.
func parseEventDate(raw string, loc *time.Location) time.Time {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc)
		}
	}
	return time.Time{}
}

// parsePoints treats unparsable values (DNP dashes, empty strings) as zero.
func parsePoints(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
