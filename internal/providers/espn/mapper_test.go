package espn

import (
	"testing"
	"time"
)

func TestMapEvent(t *testing.T) {
	e := eventResponse{
		ID:     "401585601",
		Date:   "2025-02-11T03:00Z",
		Status: statusResponse{Type: statusTypeResponse{State: "post"}},
		Competitions: []competitionResponse{{
			Competitors: []competitorResponse{
				{ID: "13", Winner: true, Score: "120", Team: teamResponse{ID: "13", DisplayName: "Los Angeles Lakers", ShortDisplayName: "Lakers", Abbreviation: "LAL", Logo: "lal.png"}},
				{ID: "26", Score: "110", Team: teamResponse{ID: "26", Abbreviation: "UTAH"}},
			},
		}},
	}

	game := mapEvent(e, time.UTC)
	if game.ID != "401585601" || !game.Completed {
		t.Fatalf("unexpected game: %+v", game)
	}
	if game.Date.Month() != time.February || game.Date.Day() != 11 {
		t.Fatalf("unexpected date: %v", game.Date)
	}

	winner, ok := game.Winner()
	if !ok || winner.Abbrev != "LAL" || winner.Score != 120 {
		t.Fatalf("unexpected winner: %+v ok=%v", winner, ok)
	}
}

func TestMapEventWithoutCompetitions(t *testing.T) {
	game := mapEvent(eventResponse{ID: "x"}, time.UTC)
	if len(game.Competitors) != 0 {
		t.Fatalf("expected no competitors, got %+v", game.Competitors)
	}
}

func TestMapSummaryExtractsPointsColumn(t *testing.T) {
	s := summaryResponse{Boxscore: boxscoreResponse{Players: []playersResponse{{
		Team: teamResponse{ID: "13"},
		Statistics: []statisticResponse{{
			Labels: []string{"MIN", "FG", "PTS"},
			Athletes: []athleteResponse{
				{Athlete: athleteInfoResponse{DisplayName: "Player A"}, Stats: []string{"36", "12-20", "32"}},
				{Athlete: athleteInfoResponse{DisplayName: "Player B"}, Stats: []string{"12", "2-4", "--"}},
			},
		}},
	}}}}

	box := mapSummary(s)
	lines, ok := box.TeamLines("13")
	if !ok || len(lines) != 2 {
		t.Fatalf("unexpected lines: %+v ok=%v", lines, ok)
	}
	if lines[0].Name != "Player A" || lines[0].Points != 32 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Points != 0 {
		t.Fatalf("expected unparsable points to map to 0, got %d", lines[1].Points)
	}
}

func TestMapSummarySkipsTeamsWithoutPointsLabel(t *testing.T) {
	s := summaryResponse{Boxscore: boxscoreResponse{Players: []playersResponse{{
		Team:       teamResponse{ID: "26"},
		Statistics: []statisticResponse{{Labels: []string{"MIN", "FG"}}},
	}}}}

	if box := mapSummary(s); len(box.Teams) != 0 {
		t.Fatalf("expected no team box without PTS label, got %+v", box.Teams)
	}
}

func TestParseEventDateFallbacks(t *testing.T) {
	if parseEventDate("2025-02-11T03:00:00Z", time.UTC).IsZero() {
		t.Fatalf("expected RFC3339 date to parse")
	}
	if parseEventDate("2025-02-11T03:00Z", time.UTC).IsZero() {
		t.Fatalf("expected minute-precision date to parse")
	}
	if !parseEventDate("not-a-date", time.UTC).IsZero() {
		t.Fatalf("expected invalid date to map to zero time")
	}
}

func TestParseEventDateShiftsIntoLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// A late tip-off crosses midnight UTC; the calendar day must come from
	// the configured zone, matching the day the page renders.
	got := parseEventDate("2025-02-11T03:00Z", ny)
	if got.Month() != time.February || got.Day() != 10 {
		t.Fatalf("expected Feb 10 in New York, got %v", got)
	}
}

func TestMapEventDateMatchesPageDay(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	e := eventResponse{
		ID:     "401585601",
		Date:   "2025-02-11T03:00Z",
		Status: statusResponse{Type: statusTypeResponse{State: "post"}},
	}
	game := mapEvent(e, ny)
	if game.Date.Day() != 10 {
		t.Fatalf("expected game date on the 10th, got %v", game.Date)
	}
}

func TestResolveLocation(t *testing.T) {
	if loc := resolveLocation(""); loc != time.Local {
		t.Fatalf("expected empty name to resolve to the host zone, got %v", loc)
	}
	if loc := resolveLocation("America/New_York"); loc.String() != "America/New_York" {
		t.Fatalf("unexpected location %v", loc)
	}
	if loc := resolveLocation("Not/AZone"); loc != time.Local {
		t.Fatalf("expected invalid name to fall back to the host zone, got %v", loc)
	}
}
