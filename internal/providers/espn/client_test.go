package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finaltabs/internal/domain"
	"finaltabs/internal/providers"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401585601",
      "date": "2025-02-11T03:00Z",
      "status": {"type": {"state": "post"}},
      "competitions": [{"competitors": [
        {"id": "13", "winner": true, "score": "120", "team": {"id": "13", "abbreviation": "LAL", "displayName": "Los Angeles Lakers"}},
        {"id": "26", "score": "110", "team": {"id": "26", "abbreviation": "UTAH"}}
      ]}]
    },
    {
      "id": "401585602",
      "date": "2025-02-11T03:30Z",
      "status": {"type": {"state": "in"}},
      "competitions": [{"competitors": []}]
    }
  ]
}`

const summaryFixture = `{
  "boxscore": {"players": [
    {"team": {"id": "13"}, "statistics": [{
      "labels": ["MIN", "PTS"],
      "athletes": [
        {"athlete": {"displayName": "Player A"}, "stats": ["36", "32"]},
        {"athlete": {"displayName": "Player B"}, "stats": ["28", "10"]}
      ]
    }]}
  ]}
}`

func TestFetchFinishedGamesFiltersLiveGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scoreboard" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("dates"); got != "20250211" {
			t.Fatalf("unexpected dates param %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	games, err := client.FetchFinishedGames(context.Background(), "20250211")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	if len(games) != 1 || games[0].ID != "401585601" {
		t.Fatalf("expected only the finished game, got %+v", games)
	}
}

func TestFetchFinishedGamesAppliesTimezone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timezone: "America/New_York"})
	games, err := client.FetchFinishedGames(context.Background(), "20250211")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	// 03:00Z is still the previous evening in New York; identities derived
	// from this date must match the day the page renders.
	if got := games[0].Date.Day(); got != 10 {
		t.Fatalf("expected game date on the 10th in New York, got %v", games[0].Date)
	}
	if got := domain.Identity("LAL", games[0].Date); got != "LAL-0210" {
		t.Fatalf("expected identity keyed to the local day, got %s", got)
	}
}

func TestFetchFinishedGamesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchFinishedGames(context.Background(), "20250211")
	pErr, ok := providers.AsProviderError(err)
	if !ok || pErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected provider error with status 502, got %v", err)
	}
}

func TestFetchBoxScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("event"); got != "401585601" {
			t.Fatalf("unexpected event param %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(summaryFixture))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	box, err := client.FetchBoxScore(context.Background(), "401585601")
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}
	lines, ok := box.TeamLines("13")
	if !ok || len(lines) != 2 || lines[0].Points != 32 {
		t.Fatalf("unexpected box score: %+v ok=%v", lines, ok)
	}
}

func TestFetchBoxScoreUnreachable(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"})
	if _, err := client.FetchBoxScore(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for unreachable host")
	}
}
