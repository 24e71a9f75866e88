package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"finaltabs/internal/domain"
)

type flakyProvider struct {
	scoreboardCalls int
	summaryCalls    int
	failuresBefore  int
}

func (f *flakyProvider) FetchFinishedGames(ctx context.Context, date string) ([]domain.Game, error) {
	f.scoreboardCalls++
	if f.scoreboardCalls <= f.failuresBefore {
		return nil, errors.New("boom")
	}
	return []domain.Game{{ID: "g1"}}, nil
}

func (f *flakyProvider) FetchBoxScore(ctx context.Context, eventID string) (domain.BoxScore, error) {
	f.summaryCalls++
	if f.summaryCalls <= f.failuresBefore {
		return domain.BoxScore{}, errors.New("boom")
	}
	return domain.BoxScore{Teams: []domain.TeamBox{{TeamID: "13"}}}, nil
}

func TestRetryingProviderRecovers(t *testing.T) {
	inner := &flakyProvider{failuresBefore: 2}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	games, err := p.FetchFinishedGames(context.Background(), "20250211")
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if len(games) != 1 || inner.scoreboardCalls != 3 {
		t.Fatalf("expected 3 attempts and 1 game, got %d attempts %d games", inner.scoreboardCalls, len(games))
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failuresBefore: 10}
	p := NewRetryingProvider(inner, nil, 2, time.Millisecond)

	if _, err := p.FetchFinishedGames(context.Background(), "20250211"); err == nil {
		t.Fatalf("expected error after exhausting attempts")
	}
	if inner.scoreboardCalls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.scoreboardCalls)
	}
}

func TestRetryingProviderBoxScore(t *testing.T) {
	inner := &flakyProvider{failuresBefore: 1}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	box, err := p.FetchBoxScore(context.Background(), "evt1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(box.Teams) != 1 {
		t.Fatalf("expected team lines, got %+v", box)
	}
}

func TestRetryingProviderHonorsContext(t *testing.T) {
	inner := &flakyProvider{failuresBefore: 10}
	p := NewRetryingProvider(inner, nil, 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.FetchFinishedGames(ctx, "20250211"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
