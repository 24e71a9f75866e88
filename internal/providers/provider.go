package providers

import (
	"context"

	"finaltabs/internal/domain"
)

// ScoreboardProvider fetches finished games for a calendar date.
// The date parameter is an 8-digit YYYYMMDD string. Implementations must
// return only games whose upstream status indicates completion.
type ScoreboardProvider interface {
	FetchFinishedGames(ctx context.Context, date string) ([]domain.Game, error)
}

// SummaryProvider fetches the box score for one event.
type SummaryProvider interface {
	FetchBoxScore(ctx context.Context, eventID string) (domain.BoxScore, error)
}

// GameProvider combines all provider capabilities.
type GameProvider interface {
	ScoreboardProvider
	SummaryProvider
}
