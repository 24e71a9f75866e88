package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultHTTPTimeout = 10 * time.Second

	// stateFinished is the scoreboard status state for concluded games.
	stateFinished = "post"

	pointsLabel = "PTS"
)
