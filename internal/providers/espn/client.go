package espn

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"finaltabs/internal/domain"
	"finaltabs/internal/providers"
)

// Config controls how the espn client reaches the upstream API. Timezone
// names the zone game dates are mapped into; empty selects the host's local
// zone, which is the zone the receipt page renders in.
type Config struct {
	BaseURL    string
	HTTPClient *resty.Client
	Timezone   string
}

// Client fetches scoreboard and summary data from the ESPN site API and maps
// them to domain models.
type Client struct {
	baseURL string
	http    *resty.Client
	loc     *time.Location
}

// NewClient constructs an espn client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		http:    resolveHTTPClient(cfg.HTTPClient),
		loc:     resolveLocation(cfg.Timezone),
	}
}

// FetchFinishedGames retrieves the scoreboard for the given YYYYMMDD date and
// returns only games whose status state indicates the game has concluded.
func (c *Client) FetchFinishedGames(ctx context.Context, date string) ([]domain.Game, error) {
	var payload scoreboardResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("dates", date).
		SetResult(&payload).
		Get(c.baseURL + "/scoreboard")
	if err != nil {
		return nil, &providers.ProviderError{Provider: providerName, Op: "scoreboard", Err: err}
	}
	if resp.IsError() {
		return nil, &providers.ProviderError{Provider: providerName, Op: "scoreboard", StatusCode: resp.StatusCode()}
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, e := range payload.Events {
		if e.Status.Type.State != stateFinished {
			continue
		}
		games = append(games, mapEvent(e, c.loc))
	}
	return games, nil
}

// FetchBoxScore retrieves the summary for one event and reduces it to
// per-team scoring lines.
func (c *Client) FetchBoxScore(ctx context.Context, eventID string) (domain.BoxScore, error) {
	var payload summaryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("event", eventID).
		SetResult(&payload).
		Get(c.baseURL + "/summary")
	if err != nil {
		return domain.BoxScore{}, &providers.ProviderError{Provider: providerName, Op: "summary", Err: err}
	}
	if resp.IsError() {
		return domain.BoxScore{}, &providers.ProviderError{Provider: providerName, Op: "summary", StatusCode: resp.StatusCode()}
	}

	return mapSummary(payload), nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveHTTPClient(client *resty.Client) *resty.Client {
	if client != nil {
		return client
	}
	return resty.New().SetTimeout(defaultHTTPTimeout)
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.Local
}
