package domain

import "time"

// Competitor is one side of a game as reported by the scoreboard source.
type Competitor struct {
	TeamID    string `json:"teamId"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Abbrev    string `json:"abbrev"`
	Logo      string `json:"logo"`
	Score     int    `json:"score"`
	Winner    bool   `json:"winner"`
}

// Game is one contest. The pipeline only admits games whose upstream status
// indicates completion; Completed carries that flag through.
type Game struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Completed   bool         `json:"completed"`
	Competitors []Competitor `json:"competitors"`
}

// Winner returns the competitor flagged as winner, if any.
func (g Game) Winner() (Competitor, bool) {
	for _, c := range g.Competitors {
		if c.Winner {
			return c, true
		}
	}
	return Competitor{}, false
}

// Opponent returns the first competitor whose team id differs from teamID.
func (g Game) Opponent(teamID string) (Competitor, bool) {
	for _, c := range g.Competitors {
		if c.TeamID != teamID {
			return c, true
		}
	}
	return Competitor{}, false
}

// BoxScoreLine is one player's scoring contribution.
type BoxScoreLine struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// TeamBox groups box-score lines by team.
type TeamBox struct {
	TeamID string         `json:"teamId"`
	Lines  []BoxScoreLine `json:"lines"`
}

// BoxScore is the per-game summary payload reduced to scoring lines.
type BoxScore struct {
	Teams []TeamBox `json:"teams"`
}

// TeamLines returns the lines for the given team id, if present.
func (b BoxScore) TeamLines(teamID string) ([]BoxScoreLine, bool) {
	for _, tb := range b.Teams {
		if tb.TeamID == teamID {
			return tb.Lines, true
		}
	}
	return nil, false
}

// Receipt is the artifact computed per winning team per game.
type Receipt struct {
	Identity       string         `json:"identity"`
	TeamAbbrev     string         `json:"teamAbbrev"`
	TeamName       string         `json:"teamName"`
	TeamLogo       string         `json:"teamLogo"`
	OpponentAbbrev string         `json:"opponentAbbrev"`
	OpponentName   string         `json:"opponentName"`
	WinnerScore    int            `json:"winnerScore"`
	LoserScore     int            `json:"loserScore"`
	Tagline        string         `json:"tagline"`
	LineItems      []BoxScoreLine `json:"lineItems"`
	Subtotal       int            `json:"subtotal"`
	Bonus          int            `json:"bonus"`

	// Image is populated only after capture.
	Image []byte `json:"-"`
}

// Capture pairs a rendered receipt image with the fields needed to caption it.
type Capture struct {
	Identity    string
	TeamAbbrev  string
	WinnerScore int
	LoserScore  int
	Tagline     string
	Image       []byte
}
