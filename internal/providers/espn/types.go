package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Status       statusResponse        `json:"status"`
	Competitions []competitionResponse `json:"competitions"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	State string `json:"state"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	ID     string       `json:"id"`
	Winner bool         `json:"winner"`
	Score  string       `json:"score"`
	Team   teamResponse `json:"team"`
}

type teamResponse struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Logo             string `json:"logo"`
}

type summaryResponse struct {
	Boxscore boxscoreResponse `json:"boxscore"`
}

type boxscoreResponse struct {
	Players []playersResponse `json:"players"`
}

type playersResponse struct {
	Team       teamResponse        `json:"team"`
	Statistics []statisticResponse `json:"statistics"`
}

type statisticResponse struct {
	Labels   []string          `json:"labels"`
	Athletes []athleteResponse `json:"athletes"`
}

type athleteResponse struct {
	Athlete athleteInfoResponse `json:"athlete"`
	Stats   []string            `json:"stats"`
}

type athleteInfoResponse struct {
	DisplayName string `json:"displayName"`
}
