package model

// football-data.org v4 响应结构（字段按需取，缺失字段保持零值）

// FDMatchesResponse /competitions/{code}/matches、/teams/{id}/matches、/matches/{id}/head2head
type FDMatchesResponse struct {
	Matches []FDMatch `json:"matches"`
}

type FDMatch struct {
	ID          int           `json:"id"`
	UTCDate     string        `json:"utcDate"`
	Status      string        `json:"status"`
	HomeTeam    FDTeam        `json:"homeTeam"`
	AwayTeam    FDTeam        `json:"awayTeam"`
	Score       FDScore       `json:"score"`
	Competition FDCompetition `json:"competition"`
}

type FDTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Crest     string `json:"crest"`
}

type FDScore struct {
	Winner   string        `json:"winner"` // HOME_TEAM / AWAY_TEAM / DRAW
	FullTime FDScorePeriod `json:"fullTime"`
}

type FDScorePeriod struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type FDCompetition struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// FDStandingsResponse /competitions/{code}/standings
type FDStandingsResponse struct {
	Competition FDCompetition   `json:"competition"`
	Standings   []FDStandingSet `json:"standings"`
}

type FDStandingSet struct {
	Type  string            `json:"type"` // TOTAL / HOME / AWAY
	Table []FDStandingEntry `json:"table"`
}

type FDStandingEntry struct {
	Position       int    `json:"position"`
	Team           FDTeam `json:"team"`
	PlayedGames    int    `json:"playedGames"`
	Form           string `json:"form"` // "W,D,L,W,W"，可能为空
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}
