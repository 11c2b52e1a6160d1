package model

// api-basketball (api-sports) v1 响应结构

// BBGamesResponse /games
type BBGamesResponse struct {
	Response []BBGame `json:"response"`
}

type BBGame struct {
	ID     int      `json:"id"`
	Date   string   `json:"date"`
	Status BBStatus `json:"status"`
	League BBLeague `json:"league"`
	Teams  BBTeams  `json:"teams"`
	Scores BBScores `json:"scores"`
}

type BBStatus struct {
	Long  string `json:"long"`
	Short string `json:"short"`
}

// BBLeague season 在 /games 中是字符串（"2024-2025"）
type BBLeague struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season any    `json:"season"`
	Logo   string `json:"logo"`
}

type BBTeams struct {
	Home BBTeam `json:"home"`
	Away BBTeam `json:"away"`
}

type BBTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type BBScores struct {
	Home BBScore `json:"home"`
	Away BBScore `json:"away"`
}

type BBScore struct {
	Total *int `json:"total"`
}

// BBStandingsResponse /standings，response 按分组嵌套
type BBStandingsResponse struct {
	Response [][]BBStandingEntry `json:"response"`
}

type BBStandingEntry struct {
	Position int             `json:"position"`
	Team     BBTeam          `json:"team"`
	Group    BBStandingGroup `json:"group"`
	Games    BBStandingGames `json:"games"`
	Points   BBStandingPts   `json:"points"`
	Form     string          `json:"form"` // "WWLWL"
}

type BBStandingGroup struct {
	Name string `json:"name"`
}

type BBStandingGames struct {
	Played BBStandingPlayed `json:"played"`
	Win    BBStandingAgg    `json:"win"`
	Lose   BBStandingAgg    `json:"lose"`
}

type BBStandingPlayed struct {
	Home int `json:"home"`
	Away int `json:"away"`
	All  int `json:"all"`
}

type BBStandingAgg struct {
	Total int `json:"total"`
}

type BBStandingPts struct {
	For     int `json:"for"`
	Against int `json:"against"`
}
