package model

// The Odds API v4 /sports/{key}/odds 返回的单场赛事
type OddsEvent struct {
	ID           string          `json:"id"`
	SportKey     string          `json:"sport_key"`
	CommenceTime string          `json:"commence_time"`
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	Bookmakers   []OddsBookmaker `json:"bookmakers"`
}

type OddsBookmaker struct {
	Key        string       `json:"key"`
	Title      string       `json:"title"`
	LastUpdate string       `json:"last_update"`
	Markets    []OddsMarket `json:"markets"`
}

type OddsMarket struct {
	Key      string        `json:"key"` // h2h / totals / btts
	Outcomes []OddsOutcome `json:"outcomes"`
}

type OddsOutcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point"` // 仅 totals 有
}
