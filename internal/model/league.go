package model

// League 联赛注册表条目
type League struct {
	ID         string `json:"id"` // 足球为联赛代码，篮球为数据源ID
	Code       string `json:"code"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Sport      Sport  `json:"sport"`
	OddsKey    string `json:"odds_key"`              // The Odds API 的 sport key
	ProviderID string `json:"provider_id,omitempty"` // 篮球数据源的联赛ID
}

// 篮球唯一支持的联赛
const (
	EuroLeagueCode       = "EURO"
	EuroLeagueProviderID = "120"
)

// FootballLeagues 足球联赛（顺序即列表接口的拉取顺序）
var FootballLeagues = []League{
	{ID: "PL", Code: "PL", Name: "Premier League", Country: "England", Sport: SportFootball, OddsKey: "soccer_epl"},
	{ID: "PD", Code: "PD", Name: "La Liga", Country: "Spain", Sport: SportFootball, OddsKey: "soccer_spain_la_liga"},
	{ID: "BL1", Code: "BL1", Name: "Bundesliga", Country: "Germany", Sport: SportFootball, OddsKey: "soccer_germany_bundesliga"},
	{ID: "SA", Code: "SA", Name: "Serie A", Country: "Italy", Sport: SportFootball, OddsKey: "soccer_italy_serie_a"},
	{ID: "FL1", Code: "FL1", Name: "Ligue 1", Country: "France", Sport: SportFootball, OddsKey: "soccer_france_ligue_one"},
	{ID: "CL", Code: "CL", Name: "Champions League", Country: "Europe", Sport: SportFootball, OddsKey: "soccer_uefa_champs_league"},
	{ID: "EC", Code: "EC", Name: "Europa League", Country: "Europe", Sport: SportFootball, OddsKey: "soccer_uefa_europa_league"},
}

// BasketballLeagues 篮球联赛
var BasketballLeagues = []League{
	{ID: EuroLeagueProviderID, Code: EuroLeagueCode, Name: "EuroLeague", Country: "Europe", Sport: SportBasketball, OddsKey: "basketball_euroleague", ProviderID: EuroLeagueProviderID},
}

// AllLeagues 足球在前，篮球在后
func AllLeagues() []League {
	all := make([]League, 0, len(FootballLeagues)+len(BasketballLeagues))
	all = append(all, FootballLeagues...)
	return append(all, BasketballLeagues...)
}

// FootballLeague 按代码查足球联赛
func FootballLeague(code string) (League, bool) {
	for _, l := range FootballLeagues {
		if l.Code == code {
			return l, true
		}
	}
	return League{}, false
}

// BasketballLeague 按代码或数据源ID查篮球联赛（EURO / 120 都可以）
func BasketballLeague(codeOrID string) (League, bool) {
	for _, l := range BasketballLeagues {
		if l.Code == codeOrID || l.ProviderID == codeOrID {
			return l, true
		}
	}
	return League{}, false
}
