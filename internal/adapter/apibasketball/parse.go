package apibasketball

import (
	"sort"
	"strconv"

	"MatchOdds/internal/model"
)

// statusTable api-basketball 的 status.short → 统一状态
var statusTable = map[string]model.MatchStatus{
	"NS":   model.StatusNotStarted,
	"Q1":   model.StatusLive,
	"Q2":   model.StatusLive,
	"Q3":   model.StatusLive,
	"Q4":   model.StatusLive,
	"OT":   model.StatusLive,
	"BT":   model.StatusLive,
	"HT":   model.StatusHalfTime,
	"FT":   model.StatusFinished,
	"AOT":  model.StatusFinished,
	"AWD":  model.StatusFinished,
	"POST": model.StatusPostponed,
	"SUSP": model.StatusPostponed,
	"CANC": model.StatusCancelled,
	"ABD":  model.StatusCancelled,
}

func MapStatus(short string) model.MatchStatus {
	if s, ok := statusTable[short]; ok {
		return s
	}
	return model.StatusNotStarted
}

// ParseGame 纯转换
func ParseGame(raw model.BBGame, league model.League) model.Match {
	leagueName := league.Name
	if leagueName == "" {
		leagueName = raw.League.Name
	}
	leagueID := league.ProviderID
	if raw.League.ID != 0 {
		leagueID = strconv.Itoa(raw.League.ID)
	}

	m := model.Match{
		ID:         model.BasketballIDPrefix + strconv.Itoa(raw.ID),
		Sport:      model.SportBasketball,
		League:     leagueName,
		LeagueID:   leagueID,
		LeagueCode: league.Code,
		HomeTeam:   teamName(raw.Teams.Home),
		AwayTeam:   teamName(raw.Teams.Away),
		HomeLogo:   raw.Teams.Home.Logo,
		AwayLogo:   raw.Teams.Away.Logo,
		MatchDate:  raw.Date,
		Status:     MapStatus(raw.Status.Short),
		HomeTeamID: raw.Teams.Home.ID,
		AwayTeamID: raw.Teams.Away.ID,
	}
	if m.Status.Started() {
		m.HomeScore = raw.Scores.Home.Total
		m.AwayScore = raw.Scores.Away.Total
	}
	return m
}

func teamName(t model.BBTeam) string {
	if t.Name == "" {
		return "Unknown"
	}
	return t.Name
}

// Upcoming 只保留未开赛的比赛，最多 limit 场，保持上游顺序
func Upcoming(games []model.BBGame, limit int) []model.BBGame {
	out := make([]model.BBGame, 0, limit)
	for _, g := range games {
		if len(out) >= limit {
			break
		}
		if g.Status.Short == "NS" {
			out = append(out, g)
		}
	}
	return out
}

// ParseHeadToHead 只保留已完赛的交锋，按时间倒序
func ParseHeadToHead(games []model.BBGame, limit int) []model.HeadToHead {
	finished := finishedByDateDesc(games)
	h2h := make([]model.HeadToHead, 0, limit)
	for _, g := range finished {
		if len(h2h) >= limit {
			break
		}
		h2h = append(h2h, model.HeadToHead{
			Date:      g.Date,
			Home:      g.Teams.Home.Name,
			Away:      g.Teams.Away.Name,
			HomeScore: g.Scores.Home.Total,
			AwayScore: g.Scores.Away.Total,
		})
	}
	return h2h
}

// TeamForm 最近 limit 场已完赛比赛的 W/L（篮球没有平局，同分记 D）
func TeamForm(teamID int, games []model.BBGame, limit int) []string {
	form := make([]string, 0, limit)
	for _, g := range finishedByDateDesc(games) {
		if len(form) >= limit {
			break
		}
		if g.Scores.Home.Total == nil || g.Scores.Away.Total == nil {
			continue
		}
		home, away := *g.Scores.Home.Total, *g.Scores.Away.Total
		own, opp := away, home
		if g.Teams.Home.ID == teamID {
			own, opp = home, away
		}
		switch {
		case own > opp:
			form = append(form, "W")
		case own < opp:
			form = append(form, "L")
		default:
			form = append(form, "D")
		}
	}
	return form
}

func finishedByDateDesc(games []model.BBGame) []model.BBGame {
	finished := make([]model.BBGame, 0, len(games))
	for _, g := range games {
		if MapStatus(g.Status.Short) == model.StatusFinished {
			finished = append(finished, g)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Date > finished[j].Date
	})
	return finished
}

// ParseStandings 拍平分组后按名次排序；篮球积分 = 胜场，得失分记在 goals_for/against
func ParseStandings(groups [][]model.BBStandingEntry) []model.Standing {
	standings := make([]model.Standing, 0)
	for _, group := range groups {
		for _, e := range group {
			standings = append(standings, model.Standing{
				Position:       e.Position,
				Team:           teamName(e.Team),
				TeamLogo:       e.Team.Logo,
				Played:         e.Games.Played.All,
				Won:            e.Games.Win.Total,
				Lost:           e.Games.Lose.Total,
				GoalsFor:       e.Points.For,
				GoalsAgainst:   e.Points.Against,
				GoalDifference: e.Points.For - e.Points.Against,
				Points:         e.Games.Win.Total,
				Form:           model.ParseForm(e.Form, 5),
			})
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Position < standings[j].Position
	})
	return standings
}
