package footballdata

import (
	"strconv"

	"MatchOdds/internal/model"
)

// statusTable football-data 状态 → 统一状态，未知状态按未开赛处理
var statusTable = map[string]model.MatchStatus{
	"SCHEDULED": model.StatusNotStarted,
	"TIMED":     model.StatusNotStarted,
	"IN_PLAY":   model.StatusLive,
	"PAUSED":    model.StatusHalfTime,
	"FINISHED":  model.StatusFinished,
	"AWARDED":   model.StatusFinished,
	"POSTPONED": model.StatusPostponed,
	"SUSPENDED": model.StatusPostponed,
	"CANCELLED": model.StatusCancelled,
}

// MapStatus 映射比赛状态
func MapStatus(status string) model.MatchStatus {
	if s, ok := statusTable[status]; ok {
		return s
	}
	return model.StatusNotStarted
}

// ParseMatch 纯转换，不带赔率和快速分析（由 service 层补齐）
func ParseMatch(raw model.FDMatch, league model.League) model.Match {
	leagueName := league.Name
	if leagueName == "" {
		leagueName = raw.Competition.Name
	}
	if leagueName == "" {
		leagueName = "Unknown"
	}

	m := model.Match{
		ID:         model.FootballIDPrefix + strconv.Itoa(raw.ID),
		Sport:      model.SportFootball,
		League:     leagueName,
		LeagueID:   league.Code,
		LeagueCode: league.Code,
		HomeTeam:   teamName(raw.HomeTeam),
		AwayTeam:   teamName(raw.AwayTeam),
		HomeLogo:   raw.HomeTeam.Crest,
		AwayLogo:   raw.AwayTeam.Crest,
		MatchDate:  raw.UTCDate,
		Status:     MapStatus(raw.Status),
		HomeTeamID: raw.HomeTeam.ID,
		AwayTeamID: raw.AwayTeam.ID,
	}
	if m.Status.Started() {
		m.HomeScore = raw.Score.FullTime.Home
		m.AwayScore = raw.Score.FullTime.Away
	}
	return m
}

func teamName(t model.FDTeam) string {
	if t.Name != "" {
		return t.Name
	}
	if t.ShortName != "" {
		return t.ShortName
	}
	return "Unknown"
}

// ParseHeadToHead 交锋记录只取日期、队名、全场比分
func ParseHeadToHead(matches []model.FDMatch) []model.HeadToHead {
	h2h := make([]model.HeadToHead, 0, len(matches))
	for _, m := range matches {
		h2h = append(h2h, model.HeadToHead{
			Date:      m.UTCDate,
			Home:      m.HomeTeam.Name,
			Away:      m.AwayTeam.Name,
			HomeScore: m.Score.FullTime.Home,
			AwayScore: m.Score.FullTime.Away,
		})
	}
	return h2h
}

// TeamForm 从球队视角给出 W/D/L，最多 limit 场；比分缺失按 0 计
func TeamForm(teamID int, matches []model.FDMatch, limit int) []string {
	form := make([]string, 0, limit)
	for _, m := range matches {
		if len(form) >= limit {
			break
		}
		home, away := intOrZero(m.Score.FullTime.Home), intOrZero(m.Score.FullTime.Away)
		own, opp := away, home
		if m.HomeTeam.ID == teamID {
			own, opp = home, away
		}
		form = append(form, result(own, opp))
	}
	return form
}

// ParseStandings 取第一张表（TOTAL）
func ParseStandings(resp *model.FDStandingsResponse) []model.Standing {
	standings := make([]model.Standing, 0)
	if resp == nil || len(resp.Standings) == 0 {
		return standings
	}
	for _, e := range resp.Standings[0].Table {
		standings = append(standings, model.Standing{
			Position:       e.Position,
			Team:           teamName(e.Team),
			TeamLogo:       e.Team.Crest,
			Played:         e.PlayedGames,
			Won:            e.Won,
			Drawn:          e.Draw,
			Lost:           e.Lost,
			GoalsFor:       e.GoalsFor,
			GoalsAgainst:   e.GoalsAgainst,
			GoalDifference: e.GoalDifference,
			Points:         e.Points,
			Form:           model.ParseForm(e.Form, 5),
		})
	}
	return standings
}

func result(own, opp int) string {
	switch {
	case own > opp:
		return "W"
	case own < opp:
		return "L"
	default:
		return "D"
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
