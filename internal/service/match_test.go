package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"MatchOdds/internal/config"
	"MatchOdds/internal/model"
)

func fdMatch(id int, date, home, away string) model.FDMatch {
	return model.FDMatch{
		ID:       id,
		UTCDate:  date,
		Status:   "TIMED",
		HomeTeam: model.FDTeam{ID: id * 10, Name: home},
		AwayTeam: model.FDTeam{ID: id*10 + 1, Name: away},
	}
}

func bbGame(id int, date, status, home, away string) model.BBGame {
	return model.BBGame{
		ID:     id,
		Date:   date,
		Status: model.BBStatus{Short: status},
		League: model.BBLeague{ID: 120},
		Teams:  model.BBTeams{Home: model.BBTeam{ID: id * 10, Name: home}, Away: model.BBTeam{ID: id*10 + 1, Name: away}},
	}
}

type matchFixture struct {
	football   *fakeFootball
	odds       *fakeOdds
	basketball *fakeBasketball
	analyzer   *fakeAnalyzer
	svc        *MatchService
}

func newMatchFixture() *matchFixture {
	f := &matchFixture{
		football: &fakeFootball{
			configured: true,
			scheduled: map[string][]model.FDMatch{
				"PL": {
					fdMatch(3, "2025-03-02T16:30:00Z", "Liverpool FC", "Everton FC"),
					fdMatch(1, "2025-03-01T12:30:00Z", "Arsenal FC", "Chelsea FC"),
				},
				"PD": {fdMatch(2, "2025-03-01T20:00:00Z", "Real Madrid CF", "FC Barcelona")},
			},
		},
		odds: &fakeOdds{events: map[string][]model.OddsEvent{
			"soccer_epl":            {h2hOdds("Arsenal", "Chelsea", [3]float64{1.8, 3.6, 4.5})},
			"soccer_spain_la_liga":  {h2hOdds("Real Madrid", "Barcelona", [3]float64{2.4, 3.4, 2.9})},
			"basketball_euroleague": {h2hOdds("Real Madrid", "Olympiacos Piraeus", [3]float64{1.55, 0, 2.45})},
		}},
		basketball: &fakeBasketball{
			configured: true,
			games: []model.BBGame{
				bbGame(90, "2025-02-20T19:00:00+00:00", "FT", "Fenerbahce", "Monaco"),
				bbGame(91, "2025-03-01T19:00:00+00:00", "NS", "Real Madrid", "Olympiacos"),
				bbGame(92, "2025-03-03T19:00:00+00:00", "NS", "Panathinaikos", "Barcelona"),
			},
		},
		analyzer: &fakeAnalyzer{},
	}
	f.svc = NewMatchService(f.football, f.odds, f.basketball, f.analyzer,
		config.MatchesConfig{PerLeagueLimit: 20, BasketballLimit: 10, LeagueDelay: time.Millisecond, DefaultStatus: "SCHEDULED"},
		nil, quietLogger())
	return f
}

func matchIDs(ms []model.Match) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListMatches(t *testing.T) {
	tests := []struct {
		name    string
		filter  MatchFilter
		wantIDs []string
	}{
		{"all sports sorted by date", MatchFilter{}, []string{"fd_1", "bb_91", "fd_2", "fd_3", "bb_92"}},
		{"football only", MatchFilter{Sport: "football"}, []string{"fd_1", "fd_2", "fd_3"}},
		{"basketball only", MatchFilter{Sport: "basketball"}, []string{"bb_91", "bb_92"}},
		{"single football league", MatchFilter{League: "PD"}, []string{"fd_2"}},
		{"basketball league code", MatchFilter{League: "EURO"}, []string{"bb_91", "bb_92"}},
		{"basketball provider id", MatchFilter{League: "120"}, []string{"bb_91", "bb_92"}},
		{"only with odds", MatchFilter{OnlyWithOdds: true}, []string{"fd_1", "bb_91", "fd_2"}},
		{"unknown sport", MatchFilter{Sport: "tennis"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newMatchFixture().svc.ListMatches(context.Background(), tt.filter)
			if ids := matchIDs(got); !equalIDs(ids, tt.wantIDs) {
				t.Errorf("ListMatches() ids = %v, want %v", ids, tt.wantIDs)
			}
			if !sort.SliceIsSorted(got, func(i, j int) bool { return got[i].MatchDate < got[j].MatchDate }) {
				t.Error("matches not sorted by match_date")
			}
			for _, m := range got {
				if m.HasOdds != (m.Odds != nil) {
					t.Errorf("%s: has_odds=%v but odds=%v", m.ID, m.HasOdds, m.Odds)
				}
				if p := m.QuickAnalysis.Probability; p < 0 || p > 95 {
					t.Errorf("%s: probability %v out of range", m.ID, p)
				}
			}
		})
	}
}

func TestListMatchesReconcilesOdds(t *testing.T) {
	got := newMatchFixture().svc.ListMatches(context.Background(), MatchFilter{})
	byID := make(map[string]model.Match)
	for _, m := range got {
		byID[m.ID] = m
	}

	arsenal := byID["fd_1"]
	if !arsenal.HasOdds || arsenal.Odds.MatchWinner.Home != 1.8 {
		t.Fatalf("fd_1 odds = %+v", arsenal.Odds)
	}
	if arsenal.QuickAnalysis.Source != model.AnalysisSourceOdds || arsenal.QuickAnalysis.PickType != model.PickHome {
		t.Errorf("fd_1 quick analysis = %+v", arsenal.QuickAnalysis)
	}
	if arsenal.HomeTeam != "Arsenal FC" {
		t.Errorf("home_team = %q, fixtures provider name must be kept", arsenal.HomeTeam)
	}

	if liverpool := byID["fd_3"]; liverpool.HasOdds || liverpool.QuickAnalysis.Source != model.AnalysisSourceEstimated {
		t.Errorf("fd_3 = %+v, want no odds and estimated analysis", liverpool)
	}

	madrid := byID["bb_91"]
	if !madrid.HasOdds || madrid.Odds.MatchWinner.Draw != 0 || madrid.Odds.MatchWinner.Away != 2.45 {
		t.Errorf("bb_91 odds = %+v", madrid.Odds)
	}
	if madrid.LeagueCode != "EURO" || madrid.Sport != model.SportBasketball {
		t.Errorf("bb_91 league = %s/%s", madrid.LeagueCode, madrid.Sport)
	}
}

func TestListMatchesDegradesWhenProvidersDown(t *testing.T) {
	f := newMatchFixture()
	f.football.configured = false
	f.odds.events = nil
	f.basketball.games = nil

	got := f.svc.ListMatches(context.Background(), MatchFilter{})
	if got == nil || len(got) != 0 {
		t.Errorf("ListMatches() = %v, want empty non-nil slice", got)
	}

	f.football.configured = true
	got = f.svc.ListMatches(context.Background(), MatchFilter{Sport: "football"})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 fixtures without odds", len(got))
	}
	for _, m := range got {
		if m.HasOdds {
			t.Errorf("%s has odds while odds provider is down", m.ID)
		}
	}
}

func TestListMatchesUsesStatusAndLimit(t *testing.T) {
	f := newMatchFixture()
	many := make([]model.FDMatch, 0, 30)
	for i := 0; i < 30; i++ {
		many = append(many, fdMatch(100+i, "2025-04-01T12:00:00Z", "Home", "Away"))
	}
	f.football.scheduled["PL"] = many

	got := f.svc.ListMatches(context.Background(), MatchFilter{League: "PL", Status: "FINISHED"})
	if len(got) != 20 {
		t.Errorf("len = %d, want per-league limit 20", len(got))
	}
	if len(f.football.requests) != 1 || f.football.requests[0] != "PL:FINISHED" {
		t.Errorf("requests = %v", f.football.requests)
	}

	f.football.requests = nil
	f.svc.ListMatches(context.Background(), MatchFilter{League: "PL"})
	if f.football.requests[0] != "PL:SCHEDULED" {
		t.Errorf("default status request = %v", f.football.requests)
	}
}

func TestTopPicks(t *testing.T) {
	svc := newMatchFixture().svc
	got := svc.TopPicks(context.Background(), MatchFilter{}, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].QuickAnalysis.Probability < got[i].QuickAnalysis.Probability {
			t.Errorf("top picks not sorted desc: %v then %v", got[i-1].QuickAnalysis.Probability, got[i].QuickAnalysis.Probability)
		}
	}
	if def := svc.TopPicks(context.Background(), MatchFilter{}, 0); len(def) != DefaultTopPicks {
		t.Errorf("default limit len = %d, want %d", len(def), DefaultTopPicks)
	}
}

func TestGetMatchDetailFootball(t *testing.T) {
	f := newMatchFixture()
	raw := fdMatch(1, "2025-03-01T12:30:00Z", "Arsenal FC", "Chelsea FC")
	raw.Competition = model.FDCompetition{Code: "PL", Name: "Premier League"}
	f.football.byID = map[string]*model.FDMatch{"1": &raw}
	f.football.h2h = []model.FDMatch{{
		UTCDate:  "2024-10-01T15:00:00Z",
		HomeTeam: model.FDTeam{Name: "Chelsea FC"}, AwayTeam: model.FDTeam{Name: "Arsenal FC"},
		Score: model.FDScore{FullTime: model.FDScorePeriod{Home: intPtr(1), Away: intPtr(1)}},
	}}
	f.football.recent = map[int][]model.FDMatch{
		10: {{HomeTeam: model.FDTeam{ID: 10}, Score: model.FDScore{FullTime: model.FDScorePeriod{Home: intPtr(2), Away: intPtr(0)}}}},
		11: {{HomeTeam: model.FDTeam{ID: 5}, AwayTeam: model.FDTeam{ID: 11}, Score: model.FDScore{FullTime: model.FDScorePeriod{Home: intPtr(3), Away: intPtr(1)}}}},
	}

	d, err := f.svc.GetMatchDetail(context.Background(), "fd_1")
	if err != nil {
		t.Fatalf("GetMatchDetail() error = %v", err)
	}
	if d.ID != "fd_1" || d.League != "Premier League" || !d.HasOdds {
		t.Errorf("detail = %+v", d.Match)
	}
	if len(d.HeadToHead) != 1 || d.HeadToHead[0].Home != "Chelsea FC" {
		t.Errorf("h2h = %+v", d.HeadToHead)
	}
	if len(d.HomeForm) != 1 || d.HomeForm[0] != "W" || len(d.AwayForm) != 1 || d.AwayForm[0] != "L" {
		t.Errorf("form = %v / %v", d.HomeForm, d.AwayForm)
	}
	if d.Injuries.Home == nil || d.Injuries.Away == nil {
		t.Error("injuries should be empty lists, not nil")
	}
	if d.AIAnalysis == nil || d.AIAnalysis.ValueBet == nil {
		t.Fatalf("analysis = %+v, want value bet from odds", d.AIAnalysis)
	}
	// 70% vs 100/1.8 = 55.56% 隐含概率
	if d.AIAnalysis.ValueBet.Edge != 14.44 || d.AIAnalysis.ValueBet.ValueRating != "High" {
		t.Errorf("value bet = %+v", d.AIAnalysis.ValueBet)
	}
	if len(f.analyzer.got) != 1 || f.analyzer.got[0].HomeTeam != "Arsenal FC" {
		t.Errorf("analyzer context = %+v", f.analyzer.got)
	}
	if d.Odds.BothTeamsScore != nil {
		t.Errorf("btts = %+v, want nil without event id", d.Odds.BothTeamsScore)
	}
}

func TestGetMatchDetailFootballFetchesBTTS(t *testing.T) {
	f := newMatchFixture()
	raw := fdMatch(1, "2025-03-01T12:30:00Z", "Arsenal FC", "Chelsea FC")
	raw.Competition = model.FDCompetition{Code: "PL", Name: "Premier League"}
	f.football.byID = map[string]*model.FDMatch{"1": &raw}
	f.odds.events["soccer_epl"][0].ID = "e1"
	f.odds.single = map[string]*model.OddsEvent{"e1": {
		ID: "e1", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		Bookmakers: []model.OddsBookmaker{
			{Markets: []model.OddsMarket{{Key: "btts", Outcomes: []model.OddsOutcome{{Name: "Yes", Price: 1.72}, {Name: "No", Price: 2.00}}}}},
			{Markets: []model.OddsMarket{{Key: "btts", Outcomes: []model.OddsOutcome{{Name: "Yes", Price: 1.65}, {Name: "No", Price: 2.10}}}}},
		},
	}}

	d, err := f.svc.GetMatchDetail(context.Background(), "fd_1")
	if err != nil {
		t.Fatalf("GetMatchDetail() error = %v", err)
	}
	btts := d.Odds.BothTeamsScore
	if btts == nil || btts.Yes != 1.72 || btts.No != 2.10 {
		t.Errorf("btts = %+v, want best prices 1.72/2.10", btts)
	}
	if mw := d.Odds.MatchWinner; mw == nil || mw.Home != 1.8 {
		t.Errorf("match winner = %+v, league odds should stay", d.Odds.MatchWinner)
	}
}

func TestGetMatchDetailBasketball(t *testing.T) {
	f := newMatchFixture()
	game := bbGame(91, "2025-03-01T19:00:00+00:00", "NS", "Real Madrid", "Olympiacos")
	f.basketball.byID = map[string]*model.BBGame{"91": &game}
	finished := bbGame(80, "2025-02-01T19:00:00+00:00", "FT", "Real Madrid", "Olympiacos")
	finished.Teams.Home.ID, finished.Teams.Away.ID = 910, 911
	finished.Scores = model.BBScores{Home: model.BBScore{Total: intPtr(90)}, Away: model.BBScore{Total: intPtr(85)}}
	f.basketball.h2h = []model.BBGame{finished}
	f.basketball.teamGames = map[int][]model.BBGame{910: {finished}, 911: {finished}}

	d, err := f.svc.GetMatchDetail(context.Background(), "bb_91")
	if err != nil {
		t.Fatalf("GetMatchDetail() error = %v", err)
	}
	if d.Sport != model.SportBasketball || d.League != "EuroLeague" || !d.HasOdds {
		t.Errorf("detail = %+v", d.Match)
	}
	if len(d.HeadToHead) != 1 || *d.HeadToHead[0].HomeScore != 90 {
		t.Errorf("h2h = %+v", d.HeadToHead)
	}
	if len(d.HomeForm) != 1 || d.HomeForm[0] != "W" || d.AwayForm[0] != "L" {
		t.Errorf("form = %v / %v", d.HomeForm, d.AwayForm)
	}
}

func TestGetMatchDetailNotFound(t *testing.T) {
	f := newMatchFixture()
	for _, id := range []string{"fd_404", "bb_404", "xx_1", "fd_", "", "12345"} {
		t.Run(id, func(t *testing.T) {
			if _, err := f.svc.GetMatchDetail(context.Background(), id); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetMatchDetail(%q) err = %v, want ErrNotFound", id, err)
			}
		})
	}
}

func TestListLeagues(t *testing.T) {
	leagues := newMatchFixture().svc.ListLeagues()
	if len(leagues) != 8 {
		t.Fatalf("len = %d, want 8", len(leagues))
	}
	if leagues[0].Sport != model.SportFootball || leagues[len(leagues)-1].ID != "120" {
		t.Errorf("order = %+v", leagues)
	}
}
