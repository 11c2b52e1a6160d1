package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"MatchOdds/internal/model"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func intPtr(v int) *int { return &v }

type fakeFootball struct {
	configured bool
	scheduled  map[string][]model.FDMatch
	byID       map[string]*model.FDMatch
	h2h        []model.FDMatch
	recent     map[int][]model.FDMatch
	standings  *model.FDStandingsResponse

	mu       sync.Mutex
	requests []string
}

func (f *fakeFootball) Configured() bool { return f.configured }

func (f *fakeFootball) ScheduledMatches(_ context.Context, leagueCode, status string) []model.FDMatch {
	f.mu.Lock()
	f.requests = append(f.requests, leagueCode+":"+status)
	f.mu.Unlock()
	return f.scheduled[leagueCode]
}

func (f *fakeFootball) MatchByID(_ context.Context, id string) *model.FDMatch { return f.byID[id] }

func (f *fakeFootball) HeadToHead(context.Context, string, int) []model.FDMatch { return f.h2h }

func (f *fakeFootball) TeamRecentResults(_ context.Context, teamID, _ int) []model.FDMatch {
	return f.recent[teamID]
}

func (f *fakeFootball) Standings(context.Context, string) *model.FDStandingsResponse {
	return f.standings
}

type fakeOdds struct {
	events map[string][]model.OddsEvent
	single map[string]*model.OddsEvent // 按赛事ID
}

func (f *fakeOdds) Configured() bool { return f.events != nil }

func (f *fakeOdds) OddsForLeague(_ context.Context, sportKey string) []model.OddsEvent {
	return f.events[sportKey]
}

func (f *fakeOdds) EventOdds(_ context.Context, _, eventID string) *model.OddsEvent {
	return f.single[eventID]
}

type fakeBasketball struct {
	configured bool
	games      []model.BBGame
	byID       map[string]*model.BBGame
	h2h        []model.BBGame
	teamGames  map[int][]model.BBGame
	standings  [][]model.BBStandingEntry
}

func (f *fakeBasketball) Configured() bool { return f.configured }

func (f *fakeBasketball) Games(context.Context, string) []model.BBGame { return f.games }

func (f *fakeBasketball) GameByID(_ context.Context, id string) *model.BBGame { return f.byID[id] }

func (f *fakeBasketball) HeadToHead(context.Context, int, int) []model.BBGame { return f.h2h }

func (f *fakeBasketball) TeamGames(_ context.Context, teamID int) []model.BBGame {
	return f.teamGames[teamID]
}

func (f *fakeBasketball) Standings(context.Context, string) [][]model.BBStandingEntry {
	return f.standings
}

type fakeLLM struct {
	configured bool
	reply      string
	err        error
	prompts    []string
}

func (f *fakeLLM) Configured() bool { return f.configured }

func (f *fakeLLM) Complete(_ context.Context, _, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.reply, f.err
}

type fakeAnalyzer struct {
	got []model.MatchContext
}

func (f *fakeAnalyzer) Analyze(_ context.Context, mc model.MatchContext) *model.AIAnalysis {
	f.got = append(f.got, mc)
	return &model.AIAnalysis{Prediction: "Home Win", Confidence: 70, BestBet: "Home Win", RiskLevel: "medium"}
}

type fakeParlayRepo struct {
	saved []*model.Parlay
	err   error
}

var errRepoDown = errors.New("db down")

func (f *fakeParlayRepo) Create(_ context.Context, p *model.Parlay) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, p)
	return nil
}

func (f *fakeParlayRepo) List(_ context.Context, limit int) ([]*model.Parlay, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*model.Parlay, 0, len(f.saved))
	for i := len(f.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.saved[i])
	}
	return out, nil
}

// h2hOdds 构造一个带胜平负的赔率事件
func h2hOdds(home, away string, books ...[3]float64) model.OddsEvent {
	e := model.OddsEvent{HomeTeam: home, AwayTeam: away}
	for _, p := range books {
		outcomes := []model.OddsOutcome{{Name: home, Price: p[0]}, {Name: away, Price: p[2]}}
		if p[1] > 0 {
			outcomes = append(outcomes, model.OddsOutcome{Name: "Draw", Price: p[1]})
		}
		e.Bookmakers = append(e.Bookmakers, model.OddsBookmaker{
			Title:   "book",
			Markets: []model.OddsMarket{{Key: "h2h", Outcomes: outcomes}},
		})
	}
	return e
}
