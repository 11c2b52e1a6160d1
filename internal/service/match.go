package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"MatchOdds/internal/adapter/apibasketball"
	"MatchOdds/internal/adapter/footballdata"
	"MatchOdds/internal/config"
	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/metrics"
	"MatchOdds/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// DefaultTopPicks top-picks 默认条数
	DefaultTopPicks    = 4
	detailHistoryLimit = 5
)

// MatchFilter 列表查询条件，空字符串表示不过滤
type MatchFilter struct {
	League       string
	Sport        string
	OnlyWithOdds bool
	Status       string // football-data 的赛程状态，空则用配置默认值
}

// MatchService 赛程 + 赔率对账 + 快速分析 的聚合流水线
type MatchService struct {
	football   interfaces.FootballProvider
	odds       interfaces.OddsProvider
	basketball interfaces.BasketballProvider
	analyzer   interfaces.MatchAnalyzer
	cfg        config.MatchesConfig
	metrics    *metrics.Metrics
	logger     *logrus.Logger
}

func NewMatchService(
	football interfaces.FootballProvider,
	odds interfaces.OddsProvider,
	basketball interfaces.BasketballProvider,
	analyzer interfaces.MatchAnalyzer,
	cfg config.MatchesConfig,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *MatchService {
	if cfg.PerLeagueLimit <= 0 {
		cfg.PerLeagueLimit = 20
	}
	if cfg.BasketballLimit <= 0 {
		cfg.BasketballLimit = 10
	}
	if cfg.DefaultStatus == "" {
		cfg.DefaultStatus = "SCHEDULED"
	}
	return &MatchService{
		football:   football,
		odds:       odds,
		basketball: basketball,
		analyzer:   analyzer,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
	}
}

// ListLeagues 注册表：足球在前，篮球在后
func (s *MatchService) ListLeagues() []model.League {
	return model.AllLeagues()
}

// ListMatches 拉取赛程、对账赔率、生成快速分析，按 match_date 升序返回。
// 任何数据源不可用都只会让结果变少，不会报错。
func (s *MatchService) ListMatches(ctx context.Context, filter MatchFilter) []model.Match {
	matches := make([]model.Match, 0)

	if filter.Sport == "" || filter.Sport == string(model.SportFootball) {
		matches = append(matches, s.listFootball(ctx, filter)...)
	}
	if filter.Sport == "" || filter.Sport == string(model.SportBasketball) {
		matches = append(matches, s.listBasketball(ctx, filter)...)
	}

	if filter.OnlyWithOdds {
		withOdds := matches[:0]
		for _, m := range matches {
			if m.HasOdds {
				withOdds = append(withOdds, m)
			}
		}
		matches = withOdds
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate < matches[j].MatchDate
	})
	for _, m := range matches {
		s.metrics.ObserveMatch(string(m.Sport), m.HasOdds)
	}
	return matches
}

// footballLeaguesFor 指定足球联赛只拉该联赛；指定篮球联赛不拉足球；未知代码拉全部足球联赛
func footballLeaguesFor(league string) []model.League {
	if league == "" {
		return model.FootballLeagues
	}
	if l, ok := model.FootballLeague(league); ok {
		return []model.League{l}
	}
	if _, ok := model.BasketballLeague(league); ok {
		return nil
	}
	return model.FootballLeagues
}

func (s *MatchService) listFootball(ctx context.Context, filter MatchFilter) []model.Match {
	if !s.football.Configured() {
		s.logger.Debug("football-data 未配置，跳过足球赛程")
		return nil
	}
	status := filter.Status
	if status == "" {
		status = s.cfg.DefaultStatus
	}

	// 相邻联赛之间固定间隔，照顾上游限流；调用方断开也不提前结束
	pacer := newPacer(s.cfg)
	paceCtx := context.WithoutCancel(ctx)

	var matches []model.Match
	for _, league := range footballLeaguesFor(filter.League) {
		if err := pacer.Wait(paceCtx); err != nil {
			s.logger.WithError(err).WithField("league", league.Code).Debug("联赛间隔等待失败，直接请求")
		}

		raws := s.football.ScheduledMatches(ctx, league.Code, status)
		if len(raws) > s.cfg.PerLeagueLimit {
			raws = raws[:s.cfg.PerLeagueLimit]
		}
		if len(raws) == 0 {
			continue
		}
		idx := BuildOddsIndex(s.odds.OddsForLeague(ctx, league.OddsKey))
		for _, raw := range raws {
			matches = append(matches, enrich(footballdata.ParseMatch(raw, league), idx))
		}
		s.logger.WithFields(logrus.Fields{
			"league":      league.Code,
			"fixtures":    len(raws),
			"odds_events": idx.Len(),
		}).Debug("联赛赛程处理完成")
	}
	return matches
}

func newPacer(cfg config.MatchesConfig) *rate.Limiter {
	if cfg.LeagueDelay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(cfg.LeagueDelay), 1)
}

func (s *MatchService) listBasketball(ctx context.Context, filter MatchFilter) []model.Match {
	if filter.League != "" {
		if _, ok := model.BasketballLeague(filter.League); !ok {
			return nil
		}
	}
	if !s.basketball.Configured() {
		s.logger.Debug("api-basketball 未配置，跳过篮球赛程")
		return nil
	}

	var matches []model.Match
	for _, league := range model.BasketballLeagues {
		games := apibasketball.Upcoming(s.basketball.Games(ctx, league.ProviderID), s.cfg.BasketballLimit)
		if len(games) == 0 {
			continue
		}
		idx := BuildOddsIndex(s.odds.OddsForLeague(ctx, league.OddsKey))
		for _, g := range games {
			matches = append(matches, enrich(apibasketball.ParseGame(g, league), idx))
		}
	}
	return matches
}

// enrich 挂赔率 + 快速分析
func enrich(m model.Match, idx *OddsIndex) model.Match {
	m.Odds, m.HasOdds = Reconcile(m, idx)
	m.QuickAnalysis = EstimateQuickAnalysis(m)
	return m
}

// TopPicks 按快速分析概率降序取前 limit 场
func (s *MatchService) TopPicks(ctx context.Context, filter MatchFilter, limit int) []model.Match {
	if limit <= 0 {
		limit = DefaultTopPicks
	}
	matches := s.ListMatches(ctx, filter)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].QuickAnalysis.Probability > matches[j].QuickAnalysis.Probability
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// GetMatchDetail 按 ID 前缀分派到对应数据源
func (s *MatchService) GetMatchDetail(ctx context.Context, id string) (*model.MatchDetail, error) {
	switch {
	case strings.HasPrefix(id, model.FootballIDPrefix) && len(id) > len(model.FootballIDPrefix):
		return s.footballDetail(ctx, id, strings.TrimPrefix(id, model.FootballIDPrefix))
	case strings.HasPrefix(id, model.BasketballIDPrefix) && len(id) > len(model.BasketballIDPrefix):
		return s.basketballDetail(ctx, id, strings.TrimPrefix(id, model.BasketballIDPrefix))
	default:
		return nil, fmt.Errorf("比赛 %s: %w", id, ErrNotFound)
	}
}

func (s *MatchService) footballDetail(ctx context.Context, id, fixtureID string) (*model.MatchDetail, error) {
	raw := s.football.MatchByID(ctx, fixtureID)
	if raw == nil {
		return nil, fmt.Errorf("比赛 %s: %w", id, ErrNotFound)
	}

	league, ok := model.FootballLeague(raw.Competition.Code)
	if !ok {
		league = model.League{Code: raw.Competition.Code, Name: raw.Competition.Name, Sport: model.SportFootball}
	}
	m := footballdata.ParseMatch(*raw, league)
	idx := BuildOddsIndex(s.odds.OddsForLeague(ctx, league.OddsKey))
	m = enrich(m, idx)
	s.attachBTTS(ctx, &m, league.OddsKey, idx)

	detail := &model.MatchDetail{
		Match:      m,
		HeadToHead: footballdata.ParseHeadToHead(s.football.HeadToHead(ctx, fixtureID, detailHistoryLimit)),
		HomeForm:   footballdata.TeamForm(m.HomeTeamID, s.football.TeamRecentResults(ctx, m.HomeTeamID, detailHistoryLimit), detailHistoryLimit),
		AwayForm:   footballdata.TeamForm(m.AwayTeamID, s.football.TeamRecentResults(ctx, m.AwayTeamID, detailHistoryLimit), detailHistoryLimit),
		Injuries:   model.Injuries{Home: []string{}, Away: []string{}},
	}
	detail.AIAnalysis = s.analyze(ctx, detail)
	return detail, nil
}

// attachBTTS 联赛批量赔率不含双方进球，详情页按赛事ID补拉一次
func (s *MatchService) attachBTTS(ctx context.Context, m *model.Match, sportKey string, idx *OddsIndex) {
	if m.Odds == nil || m.Odds.BothTeamsScore != nil {
		return
	}
	event, ok := idx.lookup(NormalizeTeamName(m.HomeTeam), NormalizeTeamName(m.AwayTeam))
	if !ok || event.ID == "" {
		return
	}
	single := s.odds.EventOdds(ctx, sportKey, event.ID)
	if single == nil {
		return
	}
	if odds := bestPrices(single); odds != nil && odds.BothTeamsScore != nil {
		m.Odds.BothTeamsScore = odds.BothTeamsScore
	}
}

func (s *MatchService) basketballDetail(ctx context.Context, id, gameID string) (*model.MatchDetail, error) {
	raw := s.basketball.GameByID(ctx, gameID)
	if raw == nil {
		return nil, fmt.Errorf("比赛 %s: %w", id, ErrNotFound)
	}

	league, ok := model.BasketballLeague(strconv.Itoa(raw.League.ID))
	if !ok {
		league = model.BasketballLeagues[0]
	}
	m := apibasketball.ParseGame(*raw, league)
	m = enrich(m, BuildOddsIndex(s.odds.OddsForLeague(ctx, league.OddsKey)))

	detail := &model.MatchDetail{
		Match:      m,
		HeadToHead: apibasketball.ParseHeadToHead(s.basketball.HeadToHead(ctx, m.HomeTeamID, m.AwayTeamID), detailHistoryLimit),
		HomeForm:   apibasketball.TeamForm(m.HomeTeamID, s.basketball.TeamGames(ctx, m.HomeTeamID), detailHistoryLimit),
		AwayForm:   apibasketball.TeamForm(m.AwayTeamID, s.basketball.TeamGames(ctx, m.AwayTeamID), detailHistoryLimit),
		Injuries:   model.Injuries{Home: []string{}, Away: []string{}},
	}
	detail.AIAnalysis = s.analyze(ctx, detail)
	return detail, nil
}

func (s *MatchService) analyze(ctx context.Context, d *model.MatchDetail) *model.AIAnalysis {
	if s.analyzer == nil {
		return nil
	}
	analysis := s.analyzer.Analyze(ctx, model.MatchContext{
		ID:           d.ID,
		Sport:        d.Sport,
		HomeTeam:     d.HomeTeam,
		AwayTeam:     d.AwayTeam,
		League:       d.League,
		HomeForm:     d.HomeForm,
		AwayForm:     d.AwayForm,
		HeadToHead:   d.HeadToHead,
		HomeInjuries: d.Injuries.Home,
		AwayInjuries: d.Injuries.Away,
	})
	if analysis != nil {
		analysis.ValueBet = ComputeValueBet(analysis, d.Odds)
	}
	return analysis
}
