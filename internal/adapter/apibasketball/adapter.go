package apibasketball

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"MatchOdds/internal/cache"
	"MatchOdds/internal/config"
	"MatchOdds/internal/metrics"
	"MatchOdds/internal/model"
	"MatchOdds/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "basketball:"

// Adapter api-basketball (api-sports) 适配器，赛季从配置读取
type Adapter struct {
	cfg     config.ProviderConfig
	fetcher *httpclient.Fetcher
	logger  *logrus.Logger
}

func NewAdapter(cfg config.ProviderConfig, c cache.Cache, m *metrics.Metrics, logger *logrus.Logger) *Adapter {
	return &Adapter{
		cfg:     cfg,
		fetcher: httpclient.NewFetcher(string(model.ProviderAPIBasketball), cfg, c, m, logger),
		logger:  logger,
	}
}

func (a *Adapter) Configured() bool {
	return a.fetcher.Configured()
}

// Season 当前配置的赛季
func (a *Adapter) Season() string {
	return a.cfg.Season
}

func (a *Adapter) games(ctx context.Context, q url.Values) []model.BBGame {
	path := "/games?" + q.Encode()
	headers := map[string]string{"x-apisports-key": a.fetcher.APIKey()}
	var resp model.BBGamesResponse
	if !a.fetcher.GetJSON(ctx, cacheKeyPrefix+path, strings.TrimRight(a.cfg.BaseURL, "/")+path, headers, &resp) {
		return nil
	}
	return resp.Response
}

// Games 联赛整季赛程
func (a *Adapter) Games(ctx context.Context, leagueID string) []model.BBGame {
	return a.games(ctx, url.Values{"league": {leagueID}, "season": {a.cfg.Season}})
}

// GameByID 不存在返回 nil
func (a *Adapter) GameByID(ctx context.Context, id string) *model.BBGame {
	games := a.games(ctx, url.Values{"id": {id}})
	if len(games) == 0 {
		return nil
	}
	return &games[0]
}

// HeadToHead 两队历史交锋
func (a *Adapter) HeadToHead(ctx context.Context, homeID, awayID int) []model.BBGame {
	if homeID == 0 || awayID == 0 {
		return nil
	}
	return a.games(ctx, url.Values{"h2h": {fmt.Sprintf("%d-%d", homeID, awayID)}})
}

// TeamGames 球队本赛季全部比赛
func (a *Adapter) TeamGames(ctx context.Context, teamID int) []model.BBGame {
	if teamID == 0 {
		return nil
	}
	return a.games(ctx, url.Values{"team": {fmt.Sprint(teamID)}, "season": {a.cfg.Season}})
}

// Standings 按分组返回的积分榜
func (a *Adapter) Standings(ctx context.Context, leagueID string) [][]model.BBStandingEntry {
	q := url.Values{"league": {leagueID}, "season": {a.cfg.Season}}
	path := "/standings?" + q.Encode()
	headers := map[string]string{"x-apisports-key": a.fetcher.APIKey()}
	var resp model.BBStandingsResponse
	if !a.fetcher.GetJSON(ctx, cacheKeyPrefix+path, strings.TrimRight(a.cfg.BaseURL, "/")+path, headers, &resp) {
		return nil
	}
	return resp.Response
}
