package footballdata

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

// 缓存键前缀
const cacheKeyPrefix = "fd:"

// Adapter football-data.org v4 适配器
type Adapter struct {
	cfg     config.ProviderConfig
	fetcher *httpclient.Fetcher
	logger  *logrus.Logger
}

func NewAdapter(cfg config.ProviderConfig, c cache.Cache, m *metrics.Metrics, logger *logrus.Logger) *Adapter {
	return &Adapter{
		cfg:     cfg,
		fetcher: httpclient.NewFetcher(string(model.ProviderFootballData), cfg, c, m, logger),
		logger:  logger,
	}
}

// Fetcher 暴露给测试调整 429 等待
func (a *Adapter) Fetcher() *httpclient.Fetcher {
	return a.fetcher
}

func (a *Adapter) Configured() bool {
	return a.fetcher.Configured()
}

func (a *Adapter) get(ctx context.Context, path string, out interface{}) bool {
	headers := map[string]string{"X-Auth-Token": a.fetcher.APIKey()}
	return a.fetcher.GetJSON(ctx, cacheKeyPrefix+path, strings.TrimRight(a.cfg.BaseURL, "/")+path, headers, out)
}

// ScheduledMatches 联赛赛程，status 为空时不过滤
func (a *Adapter) ScheduledMatches(ctx context.Context, leagueCode, status string) []model.FDMatch {
	path := fmt.Sprintf("/competitions/%s/matches", url.PathEscape(leagueCode))
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var resp model.FDMatchesResponse
	if !a.get(ctx, path, &resp) {
		return nil
	}
	a.logger.WithFields(logrus.Fields{"league": leagueCode, "count": len(resp.Matches)}).Debug("获取football-data赛程")
	return resp.Matches
}

// MatchByID 单场比赛，接口直接返回比赛对象（没有 matches 包装）
func (a *Adapter) MatchByID(ctx context.Context, id string) *model.FDMatch {
	var m model.FDMatch
	if !a.get(ctx, "/matches/"+url.PathEscape(id), &m) || m.ID == 0 {
		return nil
	}
	return &m
}

// HeadToHead 以某场比赛为锚点的两队交锋
func (a *Adapter) HeadToHead(ctx context.Context, matchID string, limit int) []model.FDMatch {
	var resp model.FDMatchesResponse
	if !a.get(ctx, fmt.Sprintf("/matches/%s/head2head?limit=%d", url.PathEscape(matchID), limit), &resp) {
		return nil
	}
	return resp.Matches
}

// TeamRecentResults 球队最近完赛
func (a *Adapter) TeamRecentResults(ctx context.Context, teamID, limit int) []model.FDMatch {
	if teamID == 0 {
		return nil
	}
	var resp model.FDMatchesResponse
	if !a.get(ctx, fmt.Sprintf("/teams/%d/matches?status=FINISHED&limit=%d", teamID, limit), &resp) {
		return nil
	}
	return resp.Matches
}

func (a *Adapter) Standings(ctx context.Context, leagueCode string) *model.FDStandingsResponse {
	var resp model.FDStandingsResponse
	if !a.get(ctx, fmt.Sprintf("/competitions/%s/standings", url.PathEscape(leagueCode)), &resp) {
		return nil
	}
	return &resp
}
