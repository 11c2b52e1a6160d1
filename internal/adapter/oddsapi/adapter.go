package oddsapi

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

const cacheKeyPrefix = "odds:"

// 固定的拉取参数：英国+欧洲博彩公司，胜平负与大小球，十进制赔率。
// 双方进球只在单场赔率接口提供
const (
	regions     = "uk,eu"
	markets     = "h2h,totals"
	eventMarket = "btts"
	oddsFormat  = "decimal"
	dateFormat  = "iso"
)

// Adapter The Odds API v4 适配器，key 走 query 参数
type Adapter struct {
	cfg     config.ProviderConfig
	fetcher *httpclient.Fetcher
	logger  *logrus.Logger
}

func NewAdapter(cfg config.ProviderConfig, c cache.Cache, m *metrics.Metrics, logger *logrus.Logger) *Adapter {
	return &Adapter{
		cfg:     cfg,
		fetcher: httpclient.NewFetcher(string(model.ProviderOddsAPI), cfg, c, m, logger),
		logger:  logger,
	}
}

func (a *Adapter) Configured() bool {
	return a.fetcher.Configured()
}

// OddsForLeague 某联赛全部赛事的各家赔率；同一联赛在缓存有效期内只请求一次
func (a *Adapter) OddsForLeague(ctx context.Context, sportKey string) []model.OddsEvent {
	if sportKey == "" {
		return nil
	}
	q := a.query(markets)
	rawURL := fmt.Sprintf("%s/sports/%s/odds?%s", strings.TrimRight(a.cfg.BaseURL, "/"), url.PathEscape(sportKey), q.Encode())

	var events []model.OddsEvent
	if !a.fetcher.GetJSON(ctx, cacheKeyPrefix+sportKey, rawURL, nil, &events) {
		return nil
	}
	a.logger.WithFields(logrus.Fields{"sport_key": sportKey, "events": len(events)}).Debug("获取赔率成功")
	return events
}

// EventOdds 单场赛事的双方进球赔率，详情页才调用
func (a *Adapter) EventOdds(ctx context.Context, sportKey, eventID string) *model.OddsEvent {
	if sportKey == "" || eventID == "" {
		return nil
	}
	q := a.query(eventMarket)
	rawURL := fmt.Sprintf("%s/sports/%s/events/%s/odds?%s",
		strings.TrimRight(a.cfg.BaseURL, "/"), url.PathEscape(sportKey), url.PathEscape(eventID), q.Encode())

	var event model.OddsEvent
	key := fmt.Sprintf("%sevent:%s:%s:%s", cacheKeyPrefix, sportKey, eventID, eventMarket)
	if !a.fetcher.GetJSON(ctx, key, rawURL, nil, &event) {
		return nil
	}
	return &event
}

func (a *Adapter) query(markets string) url.Values {
	q := url.Values{}
	q.Set("apiKey", a.fetcher.APIKey())
	q.Set("regions", regions)
	q.Set("markets", markets)
	q.Set("oddsFormat", oddsFormat)
	q.Set("dateFormat", dateFormat)
	return q
}
