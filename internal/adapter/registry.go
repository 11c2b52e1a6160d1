package adapter

import (
	"sort"

	"MatchOdds/internal/adapter/apibasketball"
	"MatchOdds/internal/adapter/footballdata"
	"MatchOdds/internal/adapter/llm"
	"MatchOdds/internal/adapter/oddsapi"
	"MatchOdds/internal/cache"
	"MatchOdds/internal/config"
	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/metrics"
	"MatchOdds/internal/model"

	"github.com/sirupsen/logrus"
)

var (
	_ interfaces.FootballProvider   = (*footballdata.Adapter)(nil)
	_ interfaces.OddsProvider       = (*oddsapi.Adapter)(nil)
	_ interfaces.BasketballProvider = (*apibasketball.Adapter)(nil)
	_ interfaces.ChatCompleter      = (*llm.Client)(nil)
)

// ProviderRegistry 按配置创建各数据源适配器，共享同一个缓存实例
type ProviderRegistry struct {
	Football   *footballdata.Adapter
	Odds       *oddsapi.Adapter
	Basketball *apibasketball.Adapter
	LLM        *llm.Client

	logger *logrus.Logger
}

func NewProviderRegistry(cfg *config.Config, c cache.Cache, m *metrics.Metrics, logger *logrus.Logger) *ProviderRegistry {
	r := &ProviderRegistry{
		Football:   footballdata.NewAdapter(cfg.Provider(config.ProviderFootballData), c, m, logger),
		Odds:       oddsapi.NewAdapter(cfg.Provider(config.ProviderOddsAPI), c, m, logger),
		Basketball: apibasketball.NewAdapter(cfg.Provider(config.ProviderAPIBasketball), c, m, logger),
		LLM:        llm.NewClient(cfg.LLM, logger),
		logger:     logger,
	}

	configured := r.ListConfigured()
	for _, p := range []model.ProviderType{model.ProviderFootballData, model.ProviderOddsAPI, model.ProviderAPIBasketball} {
		if !r.configured(p) {
			logger.WithField("provider", p).Warn("数据源未配置key，相关数据将为空")
		}
	}
	logger.WithFields(logrus.Fields{
		"configured": configured,
		"llm":        r.LLM.Configured(),
	}).Info("数据源适配器初始化完成")
	return r
}

func (r *ProviderRegistry) configured(p model.ProviderType) bool {
	switch p {
	case model.ProviderFootballData:
		return r.Football.Configured()
	case model.ProviderOddsAPI:
		return r.Odds.Configured()
	case model.ProviderAPIBasketball:
		return r.Basketball.Configured()
	default:
		return false
	}
}

// ListConfigured 已配置 key 的数据源（按名称排序）
func (r *ProviderRegistry) ListConfigured() []model.ProviderType {
	var providers []model.ProviderType
	for _, p := range []model.ProviderType{model.ProviderFootballData, model.ProviderOddsAPI, model.ProviderAPIBasketball} {
		if r.configured(p) {
			providers = append(providers, p)
		}
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}
