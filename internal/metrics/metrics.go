// Package metrics 上游请求与缓存命中的 Prometheus 指标
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 缓存查询结果
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics 使用独立 registry，避免测试里重复注册到全局 registry
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
	MatchesServed    *prometheus.CounterVec
}

// New 创建并注册所有指标
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchodds_upstream_requests_total",
				Help: "Upstream provider requests by provider and HTTP status (0 = transport error)",
			},
			[]string{"provider", "status"},
		),
		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchodds_upstream_request_duration_seconds",
				Help:    "Upstream provider request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchodds_cache_lookups_total",
				Help: "Upstream response cache lookups by provider and result",
			},
			[]string{"provider", "result"},
		),
		MatchesServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchodds_matches_served_total",
				Help: "Matches returned by the list endpoint, split by whether odds were reconciled",
			},
			[]string{"sport", "has_odds"},
		),
	}

	registry.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheLookups,
		m.MatchesServed,
	)
	return m
}

// Registry 暴露给测试读取
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveUpstream 记录一次上游请求，status=0 表示网络错误
func (m *Metrics) ObserveUpstream(provider string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(provider, strconv.Itoa(status)).Inc()
	m.UpstreamDuration.WithLabelValues(provider).Observe(seconds)
}

// ObserveCache 记录一次缓存查询
func (m *Metrics) ObserveCache(provider, result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(provider, result).Inc()
}

// ObserveMatch 记录列表接口输出的一场比赛
func (m *Metrics) ObserveMatch(sport string, hasOdds bool) {
	if m == nil {
		return
	}
	m.MatchesServed.WithLabelValues(sport, strconv.FormatBool(hasOdds)).Inc()
}
