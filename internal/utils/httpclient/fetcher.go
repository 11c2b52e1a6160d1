package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"MatchOdds/internal/cache"
	"MatchOdds/internal/config"
	"MatchOdds/internal/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultRateLimitBackoff 429 后的固定等待
const DefaultRateLimitBackoff = 60 * time.Second

// Fetcher 带缓存的上游 GET。任何失败都返回 nil，不向上抛错：
// 缺 key 不发请求；网络错误、非200、非法JSON返回 nil；429 先等待 backoff 再返回 nil。
// 只有 200 且是合法 JSON 的响应才写缓存。同一个 key 的并发 miss 只回源一次。
type Fetcher struct {
	provider string
	apiKey   string
	client   *http.Client
	cache    cache.Cache
	group    singleflight.Group
	timeout  time.Duration
	backoff  time.Duration
	sleep    func(time.Duration)
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

// NewFetcher 每个数据源一个 Fetcher，共享同一个 cache 实例
func NewFetcher(provider string, cfg config.ProviderConfig, c cache.Cache, m *metrics.Metrics, logger *logrus.Logger) *Fetcher {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	backoff := time.Duration(cfg.RateLimitBackoff) * time.Second
	if backoff <= 0 {
		backoff = DefaultRateLimitBackoff
	}
	return &Fetcher{
		provider: provider,
		apiKey:   cfg.APIKey,
		client:   NewHTTPClient(cfg, logger),
		cache:    c,
		timeout:  timeout,
		backoff:  backoff,
		sleep:    time.Sleep,
		metrics:  m,
		logger:   logger,
	}
}

// WithSleep 替换 429 等待函数（测试用）
func (f *Fetcher) WithSleep(sleep func(time.Duration)) *Fetcher {
	f.sleep = sleep
	return f
}

// WithBackoff 覆盖 429 等待时长
func (f *Fetcher) WithBackoff(d time.Duration) *Fetcher {
	f.backoff = d
	return f
}

// Configured 是否配置了认证 key
func (f *Fetcher) Configured() bool {
	return f.apiKey != ""
}

// APIKey 供适配器拼认证头/参数
func (f *Fetcher) APIKey() string {
	return f.apiKey
}

// Get 先查缓存，miss 时回源。调用方断开不会取消回源（请求跑完或超时后丢弃）。
func (f *Fetcher) Get(ctx context.Context, cacheKey, rawURL string, headers map[string]string) []byte {
	if !f.Configured() {
		return nil
	}
	if body, ok := f.cache.Get(ctx, cacheKey); ok {
		f.metrics.ObserveCache(f.provider, metrics.CacheHit)
		return body
	}
	f.metrics.ObserveCache(f.provider, metrics.CacheMiss)

	v, _, _ := f.group.Do(cacheKey, func() (interface{}, error) {
		body := f.fetch(context.WithoutCancel(ctx), rawURL, headers)
		if body != nil {
			f.cache.Set(context.WithoutCancel(ctx), cacheKey, body)
		}
		return body, nil
	})
	body, _ := v.([]byte)
	return body
}

// GetJSON Get + 解码，解码失败按无数据处理
func (f *Fetcher) GetJSON(ctx context.Context, cacheKey, rawURL string, headers map[string]string, out interface{}) bool {
	body := f.Get(ctx, cacheKey, rawURL, headers)
	if body == nil {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		f.logger.WithError(err).WithFields(logrus.Fields{
			"provider": f.provider,
			"key":      cacheKey,
		}).Warn("上游响应解析失败")
		return false
	}
	return true
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string, headers map[string]string) []byte {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	log := f.logger.WithFields(logrus.Fields{
		"provider": f.provider,
		"path":     redactedPath(rawURL),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.WithError(err).Error("构建上游请求失败")
		return nil
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.metrics.ObserveUpstream(f.provider, 0, time.Since(start).Seconds())
		log.WithError(err).Warn("上游请求失败")
		return nil
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("关闭上游响应体失败")
		}
	}()
	f.metrics.ObserveUpstream(f.provider, resp.StatusCode, time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		log.WithField("backoff", f.backoff).Warn("上游限流，等待后返回空结果")
		f.sleep(f.backoff)
		return nil
	case resp.StatusCode != http.StatusOK:
		log.WithField("status", resp.StatusCode).Warn("上游返回非200")
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("读取上游响应失败")
		return nil
	}
	if !json.Valid(body) {
		log.Warn("上游响应不是合法JSON")
		return nil
	}
	return body
}

// redactedPath 日志里只保留路径，避免把 query 里的 apiKey 打出来
func redactedPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host + u.Path
}
