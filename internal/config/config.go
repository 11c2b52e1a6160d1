package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 数据源名称，与 config.yaml 中 providers 下的键一致
const (
	ProviderFootballData  = "football_data"
	ProviderOddsAPI       = "odds_api"
	ProviderAPIBasketball = "api_basketball"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`    // 服务器配置
	Database  DatabaseConfig            `mapstructure:"database"`  // PostgreSQL配置
	Cache     CacheConfig               `mapstructure:"cache"`     // 上游响应缓存
	Providers map[string]ProviderConfig `mapstructure:"providers"` // 各数据源独立配置
	LLM       LLMConfig                 `mapstructure:"llm"`       // AI分析服务
	Matches   MatchesConfig             `mapstructure:"matches"`   // 赛事列表拉取参数
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`         // 服务端口
	Mode        string   `mapstructure:"mode"`         // Gin运行模式：debug/release/test
	CORSOrigins []string `mapstructure:"cors_origins"` // 允许的跨域来源
}

// DatabaseConfig 数据库配置（parlay 落库）
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN（URL形式）
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`   // memory / redis
	TTL      time.Duration `mapstructure:"ttl"`       // 过期时间
	RedisURL string        `mapstructure:"redis_url"` // backend=redis 时必填
}

// ProviderConfig 单个数据源的独立配置
type ProviderConfig struct {
	BaseURL          string `mapstructure:"base_url"`           // API基础地址
	APIKey           string `mapstructure:"api_key"`            // 认证Key，为空则该数据源不请求
	Timeout          int    `mapstructure:"timeout"`            // 请求超时（秒）
	Proxy            string `mapstructure:"proxy"`              // 代理地址
	RateLimitBackoff int    `mapstructure:"rate_limit_backoff"` // 429 后等待秒数
	Season           string `mapstructure:"season"`             // 赛季（api-basketball 用，如 2024-2025）
}

// LLMConfig OpenAI 兼容的对话接口
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // 秒
}

// MatchesConfig 列表接口的拉取上限与节流
type MatchesConfig struct {
	PerLeagueLimit  int           `mapstructure:"per_league_limit"`
	BasketballLimit int           `mapstructure:"basketball_limit"`
	LeagueDelay     time.Duration `mapstructure:"league_delay"` // 相邻联赛请求间隔，照顾上游限流
	DefaultStatus   string        `mapstructure:"default_status"`
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录读取 config.yaml
func LoadConfigFrom(dir string) (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	fillProviderDefaults(&cfg)

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.ttl", 300*time.Second)

	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.timeout", 60)

	v.SetDefault("matches.per_league_limit", 20)
	v.SetDefault("matches.basketball_limit", 10)
	v.SetDefault("matches.league_delay", 100*time.Millisecond)
	v.SetDefault("matches.default_status", "SCHEDULED")
}

// providers 是 map，viper 的默认值无法逐项下沉，这里手动补齐
func fillProviderDefaults(cfg *Config) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	defaults := map[string]string{
		ProviderFootballData:  "https://api.football-data.org/v4",
		ProviderOddsAPI:       "https://api.the-odds-api.com/v4",
		ProviderAPIBasketball: "https://v1.basketball.api-sports.io",
	}
	for name, baseURL := range defaults {
		p := cfg.Providers[name]
		if p.BaseURL == "" {
			p.BaseURL = baseURL
		}
		if p.Timeout <= 0 {
			p.Timeout = 30
		}
		if p.RateLimitBackoff <= 0 {
			p.RateLimitBackoff = 60
		}
		if name == ProviderAPIBasketball && p.Season == "" {
			p.Season = "2024-2025"
		}
		cfg.Providers[name] = p
	}
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	envKeys := map[string]string{
		ProviderFootballData:  "FOOTBALL_DATA_KEY",
		ProviderOddsAPI:       "ODDS_API_KEY",
		ProviderAPIBasketball: "API_FOOTBALL_KEY", // api-sports 的 key 足球篮球通用
	}
	for name, env := range envKeys {
		if v := os.Getenv(env); v != "" {
			p := cfg.Providers[name]
			p.APIKey = v
			cfg.Providers[name] = p
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	} else if v := os.Getenv("EMERGENT_LLM_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.RedisURL = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CORSOrigins = origins
	}
}

// Provider 获取指定数据源配置，未配置时返回零值
func (c *Config) Provider(name string) ProviderConfig {
	return c.Providers[name]
}
