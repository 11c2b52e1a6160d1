package api

import (
	"net/http"
	"strings"

	"MatchOdds/internal/config"
	"MatchOdds/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// Handlers 路由依赖的全部 handler
type Handlers struct {
	System    *SystemHandler
	Match     *MatchHandler
	Analysis  *AnalysisHandler
	Parlay    *ParlayHandler
	Standings *StandingsHandler
}

// NewRouter 注册中间件与全部路由；m 为 nil 时不暴露 /metrics
func NewRouter(server config.ServerConfig, h Handlers, m *metrics.Metrics) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(server.CORSOrigins)))

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)

	r.GET("/health", h.System.Health)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := r.Group("/api")
	api.GET("/", h.System.Root)
	api.GET("/leagues", h.Match.ListLeagues)
	api.GET("/matches", h.Match.ListMatches)
	api.GET("/matches/:match_id", h.Match.GetMatchDetail)
	api.GET("/top-picks", h.Match.TopPicks)
	api.POST("/analyze", h.Analysis.Analyze)
	api.POST("/parlay/calculate", h.Parlay.Calculate)
	api.POST("/parlays", h.Parlay.Save)
	api.GET("/parlays", h.Parlay.List)
	api.GET("/standings/:league_code", h.Standings.GetStandings)
	return r
}

// corsConfig 含 "*" 时放开全部来源；cors.New 遇到不带协议的来源会 panic，这里先过滤掉
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}
	var allowed []string
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			allowed = append(allowed, o)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowed
	cfg.AllowCredentials = true
	return cfg
}
