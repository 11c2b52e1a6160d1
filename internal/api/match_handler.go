package api

import (
	"net/http"
	"strconv"

	"MatchOdds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MatchHandler 赛事列表、精选与详情接口
type MatchHandler struct {
	matchService *service.MatchService
	logger       *logrus.Logger
}

// NewMatchHandler 创建 MatchHandler
func NewMatchHandler(matchService *service.MatchService, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{matchService: matchService, logger: logger}
}

func filterFromQuery(c *gin.Context) service.MatchFilter {
	onlyWithOdds, _ := strconv.ParseBool(c.DefaultQuery("only_with_odds", "false"))
	return service.MatchFilter{
		League:       c.Query("league"),
		Sport:        c.Query("sport"),
		OnlyWithOdds: onlyWithOdds,
		Status:       c.Query("status"),
	}
}

// ListLeagues 联赛注册表
// GET /api/leagues
func (h *MatchHandler) ListLeagues(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"leagues": h.matchService.ListLeagues()})
}

// ListMatches 赛事列表，按开赛时间升序
// GET /api/matches?league=PL&sport=football&only_with_odds=true&status=SCHEDULED
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches := h.matchService.ListMatches(c.Request.Context(), filterFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}

// TopPicks 快速分析概率最高的几场
// GET /api/top-picks?limit=4&sport=football&league=PL
func (h *MatchHandler) TopPicks(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultTopPicks)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	matches := h.matchService.TopPicks(c.Request.Context(), filterFromQuery(c), limit)
	c.JSON(http.StatusOK, gin.H{"matches": matches, "total": len(matches)})
}

// GetMatchDetail 单场详情：交锋、近况、AI 分析
// GET /api/matches/:match_id
func (h *MatchHandler) GetMatchDetail(c *gin.Context) {
	detail, err := h.matchService.GetMatchDetail(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		respondError(c, h.logger, "GetMatchDetail", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
