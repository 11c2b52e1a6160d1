package api

import (
	"net/http"

	"MatchOdds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StandingsHandler 积分榜接口
type StandingsHandler struct {
	standingsService *service.StandingsService
	logger           *logrus.Logger
}

func NewStandingsHandler(standingsService *service.StandingsService, logger *logrus.Logger) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService, logger: logger}
}

// GetStandings GET /api/standings/:league_code，足球用联赛代码，篮球用 EURO 或 120
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	result, err := h.standingsService.GetStandings(c.Request.Context(), c.Param("league_code"))
	if err != nil {
		respondError(c, h.logger, "GetStandings", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
