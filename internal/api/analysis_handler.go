package api

import (
	"net/http"

	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalysisHandler 直接暴露大模型分析
type AnalysisHandler struct {
	analyzer interfaces.MatchAnalyzer
	logger   *logrus.Logger
}

func NewAnalysisHandler(analyzer interfaces.MatchAnalyzer, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, logger: logger}
}

// Analyze POST /api/analyze，请求体为比赛上下文；分析失败返回占位结果而不是错误
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req model.MatchContext
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.analyzer.Analyze(c.Request.Context(), req))
}
