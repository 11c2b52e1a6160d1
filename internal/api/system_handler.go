package api

import (
	"net/http"

	"MatchOdds/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "MatchOdds API"
	serviceVersion = "2.0.0"
)

// ProviderLister 返回已配置 key 的数据源
type ProviderLister interface {
	ListConfigured() []model.ProviderType
}

// SystemHandler 服务信息与健康检查
type SystemHandler struct {
	providers ProviderLister
}

func NewSystemHandler(providers ProviderLister) *SystemHandler {
	return &SystemHandler{providers: providers}
}

// Root GET /api/
func (h *SystemHandler) Root(c *gin.Context) {
	sources := []model.ProviderType{}
	if h.providers != nil {
		if configured := h.providers.ListConfigured(); configured != nil {
			sources = configured
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      serviceName,
		"version":      serviceVersion,
		"data_sources": sources,
	})
}

// Health GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
