package api

import (
	"net/http"

	"MatchOdds/internal/model"
	"MatchOdds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// parlayItemRequest 前端有两种写法：odds/selection 或 price/selection_name
type parlayItemRequest struct {
	MatchID       string   `json:"match_id"`
	Selection     string   `json:"selection"`
	SelectionName string   `json:"selection_name"`
	Odds          *float64 `json:"odds"`
	Price         *float64 `json:"price"`
	MatchName     string   `json:"match_name"`
	Market        string   `json:"market"`
}

func (r parlayItemRequest) toItem() model.ParlayItem {
	item := model.ParlayItem{
		MatchID:   r.MatchID,
		Selection: r.Selection,
		MatchName: r.MatchName,
		Market:    r.Market,
	}
	if item.Selection == "" {
		item.Selection = r.SelectionName
	}
	switch {
	case r.Odds != nil:
		item.Odds = *r.Odds
	case r.Price != nil:
		item.Odds = *r.Price
	}
	return item
}

type parlayRequest struct {
	Items []parlayItemRequest `json:"items"`
}

func (r parlayRequest) items() []model.ParlayItem {
	items := make([]model.ParlayItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.toItem())
	}
	return items
}

// ParlayHandler 串关计算与保存
type ParlayHandler struct {
	parlayService *service.ParlayService
	logger        *logrus.Logger
}

func NewParlayHandler(parlayService *service.ParlayService, logger *logrus.Logger) *ParlayHandler {
	return &ParlayHandler{parlayService: parlayService, logger: logger}
}

func (h *ParlayHandler) bind(c *gin.Context) ([]model.ParlayItem, bool) {
	var req parlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return nil, false
	}
	return req.items(), true
}

// Calculate POST /api/parlay/calculate，只计算不保存
func (h *ParlayHandler) Calculate(c *gin.Context) {
	items, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.parlayService.Calculate(items)
	if err != nil {
		respondError(c, h.logger, "CalculateParlay", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Save POST /api/parlays
func (h *ParlayHandler) Save(c *gin.Context) {
	items, ok := h.bind(c)
	if !ok {
		return
	}
	parlay, err := h.parlayService.Save(c.Request.Context(), items)
	if err != nil {
		respondError(c, h.logger, "SaveParlay", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":               parlay.ID,
		"message":          "Parlay saved",
		"items":            parlay.Items,
		"combined_odds":    parlay.CombinedOdds,
		"probability":      parlay.Probability,
		"potential_return": parlay.PotentialReturn,
		"risk_assessment":  parlay.RiskAssessment,
		"created_at":       parlay.CreatedAt,
	})
}

// List GET /api/parlays，最新的在前
func (h *ParlayHandler) List(c *gin.Context) {
	parlays, err := h.parlayService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "ListParlays", err)
		return
	}
	if parlays == nil {
		parlays = []*model.Parlay{}
	}
	c.JSON(http.StatusOK, gin.H{"parlays": parlays})
}
