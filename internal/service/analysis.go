package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/model"

	"github.com/sirupsen/logrus"
)

const analysisSystemPrompt = `You are an expert sports betting analyst. Analyze the match data provided and give betting insights.
Your analysis should include:
1. A prediction (home win, away win, or draw for football / home win or away win for basketball)
2. Confidence level (0-100%)
3. Best bet recommendation (e.g., "Home Win", "Over 2.5 Goals", "Both Teams to Score", specific handicap)
4. Brief reasoning (2-3 sentences max, focus on key factors)
5. Risk level (low, medium, high)

Consider: team form, head-to-head record, home/away performance, injuries, league position.

Respond ONLY with valid JSON:
{"prediction": "...", "confidence": 75.5, "best_bet": "...", "reasoning": "...", "risk_level": "medium"}`

const (
	reasonNotConfigured = "AI analysis requires API key configuration"
	maxReasoningLen     = 300
	maxErrorLen         = 100
)

// AnalysisService 调用大模型生成投注分析；任何失败都返回占位结果
type AnalysisService struct {
	llm    interfaces.ChatCompleter
	logger *logrus.Logger
}

func NewAnalysisService(llm interfaces.ChatCompleter, logger *logrus.Logger) *AnalysisService {
	return &AnalysisService{llm: llm, logger: logger}
}

func unavailable(reason string) *model.AIAnalysis {
	return &model.AIAnalysis{
		Prediction: "Analysis unavailable",
		Confidence: 0,
		BestBet:    "N/A",
		Reasoning:  reason,
		RiskLevel:  "unknown",
	}
}

// Analyze 实现 interfaces.MatchAnalyzer
func (s *AnalysisService) Analyze(ctx context.Context, mc model.MatchContext) *model.AIAnalysis {
	if s.llm == nil || !s.llm.Configured() {
		return unavailable(reasonNotConfigured)
	}
	text, err := s.llm.Complete(ctx, analysisSystemPrompt, buildAnalysisPrompt(mc))
	if err != nil {
		s.logger.WithError(err).WithField("match_id", mc.ID).Error("AI分析失败")
		return unavailable(truncate(err.Error(), maxErrorLen))
	}
	return parseAnalysis(text)
}

func buildAnalysisPrompt(mc model.MatchContext) string {
	sport := mc.Sport
	if sport == "" {
		sport = model.SportFootball
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this %s match:\n\n", sport)
	fmt.Fprintf(&b, "Home Team: %s\n", orDefault(mc.HomeTeam, "Unknown"))
	fmt.Fprintf(&b, "Away Team: %s\n", orDefault(mc.AwayTeam, "Unknown"))
	fmt.Fprintf(&b, "League: %s\n", orDefault(mc.League, "Unknown"))
	fmt.Fprintf(&b, "Home Recent Form: %s\n", joinOr(mc.HomeForm, "Unknown"))
	fmt.Fprintf(&b, "Away Recent Form: %s\n", joinOr(mc.AwayForm, "Unknown"))
	fmt.Fprintf(&b, "Head to Head (last 5): %s\n", formatH2H(mc.HeadToHead))
	fmt.Fprintf(&b, "Home Injuries: %s\n", joinOr(mc.HomeInjuries, "None reported"))
	fmt.Fprintf(&b, "Away Injuries: %s\n\n", joinOr(mc.AwayInjuries, "None reported"))
	b.WriteString("Provide your expert betting analysis.")
	return b.String()
}

func formatH2H(h2h []model.HeadToHead) string {
	if len(h2h) == 0 {
		return "No data"
	}
	parts := make([]string, 0, len(h2h))
	for _, h := range h2h {
		parts = append(parts, fmt.Sprintf("%s %s %s-%s %s", h.Date, h.Home, scoreText(h.HomeScore), scoreText(h.AwayScore), h.Away))
	}
	return strings.Join(parts, "; ")
}

func scoreText(p *int) string {
	if p == nil {
		return "?"
	}
	return strconv.Itoa(*p)
}

// llmAnalysis confidence 可能是数字也可能是 "75%" 这样的字符串
type llmAnalysis struct {
	Prediction string      `json:"prediction"`
	Confidence interface{} `json:"confidence"`
	BestBet    string      `json:"best_bet"`
	Reasoning  string      `json:"reasoning"`
	RiskLevel  string      `json:"risk_level"`
}

// parseAnalysis 取第一个 { 到最后一个 } 之间的内容解析；失败则给出保守的默认结论
func parseAnalysis(text string) *model.AIAnalysis {
	start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var raw llmAnalysis
		if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err == nil {
			if conf, ok := toConfidence(raw.Confidence); ok {
				return &model.AIAnalysis{
					Prediction: raw.Prediction,
					Confidence: conf,
					BestBet:    raw.BestBet,
					Reasoning:  raw.Reasoning,
					RiskLevel:  raw.RiskLevel,
				}
			}
		}
	}

	reasoning := truncate(text, maxReasoningLen)
	if reasoning == "" {
		reasoning = "Analysis completed"
	}
	return &model.AIAnalysis{
		Prediction: "Home Win",
		Confidence: 65,
		BestBet:    "Home Win",
		Reasoning:  reasoning,
		RiskLevel:  "medium",
	}
}

func toConfidence(v interface{}) (float64, bool) {
	switch c := v.(type) {
	case nil:
		return 0, true
	case float64:
		return c, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c), "%")), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ComputeValueBet 预测结果对应胜平负某一项时，比较AI概率与市场隐含概率
func ComputeValueBet(analysis *model.AIAnalysis, odds *model.MatchOdds) *model.ValueBet {
	if analysis == nil || odds == nil || odds.MatchWinner == nil || analysis.Confidence <= 0 {
		return nil
	}
	var price float64
	prediction := strings.ToLower(analysis.Prediction)
	switch {
	case strings.Contains(prediction, "home"):
		price = odds.MatchWinner.Home
	case strings.Contains(prediction, "away"):
		price = odds.MatchWinner.Away
	case strings.Contains(prediction, "draw"):
		price = odds.MatchWinner.Draw
	}
	if price <= 0 {
		return nil
	}

	implied := round2(100 / price)
	edge := round2(analysis.Confidence - implied)
	rating := "Low"
	switch {
	case edge > 10:
		rating = "High"
	case edge > 5:
		rating = "Medium"
	}
	return &model.ValueBet{
		HasValue:           edge > 5,
		ValueRating:        rating,
		AIProbability:      round2(analysis.Confidence),
		ImpliedProbability: implied,
		Edge:               edge,
	}
}

// truncate 按字符截断
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func joinOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}
