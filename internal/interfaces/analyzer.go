package interfaces

import (
	"context"

	"MatchOdds/internal/model"
)

// MatchAnalyzer 比赛AI分析，失败时返回占位结果而不是错误
type MatchAnalyzer interface {
	Analyze(ctx context.Context, mc model.MatchContext) *model.AIAnalysis
}
