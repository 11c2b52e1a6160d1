package interfaces

import (
	"context"

	"MatchOdds/internal/model"
)

// 所有数据源方法都不返回 error：缺 key、网络失败、非200、解析失败一律返回空结果，由调用方降级处理

// FootballProvider 足球赛程/积分榜数据源（football-data.org）
type FootballProvider interface {
	// Configured 是否配置了 key
	Configured() bool
	ScheduledMatches(ctx context.Context, leagueCode, status string) []model.FDMatch
	// MatchByID 不存在返回 nil
	MatchByID(ctx context.Context, id string) *model.FDMatch
	HeadToHead(ctx context.Context, matchID string, limit int) []model.FDMatch
	TeamRecentResults(ctx context.Context, teamID, limit int) []model.FDMatch
	// Standings 不可用返回 nil
	Standings(ctx context.Context, leagueCode string) *model.FDStandingsResponse
}

// OddsProvider 博彩赔率数据源（The Odds API）
type OddsProvider interface {
	Configured() bool
	OddsForLeague(ctx context.Context, sportKey string) []model.OddsEvent
	EventOdds(ctx context.Context, sportKey, eventID string) *model.OddsEvent
}

// BasketballProvider 篮球数据源（api-basketball），赛季取自配置
type BasketballProvider interface {
	Configured() bool
	Games(ctx context.Context, leagueID string) []model.BBGame
	GameByID(ctx context.Context, id string) *model.BBGame
	HeadToHead(ctx context.Context, homeID, awayID int) []model.BBGame
	TeamGames(ctx context.Context, teamID int) []model.BBGame
	Standings(ctx context.Context, leagueID string) [][]model.BBStandingEntry
}

// ChatCompleter OpenAI 兼容的对话补全
type ChatCompleter interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
