package model

// ProviderType 上游数据源枚举
type ProviderType string

const (
	ProviderFootballData  ProviderType = "football_data"
	ProviderOddsAPI       ProviderType = "odds_api"
	ProviderAPIBasketball ProviderType = "api_basketball"
)

// Sport 运动类型
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
)

// MatchStatus 统一后的比赛状态（各数据源状态码统一映射到这里）
type MatchStatus string

const (
	StatusNotStarted MatchStatus = "NS"
	StatusLive       MatchStatus = "LIVE"
	StatusHalfTime   MatchStatus = "HT"
	StatusFinished   MatchStatus = "FT"
	StatusPostponed  MatchStatus = "PST"
	StatusCancelled  MatchStatus = "CANC"
)

// Started 比赛已开始（比分只在开始后才有意义）
func (s MatchStatus) Started() bool {
	switch s {
	case StatusLive, StatusHalfTime, StatusFinished:
		return true
	default:
		return false
	}
}

// ID 前缀，区分不同数据源里可能重复的数字ID
const (
	FootballIDPrefix   = "fd_"
	BasketballIDPrefix = "bb_"
)
