package model

// Match 统一的赛事结构（抹平各数据源差异），每次请求现拼，不落库
type Match struct {
	ID            string        `json:"id"` // 数据源前缀 + 原始ID，如 fd_12345 / bb_678
	Sport         Sport         `json:"sport"`
	League        string        `json:"league"`
	LeagueID      string        `json:"league_id"`
	LeagueCode    string        `json:"league_code"` // 与联赛注册表关联的稳定键
	HomeTeam      string        `json:"home_team"`   // 以赛程数据源的队名为准
	AwayTeam      string        `json:"away_team"`
	HomeLogo      string        `json:"home_logo,omitempty"`
	AwayLogo      string        `json:"away_logo,omitempty"`
	MatchDate     string        `json:"match_date"` // ISO-8601 UTC，唯一排序键
	Status        MatchStatus   `json:"status"`
	HomeScore     *int          `json:"home_score"`
	AwayScore     *int          `json:"away_score"`
	HasOdds       bool          `json:"has_odds"`
	Odds          *MatchOdds    `json:"odds"`
	QuickAnalysis QuickAnalysis `json:"quick_analysis"`

	// 仅内部使用：详情页查 H2H / 近况需要的数据源队伍ID
	HomeTeamID int `json:"-"`
	AwayTeamID int `json:"-"`
}

// MatchOdds 对账后的盘口，每个选项取各博彩公司的最高赔率；缺失的盘口不输出
type MatchOdds struct {
	MatchWinner    *MatchWinnerOdds `json:"Match Winner,omitempty"`
	OverUnder25    *TotalsOdds      `json:"Over/Under 2.5,omitempty"`
	BothTeamsScore *BTTSOdds        `json:"Both Teams Score,omitempty"`
	Bookmakers     int              `json:"bookmakers"` // 参与取价的博彩公司数
}

// MatchWinnerOdds 胜平负（篮球无平局）
type MatchWinnerOdds struct {
	Home float64 `json:"Home,omitempty"`
	Draw float64 `json:"Draw,omitempty"`
	Away float64 `json:"Away,omitempty"`
}

// TotalsOdds 大小球 2.5
type TotalsOdds struct {
	Over  float64 `json:"Over,omitempty"`
	Under float64 `json:"Under,omitempty"`
}

// BTTSOdds 双方进球
type BTTSOdds struct {
	Yes float64 `json:"Yes,omitempty"`
	No  float64 `json:"No,omitempty"`
}

// 快速分析结果来源
const (
	AnalysisSourceOdds      = "odds"
	AnalysisSourceEstimated = "ai_estimated"
)

// PickType 推荐选项
type PickType string

const (
	PickHome PickType = "home"
	PickAway PickType = "away"
	PickDraw PickType = "draw"
)

// Label 选项展示名
func (p PickType) Label() string {
	switch p {
	case PickHome:
		return "Home Win"
	case PickAway:
		return "Away Win"
	default:
		return "Draw"
	}
}

// QuickAnalysis 列表页的轻量分析：隐含概率 + 推荐选项
type QuickAnalysis struct {
	Probability float64  `json:"probability"` // [0, 95]
	BestPick    string   `json:"best_pick"`
	PickType    PickType `json:"pick_type"`
	Source      string   `json:"source"`              // odds / ai_estimated
	PickOdds    float64  `json:"pick_odds,omitempty"` // 仅 source=odds 时有值
}

// HeadToHead 交锋记录
type HeadToHead struct {
	Date      string `json:"date"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

// Injuries 伤停（当前数据源免费档不提供，保持空列表）
type Injuries struct {
	Home []string `json:"home"`
	Away []string `json:"away"`
}

// MatchDetail 详情页：赛事 + 交锋 + 近况 + AI分析
type MatchDetail struct {
	Match
	HeadToHead []HeadToHead `json:"head_to_head"`
	HomeForm   []string     `json:"home_form"`
	AwayForm   []string     `json:"away_form"`
	Injuries   Injuries     `json:"injuries"`
	AIAnalysis *AIAnalysis  `json:"ai_analysis"`
}
