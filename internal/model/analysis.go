package model

// MatchContext 提交给大模型的比赛上下文
type MatchContext struct {
	ID           string       `json:"id"`
	Sport        Sport        `json:"sport"`
	HomeTeam     string       `json:"home_team"`
	AwayTeam     string       `json:"away_team"`
	League       string       `json:"league"`
	HomeForm     []string     `json:"home_form"`
	AwayForm     []string     `json:"away_form"`
	HeadToHead   []HeadToHead `json:"h2h"`
	HomeInjuries []string     `json:"home_injuries"`
	AwayInjuries []string     `json:"away_injuries"`
}

// AIAnalysis 大模型返回的投注分析
type AIAnalysis struct {
	Prediction string    `json:"prediction"`
	Confidence float64   `json:"confidence"`
	BestBet    string    `json:"best_bet"`
	Reasoning  string    `json:"reasoning"`
	RiskLevel  string    `json:"risk_level"`
	ValueBet   *ValueBet `json:"value_bet"`
}

// ValueBet AI概率与市场隐含概率的差值
type ValueBet struct {
	HasValue           bool    `json:"has_value"`
	ValueRating        string  `json:"value_rating"` // High / Medium / Low
	AIProbability      float64 `json:"ai_probability"`
	ImpliedProbability float64 `json:"implied_probability"`
	Edge               float64 `json:"edge"`
}
