package model

import (
	"time"

	"gorm.io/datatypes"
)

// ParlayItem 串关中的一注
type ParlayItem struct {
	MatchID   string  `json:"match_id"`
	Selection string  `json:"selection"`
	Odds      float64 `json:"odds"`
	MatchName string  `json:"match_name"`
	Market    string  `json:"market,omitempty"`
}

// ParlayResult 串关计算结果
type ParlayResult struct {
	Items           []ParlayItem `json:"items"`
	CombinedOdds    float64      `json:"combined_odds"`
	Probability     float64      `json:"probability"`
	PotentialReturn float64      `json:"potential_return"` // 按 10 元本金计算
	RiskAssessment  string       `json:"risk_assessment"`  // Low / Medium / High
}

// Parlay 已保存的串关（只插入、只读取，不更新不删除）
type Parlay struct {
	ID              string         `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Items           datatypes.JSON `gorm:"column:items;type:jsonb;not null" json:"items"`
	CombinedOdds    float64        `gorm:"column:combined_odds;type:double precision;not null" json:"combined_odds"`
	Probability     float64        `gorm:"column:probability;type:double precision;not null" json:"probability"`
	PotentialReturn float64        `gorm:"column:potential_return;type:double precision;not null" json:"potential_return"`
	RiskAssessment  string         `gorm:"column:risk_assessment;type:varchar(16);not null" json:"risk_assessment"`
	CreatedAt       time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (Parlay) TableName() string {
	return "parlays"
}
