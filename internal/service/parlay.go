package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// parlayStake 计算 potential_return 的参考本金
	parlayStake = 10
	// ParlayListLimit 列表最多返回条数
	ParlayListLimit = 100
)

// 风险等级
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// CalculateParlay 串关赔率 = 各注赔率乘积（两位小数），概率与回报都基于取整后的赔率。
// 空列表或存在非正赔率时返回 ErrInvalidInput。
func CalculateParlay(items []model.ParlayItem) (*model.ParlayResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("串关至少需要一注: %w", ErrInvalidInput)
	}

	combined := decimal.NewFromInt(1)
	for i, item := range items {
		if item.Odds <= 0 {
			return nil, fmt.Errorf("第%d注赔率必须为正数(%v): %w", i+1, item.Odds, ErrInvalidInput)
		}
		combined = combined.Mul(decimal.NewFromFloat(item.Odds))
	}

	rounded := combined.Round(2)
	divisor := rounded
	if divisor.IsZero() {
		// 极小赔率取整后为 0，概率改用原始乘积
		divisor = combined
	}
	probability := decimal.NewFromInt(100).DivRound(divisor, 2)
	potentialReturn := rounded.Mul(decimal.NewFromInt(parlayStake)).Round(2)

	combinedF := finiteFloat(rounded)
	probabilityF := finiteFloat(probability)
	returnF := finiteFloat(potentialReturn)

	return &model.ParlayResult{
		Items:           items,
		CombinedOdds:    combinedF,
		Probability:     probabilityF,
		PotentialReturn: returnF,
		RiskAssessment:  AssessRisk(len(items), probabilityF),
	}, nil
}

// finiteFloat 超出 float64 范围时取 ±MaxFloat64，结果总能 JSON 序列化
func finiteFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}

// AssessRisk 先判 Low 再判 Medium，其余 High
func AssessRisk(legs int, probability float64) string {
	switch {
	case legs <= 2 && probability > 20:
		return RiskLow
	case legs <= 4 && probability > 10:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ParlayService 串关计算与保存
type ParlayService struct {
	repo   interfaces.ParlayRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewParlayService(repo interfaces.ParlayRepository, logger *logrus.Logger) *ParlayService {
	return &ParlayService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Calculate 只计算不落库
func (s *ParlayService) Calculate(items []model.ParlayItem) (*model.ParlayResult, error) {
	return CalculateParlay(items)
}

// Save 计算后落库，保存后不可修改
func (s *ParlayService) Save(ctx context.Context, items []model.ParlayItem) (*model.Parlay, error) {
	result, err := CalculateParlay(items)
	if err != nil {
		return nil, err
	}
	itemsJSON, err := json.Marshal(result.Items)
	if err != nil {
		return nil, fmt.Errorf("序列化串关选项失败: %w", err)
	}

	parlay := &model.Parlay{
		ID:              uuid.New().String(),
		Items:           itemsJSON,
		CombinedOdds:    result.CombinedOdds,
		Probability:     result.Probability,
		PotentialReturn: result.PotentialReturn,
		RiskAssessment:  result.RiskAssessment,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.Create(ctx, parlay); err != nil {
		return nil, fmt.Errorf("保存串关失败: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"parlay_id": parlay.ID,
		"legs":      len(items),
		"odds":      parlay.CombinedOdds,
	}).Info("串关已保存")
	return parlay, nil
}

// List 最新的在前，最多 ParlayListLimit 条
func (s *ParlayService) List(ctx context.Context) ([]*model.Parlay, error) {
	parlays, err := s.repo.List(ctx, ParlayListLimit)
	if err != nil {
		return nil, fmt.Errorf("查询串关失败: %w", err)
	}
	return parlays, nil
}
