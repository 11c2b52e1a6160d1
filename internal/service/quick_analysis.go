package service

import (
	"hash/fnv"

	"MatchOdds/internal/model"

	"github.com/shopspring/decimal"
)

const maxProbability = 95

// round2 两位小数，四舍五入（远离零）
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// EstimateQuickAnalysis 有胜平负赔率时取最低价选项的隐含概率；否则用确定性估计（40~95，随比赛变化）
func EstimateQuickAnalysis(m model.Match) model.QuickAnalysis {
	if m.Odds != nil && m.Odds.MatchWinner != nil {
		if qa, ok := fromOdds(m.Odds.MatchWinner); ok {
			return qa
		}
	}
	return estimateWithoutOdds(m)
}

func fromOdds(w *model.MatchWinnerOdds) (model.QuickAnalysis, bool) {
	// 顺序即平局时的优先级
	candidates := []struct {
		pick  model.PickType
		price float64
	}{
		{model.PickHome, w.Home},
		{model.PickAway, w.Away},
		{model.PickDraw, w.Draw},
	}

	var (
		best  model.PickType
		price float64
	)
	for _, c := range candidates {
		if c.price <= 0 {
			continue
		}
		if price == 0 || c.price < price {
			best, price = c.pick, c.price
		}
	}
	if price == 0 {
		return model.QuickAnalysis{}, false
	}

	prob := 100 / price
	if prob > maxProbability {
		prob = maxProbability
	}
	return model.QuickAnalysis{
		Probability: round2(prob),
		BestPick:    best.Label(),
		PickType:    best,
		Source:      model.AnalysisSourceOdds,
		PickOdds:    price,
	}, true
}

// estimateWithoutOdds 由 id+主客队 哈希得到稳定的概率与选项
func estimateWithoutOdds(m model.Match) model.QuickAnalysis {
	h := fnv.New32a()
	_, _ = h.Write([]byte(m.ID + "|" + m.HomeTeam + "|" + m.AwayTeam))
	sum := h.Sum32()

	prob := 40 + float64(sum%5501)/100
	bucket := (sum / 5501) % 100

	pick := model.PickHome
	if m.Sport == model.SportBasketball {
		if bucket >= 60 {
			pick = model.PickAway
		}
	} else {
		switch {
		case bucket >= 80:
			pick = model.PickDraw
		case bucket >= 50:
			pick = model.PickAway
		}
	}

	return model.QuickAnalysis{
		Probability: round2(prob),
		BestPick:    pick.Label(),
		PickType:    pick,
		Source:      model.AnalysisSourceEstimated,
	}
}
