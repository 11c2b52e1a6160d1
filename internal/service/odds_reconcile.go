package service

import (
	"strings"
	"unicode/utf8"

	"MatchOdds/internal/model"
)

// 赔率市场与选项
const (
	marketH2H    = "h2h"
	marketTotals = "totals"
	marketBTTS   = "btts"

	totalsLine = 2.5
)

type oddsIndexEntry struct {
	home  string
	away  string
	event model.OddsEvent
}

// OddsIndex 以 "规范主队_规范客队" 为键的赔率索引，保留上游顺序（模糊匹配按此顺序取第一个）
type OddsIndex struct {
	entries []oddsIndexEntry
	byKey   map[string]int
}

func oddsKey(home, away string) string {
	return home + "_" + away
}

// BuildOddsIndex 每个联赛每次请求建一次；重复键后者覆盖前者，位置不变
func BuildOddsIndex(events []model.OddsEvent) *OddsIndex {
	idx := &OddsIndex{byKey: make(map[string]int, len(events))}
	for _, e := range events {
		home, away := NormalizeTeamName(e.HomeTeam), NormalizeTeamName(e.AwayTeam)
		if home == "" || away == "" {
			continue
		}
		key := oddsKey(home, away)
		if i, ok := idx.byKey[key]; ok {
			idx.entries[i].event = e
			continue
		}
		idx.byKey[key] = len(idx.entries)
		idx.entries = append(idx.entries, oddsIndexEntry{home: home, away: away, event: e})
	}
	return idx
}

// Len 索引条目数
func (idx *OddsIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// lookup 精确键优先；否则按顺序取第一个主客队都能对上的条目
func (idx *OddsIndex) lookup(home, away string) (*model.OddsEvent, bool) {
	if idx.Len() == 0 || home == "" || away == "" {
		return nil, false
	}
	if i, ok := idx.byKey[oddsKey(home, away)]; ok {
		return &idx.entries[i].event, true
	}
	for i := range idx.entries {
		e := &idx.entries[i]
		if teamsMatch(home, e.home) && teamsMatch(away, e.away) {
			return &e.event, true
		}
	}
	return nil, false
}

// teamsMatch 相等、互相包含，或共享一个长度大于 4 的词
func teamsMatch(a, b string) bool {
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(a) {
		if utf8.RuneCountInString(t) > 4 {
			tokens[t] = struct{}{}
		}
	}
	for _, t := range strings.Fields(b) {
		if _, ok := tokens[t]; ok {
			return true
		}
	}
	return false
}

// Reconcile 把赔率挂到赛程上。返回的 odds 非空当且仅当 bool 为 true。
func Reconcile(m model.Match, idx *OddsIndex) (*model.MatchOdds, bool) {
	event, ok := idx.lookup(NormalizeTeamName(m.HomeTeam), NormalizeTeamName(m.AwayTeam))
	if !ok {
		return nil, false
	}
	odds := bestPrices(event)
	if odds == nil {
		return nil, false
	}
	return odds, true
}

// bestPrices 每个选项取所有博彩公司中的最高价（严格大于才替换）
func bestPrices(event *model.OddsEvent) *model.MatchOdds {
	var (
		winner     model.MatchWinnerOdds
		totals     model.TotalsOdds
		btts       model.BTTSOdds
		bookmakers int
	)
	keep := func(cur *float64, price float64) bool {
		if price <= 0 {
			return false
		}
		if price > *cur {
			*cur = price
		}
		return true
	}

	for _, b := range event.Bookmakers {
		contributed := false
		for _, market := range b.Markets {
			for _, o := range market.Outcomes {
				var slot *float64
				switch market.Key {
				case marketH2H:
					switch o.Name {
					case event.HomeTeam:
						slot = &winner.Home
					case event.AwayTeam:
						slot = &winner.Away
					case "Draw":
						slot = &winner.Draw
					}
				case marketTotals:
					if o.Point == nil || *o.Point != totalsLine {
						continue
					}
					switch o.Name {
					case "Over":
						slot = &totals.Over
					case "Under":
						slot = &totals.Under
					}
				case marketBTTS:
					switch o.Name {
					case "Yes":
						slot = &btts.Yes
					case "No":
						slot = &btts.No
					}
				}
				if slot != nil && keep(slot, o.Price) {
					contributed = true
				}
			}
		}
		if contributed {
			bookmakers++
		}
	}

	if bookmakers == 0 {
		return nil
	}
	odds := &model.MatchOdds{Bookmakers: bookmakers}
	if winner != (model.MatchWinnerOdds{}) {
		odds.MatchWinner = &winner
	}
	if totals != (model.TotalsOdds{}) {
		odds.OverUnder25 = &totals
	}
	if btts != (model.BTTSOdds{}) {
		odds.BothTeamsScore = &btts
	}
	return odds
}
