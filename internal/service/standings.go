package service

import (
	"context"
	"fmt"

	"MatchOdds/internal/adapter/apibasketball"
	"MatchOdds/internal/adapter/footballdata"
	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/model"

	"github.com/sirupsen/logrus"
)

// StandingsResult 积分榜接口返回
type StandingsResult struct {
	Standings []model.Standing `json:"standings"`
	League    string           `json:"league"`
}

// StandingsService 足球/篮球积分榜
type StandingsService struct {
	football   interfaces.FootballProvider
	basketball interfaces.BasketballProvider
	logger     *logrus.Logger
}

func NewStandingsService(football interfaces.FootballProvider, basketball interfaces.BasketballProvider, logger *logrus.Logger) *StandingsService {
	return &StandingsService{football: football, basketball: basketball, logger: logger}
}

// GetStandings 联赛代码未注册返回 ErrNotFound；数据源不可用返回空表
func (s *StandingsService) GetStandings(ctx context.Context, code string) (*StandingsResult, error) {
	if league, ok := model.BasketballLeague(code); ok {
		return &StandingsResult{
			Standings: apibasketball.ParseStandings(s.basketball.Standings(ctx, league.ProviderID)),
			League:    league.Name,
		}, nil
	}
	league, ok := model.FootballLeague(code)
	if !ok {
		return nil, fmt.Errorf("联赛 %s: %w", code, ErrNotFound)
	}
	standings := footballdata.ParseStandings(s.football.Standings(ctx, league.Code))
	if len(standings) == 0 {
		s.logger.WithField("league", code).Warn("积分榜为空（数据源不可用或未配置）")
	}
	return &StandingsResult{Standings: standings, League: league.Name}, nil
}
