package interfaces

import (
	"context"

	"MatchOdds/internal/model"
)

// ParlayRepository 串关持久化（只增只查）
type ParlayRepository interface {
	Create(ctx context.Context, parlay *model.Parlay) error
	List(ctx context.Context, limit int) ([]*model.Parlay, error)
}
