package repository

import (
	"context"

	"MatchOdds/internal/interfaces"
	"MatchOdds/internal/model"

	"gorm.io/gorm"
)

type parlayRepository struct {
	db *gorm.DB
}

// NewParlayRepository 创建串关仓储
func NewParlayRepository(db *gorm.DB) interfaces.ParlayRepository {
	return &parlayRepository{db: db}
}

func (r *parlayRepository) Create(ctx context.Context, parlay *model.Parlay) error {
	return r.db.WithContext(ctx).Create(parlay).Error
}

// List 按创建时间倒序，最多 limit 条
func (r *parlayRepository) List(ctx context.Context, limit int) ([]*model.Parlay, error) {
	var parlays []*model.Parlay
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&parlays).Error
	if err != nil {
		return nil, err
	}
	return parlays, nil
}
