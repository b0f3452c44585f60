package kv

import (
	"context"

	portfolioDomain "agrifund-backend/internal/domain/portfolio"

	"gorm.io/gorm"
)

type PortfolioRepository struct{ db *gorm.DB }

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) All(ctx context.Context) (map[string][]portfolioDomain.Entry, error) {
	portfolios := map[string][]portfolioDomain.Entry{}
	if err := load(ctx, r.db, colPortfolios, &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

func (r *PortfolioRepository) ReplaceAll(ctx context.Context, portfolios map[string][]portfolioDomain.Entry) error {
	if portfolios == nil {
		portfolios = map[string][]portfolioDomain.Entry{}
	}
	return save(ctx, r.db, colPortfolios, portfolios)
}
