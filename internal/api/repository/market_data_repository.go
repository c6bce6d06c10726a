package repository

import (
	"context"

	"golang-stock-advisor/internal/entity"

	"gorm.io/gorm"
)

// MarketDataRepository defines the interface for market data operations.
type MarketDataRepository interface {
	Create(ctx context.Context, data *entity.MarketData) error
	FindLatestBySymbol(ctx context.Context, symbol string) (*entity.MarketData, error)
}

// NewMarketDataRepository creates a new GORM-based market data repository.
func NewMarketDataRepository(db *gorm.DB) MarketDataRepository {
	return &marketDataRepository{db: db}
}

type marketDataRepository struct {
	db *gorm.DB
}

// Create inserts a new market data row.
func (r *marketDataRepository) Create(ctx context.Context, data *entity.MarketData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

// FindLatestBySymbol retrieves the most recent row for a symbol, ordered by
// created_at descending.
func (r *marketDataRepository) FindLatestBySymbol(ctx context.Context, symbol string) (*entity.MarketData, error) {
	var data entity.MarketData
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("created_at desc").
		First(&data).Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}
