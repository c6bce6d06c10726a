package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/common"
	"golang-stock-advisor/pkg/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// MarketDataService defines market data ingestion and latest-price lookup.
type MarketDataService interface {
	Create(ctx context.Context, req *dto.CreateMarketDataRequest) (*entity.MarketData, error)
	Latest(ctx context.Context, symbol string) (*entity.MarketData, error)
}

// NewMarketDataService creates a market data service. The redis client acts
// as a read-through cache for the latest row per symbol; a nil client
// disables caching.
func NewMarketDataService(marketDataRepo repository.MarketDataRepository, redisClient *redis.Client, cacheTTL time.Duration, logger *logger.Logger) MarketDataService {
	return &marketDataService{
		marketDataRepo: marketDataRepo,
		redisClient:    redisClient,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

type marketDataService struct {
	marketDataRepo repository.MarketDataRepository
	redisClient    *redis.Client
	cacheTTL       time.Duration
	logger         *logger.Logger
}

// Create inserts a price observation and refreshes the latest-price cache
// for its symbol.
func (s *marketDataService) Create(ctx context.Context, req *dto.CreateMarketDataRequest) (*entity.MarketData, error) {
	data := &entity.MarketData{
		Symbol: req.Symbol,
		Price:  *req.Price,
	}
	if err := s.marketDataRepo.Create(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to create market data: %w", err)
	}

	s.cacheSet(ctx, data)
	return data, nil
}

// Latest returns the most recent row for a symbol, serving from cache when
// possible. A symbol with no rows is NotFound.
func (s *marketDataService) Latest(ctx context.Context, symbol string) (*entity.MarketData, error) {
	if cached := s.cacheGet(ctx, symbol); cached != nil {
		return cached, nil
	}

	data, err := s.marketDataRepo.FindLatestBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no market data for symbol %s", apperrors.ErrNotFound, symbol)
		}
		return nil, fmt.Errorf("failed to load market data: %w", err)
	}

	s.cacheSet(ctx, data)
	return data, nil
}

// Cache failures only cost the round trip to the database, so they are
// logged and swallowed.
func (s *marketDataService) cacheSet(ctx context.Context, data *entity.MarketData) {
	if s.redisClient == nil {
		return
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, common.MarketDataCacheKeyPrefix+data.Symbol, encoded, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache market data", logger.StringField("symbol", data.Symbol), logger.ErrorField(err))
	}
}

func (s *marketDataService) cacheGet(ctx context.Context, symbol string) *entity.MarketData {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, common.MarketDataCacheKeyPrefix+symbol).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Failed to read market data cache", logger.StringField("symbol", symbol), logger.ErrorField(err))
		}
		return nil
	}
	var data entity.MarketData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return &data
}
