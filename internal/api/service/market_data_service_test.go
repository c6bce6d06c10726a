package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMarketDataRepository struct {
	rows        []entity.MarketData
	latestCalls int
}

func (f *fakeMarketDataRepository) Create(ctx context.Context, data *entity.MarketData) error {
	data.ID = uint(len(f.rows) + 1)
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, *data)
	return nil
}

func (f *fakeMarketDataRepository) FindLatestBySymbol(ctx context.Context, symbol string) (*entity.MarketData, error) {
	f.latestCalls++
	var latest *entity.MarketData
	for i := range f.rows {
		row := f.rows[i]
		if row.Symbol != symbol {
			continue
		}
		if latest == nil || row.CreatedAt.After(latest.CreatedAt) {
			latest = &row
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func newTestMarketDataService(t *testing.T) (MarketDataService, *fakeMarketDataRepository) {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	repo := &fakeMarketDataRepository{}
	// nil redis client disables the cache; the cache path is covered by
	// the repository contract staying the source of truth.
	return NewMarketDataService(repo, nil, time.Minute, log), repo
}

func TestMarketDataLatestPicksNewestRow(t *testing.T) {
	svc, repo := newTestMarketDataService(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo.rows = []entity.MarketData{
		{ID: 1, Symbol: "AAPL", Price: 180, CreatedAt: base},
		{ID: 2, Symbol: "AAPL", Price: 184, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Symbol: "AAPL", Price: 182, CreatedAt: base.Add(time.Hour)},
		{ID: 4, Symbol: "GOOG", Price: 140, CreatedAt: base.Add(3 * time.Hour)},
	}

	latest, err := svc.Latest(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 184.0, latest.Price)
	assert.Equal(t, uint(2), latest.ID)
}

func TestMarketDataLatestUnknownSymbol(t *testing.T) {
	svc, _ := newTestMarketDataService(t)

	_, err := svc.Latest(context.Background(), "MSFT")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestMarketDataCreate(t *testing.T) {
	svc, repo := newTestMarketDataService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateMarketDataRequest{Symbol: "AAPL", Price: floatPtr(181.25)})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", created.Symbol)
	assert.Equal(t, 181.25, created.Price)
	require.Len(t, repo.rows, 1)

	latest, err := svc.Latest(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, created.ID, latest.ID)
}
