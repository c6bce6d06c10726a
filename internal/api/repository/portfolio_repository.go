package repository

import (
	"context"

	"golang-stock-advisor/internal/entity"

	"gorm.io/gorm"
)

// PortfolioRepository defines the interface for portfolio data operations.
type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *entity.Portfolio) error
	FindByID(ctx context.Context, id uint) (*entity.Portfolio, error)
	FindAllByUser(ctx context.Context, userID uint) ([]entity.Portfolio, error)
	Update(ctx context.Context, portfolio *entity.Portfolio) error
	Delete(ctx context.Context, id uint) error
}

// NewPortfolioRepository creates a new GORM-based portfolio repository.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

type portfolioRepository struct {
	db *gorm.DB
}

// Create inserts a new portfolio.
func (r *portfolioRepository) Create(ctx context.Context, portfolio *entity.Portfolio) error {
	return r.db.WithContext(ctx).Create(portfolio).Error
}

// FindByID retrieves a portfolio by its ID.
func (r *portfolioRepository) FindByID(ctx context.Context, id uint) (*entity.Portfolio, error) {
	var portfolio entity.Portfolio
	if err := r.db.WithContext(ctx).First(&portfolio, id).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// FindAllByUser retrieves all portfolios owned by the given user.
func (r *portfolioRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.Portfolio, error) {
	var portfolios []entity.Portfolio
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&portfolios).Error; err != nil {
		return nil, err
	}
	return portfolios, nil
}

// Update saves the full portfolio record.
func (r *portfolioRepository) Update(ctx context.Context, portfolio *entity.Portfolio) error {
	return r.db.WithContext(ctx).Save(portfolio).Error
}

// Delete removes a portfolio by its ID.
func (r *portfolioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Portfolio{}, id).Error
}
