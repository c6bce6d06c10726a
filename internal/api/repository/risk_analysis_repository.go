package repository

import (
	"context"

	"golang-stock-advisor/internal/entity"

	"gorm.io/gorm"
)

// RiskAnalysisRepository defines the interface for risk analysis data
// operations.
type RiskAnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.RiskAnalysis) error
	FindAllByUser(ctx context.Context, userID uint) ([]entity.RiskAnalysis, error)
}

// NewRiskAnalysisRepository creates a new GORM-based risk analysis
// repository.
func NewRiskAnalysisRepository(db *gorm.DB) RiskAnalysisRepository {
	return &riskAnalysisRepository{db: db}
}

type riskAnalysisRepository struct {
	db *gorm.DB
}

// Create inserts a new risk analysis.
func (r *riskAnalysisRepository) Create(ctx context.Context, analysis *entity.RiskAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

// FindAllByUser retrieves all risk analyses owned by the given user.
func (r *riskAnalysisRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.RiskAnalysis, error) {
	var analyses []entity.RiskAnalysis
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}
