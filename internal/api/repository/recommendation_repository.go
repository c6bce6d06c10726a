package repository

import (
	"context"

	"golang-stock-advisor/internal/entity"

	"gorm.io/gorm"
)

// RecommendationRepository defines the interface for recommendation data
// operations.
type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.Recommendation) error
	FindAllByUser(ctx context.Context, userID uint) ([]entity.Recommendation, error)
}

// NewRecommendationRepository creates a new GORM-based recommendation
// repository.
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

type recommendationRepository struct {
	db *gorm.DB
}

// Create inserts a new recommendation.
func (r *recommendationRepository) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	return r.db.WithContext(ctx).Create(recommendation).Error
}

// FindAllByUser retrieves all recommendations owned by the given user.
func (r *recommendationRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.Recommendation, error) {
	var recommendations []entity.Recommendation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recommendations).Error; err != nil {
		return nil, err
	}
	return recommendations, nil
}
