package service

import (
	"context"
	"fmt"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/common"
	"golang-stock-advisor/pkg/logger"
	"golang-stock-advisor/pkg/utils"
)

// RecommendationService defines recommendation CRUD plus generation through
// the text generator.
type RecommendationService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateRecommendationRequest) (*entity.Recommendation, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Recommendation, error)
	Generate(ctx context.Context, userID uint, req *dto.GenerateRecommendationRequest) (*entity.Recommendation, error)
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recommendationRepo repository.RecommendationRepository, aiRepo repository.AIRepository, logger *logger.Logger) RecommendationService {
	return &recommendationService{
		recommendationRepo: recommendationRepo,
		aiRepo:             aiRepo,
		logger:             logger,
	}
}

type recommendationService struct {
	recommendationRepo repository.RecommendationRepository
	aiRepo             repository.AIRepository
	logger             *logger.Logger
}

// Create stores a recommendation owned by the given user.
func (s *recommendationService) Create(ctx context.Context, userID uint, req *dto.CreateRecommendationRequest) (*entity.Recommendation, error) {
	recommendation := &entity.Recommendation{
		UserID: userID,
		Text:   req.Text,
	}
	if err := s.recommendationRepo.Create(ctx, recommendation); err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}
	return recommendation, nil
}

// ListByUser returns all recommendations owned by the given user.
func (s *recommendationService) ListByUser(ctx context.Context, userID uint) ([]entity.Recommendation, error) {
	return s.recommendationRepo.FindAllByUser(ctx, userID)
}

// Generate asks the text generator for advice and persists the result for
// the user. Generator outages propagate as ErrUpstreamUnavailable so the
// handler can degrade.
func (s *recommendationService) Generate(ctx context.Context, userID uint, req *dto.GenerateRecommendationRequest) (*entity.Recommendation, error) {
	text, err := s.aiRepo.Generate(ctx, req.Prompt, common.DefaultGenerateMaxTokens)
	if err != nil {
		return nil, err
	}
	text = utils.TruncateRunes(text, 500)

	recommendation := &entity.Recommendation{
		UserID: userID,
		Text:   text,
	}
	if err := s.recommendationRepo.Create(ctx, recommendation); err != nil {
		return nil, fmt.Errorf("failed to store generated recommendation: %w", err)
	}

	s.logger.Info("Recommendation generated", logger.Field("user_id", userID))
	return recommendation, nil
}
