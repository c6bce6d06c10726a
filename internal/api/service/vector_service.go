package service

import (
	"context"
	"time"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/pkg/common"
	"golang-stock-advisor/pkg/logger"
)

// VectorService fronts the vector gateway for the three collections.
// Timestamps are server-set; embeddings always come from the caller.
type VectorService interface {
	AddNews(ctx context.Context, req *dto.AddNewsRequest) error
	SearchNews(ctx context.Context, vector []float32) ([]dto.NewsRecord, error)
	AddConversation(ctx context.Context, userID uint, req *dto.AddConversationRequest) error
	ConversationHistory(ctx context.Context, userID uint) ([]dto.ConversationRecord, error)
	AddRecommendation(ctx context.Context, userID uint, req *dto.AddVectorRecommendationRequest) error
	SearchRecommendations(ctx context.Context, userID uint, vector []float32) ([]dto.RecommendationRecord, error)
}

// NewVectorService creates a new vector service.
func NewVectorService(weaviateRepo repository.WeaviateRepository, logger *logger.Logger) VectorService {
	return &vectorService{weaviateRepo: weaviateRepo, logger: logger}
}

type vectorService struct {
	weaviateRepo repository.WeaviateRepository
	logger       *logger.Logger
}

// AddNews inserts a news article with its embedding.
func (s *vectorService) AddNews(ctx context.Context, req *dto.AddNewsRequest) error {
	return s.weaviateRepo.AddNews(ctx, req.Title, req.Content, time.Now().UTC(), req.Vector)
}

// SearchNews returns the nearest news articles to the query vector.
func (s *vectorService) SearchNews(ctx context.Context, vector []float32) ([]dto.NewsRecord, error) {
	return s.weaviateRepo.SearchNews(ctx, vector, common.DefaultSearchLimit)
}

// AddConversation inserts a conversation message for the current user.
func (s *vectorService) AddConversation(ctx context.Context, userID uint, req *dto.AddConversationRequest) error {
	return s.weaviateRepo.AddConversation(ctx, userID, req.Message, time.Now().UTC(), req.Vector)
}

// ConversationHistory returns the stored messages for the current user.
func (s *vectorService) ConversationHistory(ctx context.Context, userID uint) ([]dto.ConversationRecord, error) {
	return s.weaviateRepo.ConversationHistory(ctx, userID, common.DefaultHistoryLimit)
}

// AddRecommendation inserts a recommendation for the current user.
func (s *vectorService) AddRecommendation(ctx context.Context, userID uint, req *dto.AddVectorRecommendationRequest) error {
	return s.weaviateRepo.AddRecommendation(ctx, userID, req.Text, time.Now().UTC(), req.Vector)
}

// SearchRecommendations returns the nearest recommendations to the query
// vector, scoped to the current user.
func (s *vectorService) SearchRecommendations(ctx context.Context, userID uint, vector []float32) ([]dto.RecommendationRecord, error) {
	return s.weaviateRepo.SearchRecommendations(ctx, vector, userID, common.DefaultSearchLimit)
}
