package service

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/logger"
	"golang-stock-advisor/pkg/utils"

	"gorm.io/datatypes"
)

// RiskAnalysisService defines risk analysis CRUD plus generation through
// the text generator.
type RiskAnalysisService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateRiskAnalysisRequest) (*entity.RiskAnalysis, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.RiskAnalysis, error)
	Generate(ctx context.Context, userID uint, req *dto.GenerateRiskAnalysisRequest) (*entity.RiskAnalysis, error)
}

// NewRiskAnalysisService creates a new risk analysis service.
func NewRiskAnalysisService(riskAnalysisRepo repository.RiskAnalysisRepository, aiRepo repository.AIRepository, logger *logger.Logger) RiskAnalysisService {
	return &riskAnalysisService{
		riskAnalysisRepo: riskAnalysisRepo,
		aiRepo:           aiRepo,
		logger:           logger,
	}
}

type riskAnalysisService struct {
	riskAnalysisRepo repository.RiskAnalysisRepository
	aiRepo           repository.AIRepository
	logger           *logger.Logger
}

// Create stores a risk analysis owned by the given user. The score is
// clamped into [0,100] whatever the caller supplied.
func (s *riskAnalysisService) Create(ctx context.Context, userID uint, req *dto.CreateRiskAnalysisRequest) (*entity.RiskAnalysis, error) {
	analysis := &entity.RiskAnalysis{
		UserID:      userID,
		RiskScore:   clampScore(*req.RiskScore),
		Explanation: req.Explanation,
	}
	if err := s.riskAnalysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to create risk analysis: %w", err)
	}
	return analysis, nil
}

// ListByUser returns all risk analyses owned by the given user.
func (s *riskAnalysisService) ListByUser(ctx context.Context, userID uint) ([]entity.RiskAnalysis, error) {
	return s.riskAnalysisRepo.FindAllByUser(ctx, userID)
}

// Generate runs the risk heuristic against the generator and persists the
// assessment, keeping the raw prompt/response pair for audit. Generator
// outages propagate as ErrUpstreamUnavailable so the handler can degrade.
func (s *riskAnalysisService) Generate(ctx context.Context, userID uint, req *dto.GenerateRiskAnalysisRequest) (*entity.RiskAnalysis, error) {
	assessment, err := s.aiRepo.AnalyzeRisk(ctx, req.Portfolio)
	if err != nil {
		return nil, err
	}

	// Cut on a rune boundary; a byte-index cut could hand the database
	// invalid UTF-8.
	explanation := utils.TruncateRunes(assessment.Explanation, 500)

	meta, err := json.Marshal(map[string]string{
		"prompt":       assessment.Prompt,
		"raw_response": assessment.RawResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode generator meta: %w", err)
	}

	analysis := &entity.RiskAnalysis{
		UserID:        userID,
		RiskScore:     clampScore(float64(assessment.RiskScore)),
		Explanation:   explanation,
		GeneratorMeta: datatypes.JSON(meta),
	}
	if err := s.riskAnalysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store generated risk analysis: %w", err)
	}

	s.logger.Info("Risk analysis generated",
		logger.Field("user_id", userID),
		logger.Field("risk_score", analysis.RiskScore),
	)
	return analysis, nil
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
