package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRiskAnalysisRepository struct {
	analyses []entity.RiskAnalysis
}

func (f *fakeRiskAnalysisRepository) Create(ctx context.Context, analysis *entity.RiskAnalysis) error {
	analysis.ID = uint(len(f.analyses) + 1)
	f.analyses = append(f.analyses, *analysis)
	return nil
}

func (f *fakeRiskAnalysisRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.RiskAnalysis, error) {
	var out []entity.RiskAnalysis
	for _, a := range f.analyses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeAIRepository struct {
	assessment *dto.RiskAssessment
	err        error
}

func (f *fakeAIRepository) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.assessment.RawResponse, nil
}

func (f *fakeAIRepository) AnalyzeRisk(ctx context.Context, portfolio string) (*dto.RiskAssessment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

func newTestRiskAnalysisService(t *testing.T, ai *fakeAIRepository) (RiskAnalysisService, *fakeRiskAnalysisRepository) {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	repo := &fakeRiskAnalysisRepository{}
	return NewRiskAnalysisService(repo, ai, log), repo
}

func TestRiskAnalysisCreateClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "in range", score: 42.5, want: 42.5},
		{name: "negative clamps to zero", score: -10, want: 0},
		{name: "above range clamps to hundred", score: 150, want: 100},
		{name: "lower bound", score: 0, want: 0},
		{name: "upper bound", score: 100, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestRiskAnalysisService(t, &fakeAIRepository{})

			analysis, err := svc.Create(context.Background(), 1, &dto.CreateRiskAnalysisRequest{
				RiskScore:   floatPtr(tt.score),
				Explanation: "concentration risk",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, analysis.RiskScore)
		})
	}
}

func TestRiskAnalysisGenerate(t *testing.T) {
	ai := &fakeAIRepository{assessment: &dto.RiskAssessment{
		RiskScore:   72,
		Explanation: "risk score 72, tech heavy",
		Prompt:      "Analyze risk for portfolio: AAPL x10. Provide risk score (0-100) and explanation.",
		RawResponse: "risk score 72, tech heavy",
	}}
	svc, repo := newTestRiskAnalysisService(t, ai)

	analysis, err := svc.Generate(context.Background(), 1, &dto.GenerateRiskAnalysisRequest{Portfolio: "AAPL x10"})
	require.NoError(t, err)
	assert.Equal(t, 72.0, analysis.RiskScore)
	assert.Equal(t, "risk score 72, tech heavy", analysis.Explanation)
	require.Len(t, repo.analyses, 1)

	// The raw prompt/response pair is kept for audit.
	var meta map[string]string
	require.NoError(t, json.Unmarshal(analysis.GeneratorMeta, &meta))
	assert.Contains(t, meta["prompt"], "AAPL x10")
	assert.Equal(t, "risk score 72, tech heavy", meta["raw_response"])
}

func TestRiskAnalysisGenerateTruncatesOnRuneBoundary(t *testing.T) {
	// A multi-byte rune straddling the 500-character limit must survive
	// truncation intact; a byte-index cut would store invalid UTF-8.
	long := strings.Repeat("a", 499) + "é with plenty of trailing detail"
	ai := &fakeAIRepository{assessment: &dto.RiskAssessment{
		RiskScore:   40,
		Explanation: long,
		Prompt:      "p",
		RawResponse: long,
	}}
	svc, _ := newTestRiskAnalysisService(t, ai)

	analysis, err := svc.Generate(context.Background(), 1, &dto.GenerateRiskAnalysisRequest{Portfolio: "AAPL x10"})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(analysis.Explanation))
	assert.Equal(t, 500, utf8.RuneCountInString(analysis.Explanation))
	assert.Equal(t, strings.Repeat("a", 499)+"é", analysis.Explanation)
}

func TestRiskAnalysisGenerateUpstreamDown(t *testing.T) {
	ai := &fakeAIRepository{err: fmt.Errorf("%w: connection refused", apperrors.ErrUpstreamUnavailable)}
	svc, repo := newTestRiskAnalysisService(t, ai)

	_, err := svc.Generate(context.Background(), 1, &dto.GenerateRiskAnalysisRequest{Portfolio: "AAPL x10"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamUnavailable))
	assert.Empty(t, repo.analyses)
}
