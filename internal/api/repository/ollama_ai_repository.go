package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-advisor/internal/api/config"
	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"
	"golang-stock-advisor/pkg/utils"

	"golang.org/x/time/rate"
)

const (
	riskScoreDefault       = 50
	riskExplanationDefault = "Basic risk analysis"
	generateTemperature    = 0.7
)

// AIRepository defines the interface to the external text-generation
// endpoint.
type AIRepository interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	AnalyzeRisk(ctx context.Context, portfolio string) (*dto.RiskAssessment, error)
}

// NewOllamaAIRepository creates a text-generation repository speaking the
// Ollama generate API.
func NewOllamaAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	timeout := 60 * time.Second
	if cfg.Ollama.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Ollama.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama timeout: %w", err)
		}
		timeout = parsed
	}

	perMinute := cfg.Ollama.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	requestLimiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)

	return &ollamaAIRepository{
		client:         &http.Client{Timeout: timeout},
		baseURL:        cfg.Ollama.BaseURL,
		model:          cfg.Ollama.Model,
		logger:         log,
		requestLimiter: requestLimiter,
	}, nil
}

type ollamaAIRepository struct {
	client         *http.Client
	baseURL        string
	model          string
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	NumPredict  int     `json:"num_predict"`
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// Generate calls the text-generation endpoint and returns the trimmed
// generated text. Failures come back as apperrors.ErrUpstreamUnavailable.
func (r *ollamaAIRepository) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := ollamaGenerateRequest{
		Model:  r.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			NumPredict:  maxTokens,
			Temperature: generateTemperature,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/generate", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("Text generation request failed", logger.ErrorField(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Warn("Non-OK response from generation endpoint", logger.IntField("status_code", resp.StatusCode))
		return "", fmt.Errorf("%w: non-OK response from generation endpoint: %d - %s",
			apperrors.ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var generated ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return "", fmt.Errorf("%w: failed to decode generation response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return strings.TrimSpace(generated.Response), nil
}

// AnalyzeRisk asks the generator for a scored assessment of the given
// portfolio description and extracts the score heuristically: the last
// integer token following a "score" token wins, clamped into [0,100]. When
// nothing parses the score defaults to 50 with a generic explanation.
func (r *ollamaAIRepository) AnalyzeRisk(ctx context.Context, portfolio string) (*dto.RiskAssessment, error) {
	prompt := fmt.Sprintf("Analyze risk for portfolio: %s. Provide risk score (0-100) and explanation.", portfolio)

	response, err := r.Generate(ctx, prompt, 150)
	if err != nil {
		return nil, err
	}

	assessment := &dto.RiskAssessment{
		RiskScore:   riskScoreDefault,
		Explanation: riskExplanationDefault,
		Prompt:      prompt,
		RawResponse: response,
	}

	if strings.Contains(strings.ToLower(response), "risk score") {
		if score, ok := utils.ScoreToken(response); ok {
			assessment.RiskScore = utils.Clamp(score, 0, 100)
		}
		assessment.Explanation = response
	}

	return assessment, nil
}
