package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-advisor/internal/api/config"
	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"
)

const (
	ClassMarketNews       = "MarketNews"
	ClassUserConversation = "UserConversation"
	ClassRecommendation   = "Recommendation"
)

// WeaviateRepository defines the gateway to the external vector service.
// Implementations must convert every transport or upstream failure into
// apperrors.ErrUpstreamUnavailable so an outage degrades instead of failing
// the request.
type WeaviateRepository interface {
	AddNews(ctx context.Context, title, content string, timestamp time.Time, vector []float32) error
	SearchNews(ctx context.Context, vector []float32, limit int) ([]dto.NewsRecord, error)
	AddConversation(ctx context.Context, userID uint, message string, timestamp time.Time, vector []float32) error
	ConversationHistory(ctx context.Context, userID uint, limit int) ([]dto.ConversationRecord, error)
	AddRecommendation(ctx context.Context, userID uint, text string, timestamp time.Time, vector []float32) error
	SearchRecommendations(ctx context.Context, vector []float32, userID uint, limit int) ([]dto.RecommendationRecord, error)
	EnsureSchema(ctx context.Context) error
}

// NewWeaviateRepository creates a vector gateway speaking the Weaviate
// REST/GraphQL API.
func NewWeaviateRepository(cfg *config.Config, log *logger.Logger) (WeaviateRepository, error) {
	timeout := 15 * time.Second
	if cfg.Weaviate.Timeout != "" {
		parsed, err := time.ParseDuration(cfg.Weaviate.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid weaviate timeout: %w", err)
		}
		timeout = parsed
	}

	return &weaviateRepository{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.Weaviate.BaseURL,
		apiKey:  cfg.Weaviate.APIKey,
		logger:  log,
	}, nil
}

type weaviateRepository struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *logger.Logger
}

type weaviateObject struct {
	Class      string                 `json:"class"`
	Properties map[string]interface{} `json:"properties"`
	Vector     []float32              `json:"vector"`
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLResponse struct {
	Data struct {
		Get map[string]json.RawMessage `json:"Get"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// AddNews inserts one MarketNews object with its embedding.
func (r *weaviateRepository) AddNews(ctx context.Context, title, content string, timestamp time.Time, vector []float32) error {
	return r.insertObject(ctx, weaviateObject{
		Class: ClassMarketNews,
		Properties: map[string]interface{}{
			"title":     title,
			"content":   content,
			"timestamp": timestamp.Format(time.RFC3339),
		},
		Vector: vector,
	})
}

// SearchNews returns the nearest MarketNews objects to the given vector.
func (r *weaviateRepository) SearchNews(ctx context.Context, vector []float32, limit int) ([]dto.NewsRecord, error) {
	query := fmt.Sprintf(
		`{ Get { %s(nearVector: {vector: %s}, limit: %d) { title content timestamp } } }`,
		ClassMarketNews, vectorLiteral(vector), limit,
	)

	var records []dto.NewsRecord
	if err := r.queryGraphQL(ctx, query, ClassMarketNews, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddConversation inserts one UserConversation object with its embedding.
func (r *weaviateRepository) AddConversation(ctx context.Context, userID uint, message string, timestamp time.Time, vector []float32) error {
	return r.insertObject(ctx, weaviateObject{
		Class: ClassUserConversation,
		Properties: map[string]interface{}{
			"user_id":   int64(userID),
			"message":   message,
			"timestamp": timestamp.Format(time.RFC3339),
		},
		Vector: vector,
	})
}

// ConversationHistory returns the stored conversation objects for a user.
func (r *weaviateRepository) ConversationHistory(ctx context.Context, userID uint, limit int) ([]dto.ConversationRecord, error) {
	query := fmt.Sprintf(
		`{ Get { %s(where: {path: ["user_id"], operator: Equal, valueInt: %d}, limit: %d) { user_id message timestamp } } }`,
		ClassUserConversation, userID, limit,
	)

	var records []dto.ConversationRecord
	if err := r.queryGraphQL(ctx, query, ClassUserConversation, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddRecommendation inserts one Recommendation object with its embedding.
func (r *weaviateRepository) AddRecommendation(ctx context.Context, userID uint, text string, timestamp time.Time, vector []float32) error {
	return r.insertObject(ctx, weaviateObject{
		Class: ClassRecommendation,
		Properties: map[string]interface{}{
			"user_id":   int64(userID),
			"text":      text,
			"timestamp": timestamp.Format(time.RFC3339),
		},
		Vector: vector,
	})
}

// SearchRecommendations returns the nearest Recommendation objects to the
// given vector, filtered to the owning user.
func (r *weaviateRepository) SearchRecommendations(ctx context.Context, vector []float32, userID uint, limit int) ([]dto.RecommendationRecord, error) {
	query := fmt.Sprintf(
		`{ Get { %s(nearVector: {vector: %s}, where: {path: ["user_id"], operator: Equal, valueInt: %d}, limit: %d) { user_id text timestamp } } }`,
		ClassRecommendation, vectorLiteral(vector), userID, limit,
	)

	var records []dto.RecommendationRecord
	if err := r.queryGraphQL(ctx, query, ClassRecommendation, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureSchema drops and recreates the three collections. One-time
// administrative operation, never called on the request path.
func (r *weaviateRepository) EnsureSchema(ctx context.Context) error {
	classes := []struct {
		name        string
		description string
		properties  []map[string]interface{}
	}{
		{
			name:        ClassMarketNews,
			description: "Market news articles with embeddings",
			properties: []map[string]interface{}{
				{"name": "title", "dataType": []string{"text"}},
				{"name": "content", "dataType": []string{"text"}},
				{"name": "timestamp", "dataType": []string{"date"}},
			},
		},
		{
			name:        ClassUserConversation,
			description: "User conversation history with embeddings",
			properties: []map[string]interface{}{
				{"name": "user_id", "dataType": []string{"int"}},
				{"name": "message", "dataType": []string{"text"}},
				{"name": "timestamp", "dataType": []string{"date"}},
			},
		},
		{
			name:        ClassRecommendation,
			description: "AI-generated recommendations with embeddings",
			properties: []map[string]interface{}{
				{"name": "user_id", "dataType": []string{"int"}},
				{"name": "text", "dataType": []string{"text"}},
				{"name": "timestamp", "dataType": []string{"date"}},
			},
		},
	}

	for _, class := range classes {
		if err := r.dropClass(ctx, class.name); err != nil {
			return err
		}

		body := map[string]interface{}{
			"class":       class.name,
			"description": class.description,
			"properties":  class.properties,
			"vectorizer":  "none",
		}
		if err := r.doJSON(ctx, http.MethodPost, "/v1/schema", body, nil); err != nil {
			return fmt.Errorf("failed to create class %s: %w", class.name, err)
		}
		r.logger.Info("Vector class created", logger.StringField("class", class.name))
	}
	return nil
}

func (r *weaviateRepository) dropClass(ctx context.Context, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.baseURL+"/v1/schema/"+name, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to drop class %s: %v", apperrors.ErrUpstreamUnavailable, name, err)
	}
	defer resp.Body.Close()

	// 404 means the class never existed, which is fine for a drop.
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status dropping class %s: %d - %s", name, resp.StatusCode, string(body))
	}
	return nil
}

func (r *weaviateRepository) insertObject(ctx context.Context, obj weaviateObject) error {
	if err := r.doJSON(ctx, http.MethodPost, "/v1/objects", obj, nil); err != nil {
		r.logger.Warn("Vector insert failed", logger.StringField("class", obj.Class), logger.ErrorField(err))
		return err
	}
	return nil
}

func (r *weaviateRepository) queryGraphQL(ctx context.Context, query, class string, out interface{}) error {
	var gqlResp graphQLResponse
	if err := r.doJSON(ctx, http.MethodPost, "/v1/graphql", graphQLRequest{Query: query}, &gqlResp); err != nil {
		r.logger.Warn("Vector search failed", logger.StringField("class", class), logger.ErrorField(err))
		return err
	}

	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("%w: graphql error on %s: %s", apperrors.ErrUpstreamUnavailable, class, gqlResp.Errors[0].Message)
	}

	raw, ok := gqlResp.Data.Get[class]
	if !ok || raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: malformed search response for %s: %v", apperrors.ErrUpstreamUnavailable, class, err)
	}
	return nil
}

func (r *weaviateRepository) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: non-OK response from vector service: %d - %s",
			apperrors.ErrUpstreamUnavailable, resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode vector service response: %v", apperrors.ErrUpstreamUnavailable, err)
		}
	}
	return nil
}

func (r *weaviateRepository) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
}

func vectorLiteral(vector []float32) string {
	encoded, _ := json.Marshal(vector)
	return string(encoded)
}
