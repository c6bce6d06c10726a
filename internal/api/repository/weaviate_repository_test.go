package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-stock-advisor/internal/api/config"
	"golang-stock-advisor/pkg/apperrors"
	pkgconfig "golang-stock-advisor/pkg/config"
	"golang-stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWeaviateRepository(t *testing.T, baseURL, apiKey string) WeaviateRepository {
	t.Helper()

	log, err := logger.New("error", "json")
	require.NoError(t, err)

	cfg := &config.Config{
		Weaviate: pkgconfig.Weaviate{
			BaseURL: baseURL,
			APIKey:  apiKey,
			Timeout: "5s",
		},
	}

	repo, err := NewWeaviateRepository(cfg, log)
	require.NoError(t, err)
	return repo
}

func TestAddNews(t *testing.T) {
	var captured weaviateObject
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/objects", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "secret")

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := repo.AddNews(context.Background(), "Fed holds rates", "No change expected.", ts, []float32{0.1, 0.2})
	require.NoError(t, err)

	assert.Equal(t, ClassMarketNews, captured.Class)
	assert.Equal(t, "Fed holds rates", captured.Properties["title"])
	assert.Equal(t, "No change expected.", captured.Properties["content"])
	assert.Equal(t, "2026-08-01T12:00:00Z", captured.Properties["timestamp"])
	assert.Equal(t, []float32{0.1, 0.2}, captured.Vector)
}

func TestAddNewsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	err := repo.AddNews(context.Background(), "t", "c", time.Now(), []float32{0.1})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamUnavailable))
}

func TestSearchNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/graphql", r.URL.Path)

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, ClassMarketNews)
		assert.Contains(t, req.Query, "nearVector")
		assert.Contains(t, req.Query, "limit: 5")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"Get": map[string]any{
					ClassMarketNews: []map[string]any{
						{"title": "Fed holds rates", "content": "No change.", "timestamp": "2026-08-01T12:00:00Z"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	records, err := repo.SearchNews(context.Background(), []float32{0.1, 0.2}, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Fed holds rates", records[0].Title)
	assert.Equal(t, "No change.", records[0].Content)
}

func TestSearchNewsGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "class not found"}},
		})
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	_, err := repo.SearchNews(context.Background(), []float32{0.1}, 5)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamUnavailable))
}

func TestConversationHistoryFiltersByUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, ClassUserConversation)
		assert.Contains(t, req.Query, "valueInt: 7")
		assert.Contains(t, req.Query, "limit: 10")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"Get": map[string]any{
					ClassUserConversation: []map[string]any{
						{"user_id": 7, "message": "Is AAPL a buy?", "timestamp": "2026-08-01T12:00:00Z"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	records, err := repo.ConversationHistory(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Is AAPL a buy?", records[0].Message)
}

func TestSearchRecommendationsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"Get": map[string]any{}},
		})
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	records, err := repo.SearchRecommendations(context.Background(), []float32{0.3}, 7, 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEnsureSchemaRecreatesClasses(t *testing.T) {
	var deleted, created []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(http.StatusNotFound) // class absent is fine
		case r.Method == http.MethodPost && r.URL.Path == "/v1/schema":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			created = append(created, body["class"].(string))
			assert.Equal(t, "none", body["vectorizer"])
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	repo := newTestWeaviateRepository(t, srv.URL, "")

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.Equal(t, []string{"/v1/schema/MarketNews", "/v1/schema/UserConversation", "/v1/schema/Recommendation"}, deleted)
	assert.Equal(t, []string{ClassMarketNews, ClassUserConversation, ClassRecommendation}, created)
}
