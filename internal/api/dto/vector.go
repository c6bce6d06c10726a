package dto

import "golang-stock-advisor/pkg/apperrors"

// AddNewsRequest is the payload for POST /vector/news.
type AddNewsRequest struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Vector  []float32 `json:"vector"`
}

// Validate checks required fields.
func (r *AddNewsRequest) Validate() error {
	if r.Title == "" {
		return apperrors.Validationf("title is required")
	}
	if r.Content == "" {
		return apperrors.Validationf("content is required")
	}
	if len(r.Vector) == 0 {
		return apperrors.Validationf("vector is required")
	}
	return nil
}

// AddConversationRequest is the payload for POST /vector/conversations.
type AddConversationRequest struct {
	Message string    `json:"message"`
	Vector  []float32 `json:"vector"`
}

// Validate checks required fields.
func (r *AddConversationRequest) Validate() error {
	if r.Message == "" {
		return apperrors.Validationf("message is required")
	}
	if len(r.Vector) == 0 {
		return apperrors.Validationf("vector is required")
	}
	return nil
}

// AddVectorRecommendationRequest is the payload for
// POST /vector/recommendations.
type AddVectorRecommendationRequest struct {
	Text   string    `json:"text"`
	Vector []float32 `json:"vector"`
}

// Validate checks required fields.
func (r *AddVectorRecommendationRequest) Validate() error {
	if r.Text == "" {
		return apperrors.Validationf("text is required")
	}
	if len(r.Vector) == 0 {
		return apperrors.Validationf("vector is required")
	}
	return nil
}

// NewsRecord is one MarketNews object returned by the vector service.
type NewsRecord struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ConversationRecord is one UserConversation object returned by the vector
// service.
type ConversationRecord struct {
	UserID    int64  `json:"user_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RecommendationRecord is one Recommendation object returned by the vector
// service.
type RecommendationRecord struct {
	UserID    int64  `json:"user_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// VectorWriteResponse is the body for vector insert routes. Success inserts
// answer 201; an unreachable vector service degrades to an explicit payload
// instead of a 5xx.
type VectorWriteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// VectorSearchResponse wraps search results with an availability marker.
type VectorSearchResponse[T any] struct {
	Results     []T    `json:"results"`
	Unavailable bool   `json:"unavailable,omitempty"`
	Detail      string `json:"detail,omitempty"`
}
