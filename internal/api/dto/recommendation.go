package dto

import "golang-stock-advisor/pkg/apperrors"

// CreateRecommendationRequest is the payload for POST /recommendations.
type CreateRecommendationRequest struct {
	Text string `json:"text"`
}

// Validate checks required fields.
func (r *CreateRecommendationRequest) Validate() error {
	if r.Text == "" {
		return apperrors.Validationf("text is required")
	}
	if len(r.Text) > 500 {
		return apperrors.Validationf("text must be at most 500 characters")
	}
	return nil
}

// GenerateRecommendationRequest is the payload for
// POST /recommendations/generate.
type GenerateRecommendationRequest struct {
	Prompt string `json:"prompt"`
}

// Validate checks required fields.
func (r *GenerateRecommendationRequest) Validate() error {
	if r.Prompt == "" {
		return apperrors.Validationf("prompt is required")
	}
	return nil
}
