package dto

import "golang-stock-advisor/pkg/apperrors"

// CreateRiskAnalysisRequest is the payload for POST /risk-analyses.
type CreateRiskAnalysisRequest struct {
	RiskScore   *float64 `json:"risk_score"`
	Explanation string   `json:"explanation"`
}

// Validate checks required fields. The score is clamped by the service, so
// any numeric value is accepted here.
func (r *CreateRiskAnalysisRequest) Validate() error {
	if r.RiskScore == nil {
		return apperrors.Validationf("risk_score is required")
	}
	if r.Explanation == "" {
		return apperrors.Validationf("explanation is required")
	}
	if len(r.Explanation) > 500 {
		return apperrors.Validationf("explanation must be at most 500 characters")
	}
	return nil
}

// GenerateRiskAnalysisRequest is the payload for
// POST /risk-analyses/generate.
type GenerateRiskAnalysisRequest struct {
	Portfolio string `json:"portfolio"`
}

// Validate checks required fields.
func (r *GenerateRiskAnalysisRequest) Validate() error {
	if r.Portfolio == "" {
		return apperrors.Validationf("portfolio is required")
	}
	return nil
}

// RiskAssessment is the parsed result of a risk generation call.
type RiskAssessment struct {
	RiskScore   int    `json:"risk_score"`
	Explanation string `json:"explanation"`
	Prompt      string `json:"prompt"`
	RawResponse string `json:"raw_response"`
}
