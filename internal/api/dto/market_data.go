package dto

import "golang-stock-advisor/pkg/apperrors"

// CreateMarketDataRequest is the payload for POST /market-data.
type CreateMarketDataRequest struct {
	Symbol string   `json:"symbol"`
	Price  *float64 `json:"price"`
}

// Validate checks required fields.
func (r *CreateMarketDataRequest) Validate() error {
	if r.Symbol == "" {
		return apperrors.Validationf("symbol is required")
	}
	if len(r.Symbol) > 10 {
		return apperrors.Validationf("symbol must be at most 10 characters")
	}
	if r.Price == nil {
		return apperrors.Validationf("price is required")
	}
	return nil
}
