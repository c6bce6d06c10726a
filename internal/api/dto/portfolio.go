package dto

import "golang-stock-advisor/pkg/apperrors"

// CreatePortfolioRequest is the payload for POST /portfolios.
type CreatePortfolioRequest struct {
	StockSymbol string   `json:"stock_symbol"`
	Quantity    *int     `json:"quantity"`
	AvgBuyPrice *float64 `json:"avg_buy_price"`
}

// Validate checks required fields and the non-negative quantity invariant.
func (r *CreatePortfolioRequest) Validate() error {
	if r.StockSymbol == "" {
		return apperrors.Validationf("stock_symbol is required")
	}
	if len(r.StockSymbol) > 10 {
		return apperrors.Validationf("stock_symbol must be at most 10 characters")
	}
	if r.Quantity == nil {
		return apperrors.Validationf("quantity is required")
	}
	if *r.Quantity < 0 {
		return apperrors.Validationf("quantity must not be negative")
	}
	if r.AvgBuyPrice == nil {
		return apperrors.Validationf("avg_buy_price is required")
	}
	return nil
}

// UpdatePortfolioRequest is the payload for PUT /portfolios/:id. Absent
// fields leave the stored value untouched.
type UpdatePortfolioRequest struct {
	Quantity    *int     `json:"quantity"`
	AvgBuyPrice *float64 `json:"avg_buy_price"`
}

// Validate rejects an empty update and negative quantities.
func (r *UpdatePortfolioRequest) Validate() error {
	if r.Quantity == nil && r.AvgBuyPrice == nil {
		return apperrors.Validationf("at least one of quantity or avg_buy_price is required")
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return apperrors.Validationf("quantity must not be negative")
	}
	return nil
}
