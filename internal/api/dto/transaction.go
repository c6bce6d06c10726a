package dto

import (
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
)

// CreateTransactionRequest is the payload for POST /transactions.
type CreateTransactionRequest struct {
	StockSymbol string   `json:"stock_symbol"`
	Action      string   `json:"action"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Validate checks required fields and the BUY/SELL enum.
func (r *CreateTransactionRequest) Validate() error {
	if r.StockSymbol == "" {
		return apperrors.Validationf("stock_symbol is required")
	}
	if len(r.StockSymbol) > 10 {
		return apperrors.Validationf("stock_symbol must be at most 10 characters")
	}
	if !entity.TransactionAction(r.Action).Valid() {
		return apperrors.Validationf("action must be BUY or SELL")
	}
	if r.Quantity == nil {
		return apperrors.Validationf("quantity is required")
	}
	if *r.Quantity <= 0 {
		return apperrors.Validationf("quantity must be positive")
	}
	if r.Price == nil {
		return apperrors.Validationf("price is required")
	}
	return nil
}
