package entity

import "time"

// MarketData is one observed price for a symbol. The latest row per symbol
// is resolved by created_at ordering.
type MarketData struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Symbol    string    `gorm:"size:10;not null;index:idx_market_data_symbol_created_at,priority:1" json:"symbol"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_market_data_symbol_created_at,priority:2,sort:desc" json:"created_at"`
}

// TableName specifies the table name for the MarketData model.
func (MarketData) TableName() string {
	return "market_data"
}
