package entity

import "time"

// Portfolio is a user's position in a single stock.
type Portfolio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	StockSymbol string    `gorm:"size:10;not null" json:"stock_symbol"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	AvgBuyPrice float64   `gorm:"not null" json:"avg_buy_price"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Portfolio model.
func (Portfolio) TableName() string {
	return "portfolios"
}
