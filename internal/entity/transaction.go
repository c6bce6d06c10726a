package entity

import "time"

// TransactionAction is the direction of a trade.
type TransactionAction string

const (
	ActionBuy  TransactionAction = "BUY"
	ActionSell TransactionAction = "SELL"
)

// Valid reports whether the action is one of the two allowed values.
func (a TransactionAction) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

// Transaction is a single executed trade belonging to a user.
type Transaction struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index" json:"user_id"`
	StockSymbol string            `gorm:"size:10;not null" json:"stock_symbol"`
	Action      TransactionAction `gorm:"size:4;not null" json:"action"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	Price       float64           `gorm:"not null" json:"price"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
