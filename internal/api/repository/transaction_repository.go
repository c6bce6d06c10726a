package repository

import (
	"context"

	"golang-stock-advisor/internal/entity"

	"gorm.io/gorm"
)

// TransactionRepository defines the interface for transaction data
// operations.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	FindAllByUser(ctx context.Context, userID uint) ([]entity.Transaction, error)
}

// NewTransactionRepository creates a new GORM-based transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

type transactionRepository struct {
	db *gorm.DB
}

// Create inserts a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// FindAllByUser retrieves all transactions owned by the given user.
func (r *transactionRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
