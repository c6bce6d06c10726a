package service

import (
	"context"
	"fmt"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/logger"
)

// TransactionService defines owner-scoped transaction operations.
type TransactionService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateTransactionRequest) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Transaction, error)
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo repository.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{transactionRepo: transactionRepo, logger: logger}
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *logger.Logger
}

// Create records a trade owned by the given user.
func (s *transactionService) Create(ctx context.Context, userID uint, req *dto.CreateTransactionRequest) (*entity.Transaction, error) {
	transaction := &entity.Transaction{
		UserID:      userID,
		StockSymbol: req.StockSymbol,
		Action:      entity.TransactionAction(req.Action),
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

// ListByUser returns all transactions owned by the given user.
func (s *transactionService) ListByUser(ctx context.Context, userID uint) ([]entity.Transaction, error) {
	return s.transactionRepo.FindAllByUser(ctx, userID)
}
