package service

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/repository"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/apperrors"
	"golang-stock-advisor/pkg/logger"

	"gorm.io/gorm"
)

// PortfolioService defines owner-scoped portfolio operations.
type PortfolioService interface {
	Create(ctx context.Context, userID uint, req *dto.CreatePortfolioRequest) (*entity.Portfolio, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Portfolio, error)
	Update(ctx context.Context, userID, id uint, req *dto.UpdatePortfolioRequest) (*entity.Portfolio, error)
	Delete(ctx context.Context, userID, id uint) error
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(portfolioRepo repository.PortfolioRepository, logger *logger.Logger) PortfolioService {
	return &portfolioService{portfolioRepo: portfolioRepo, logger: logger}
}

type portfolioService struct {
	portfolioRepo repository.PortfolioRepository
	logger        *logger.Logger
}

// Create inserts a portfolio owned by the given user.
func (s *portfolioService) Create(ctx context.Context, userID uint, req *dto.CreatePortfolioRequest) (*entity.Portfolio, error) {
	portfolio := &entity.Portfolio{
		UserID:      userID,
		StockSymbol: req.StockSymbol,
		Quantity:    *req.Quantity,
		AvgBuyPrice: *req.AvgBuyPrice,
	}
	if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return portfolio, nil
}

// ListByUser returns all portfolios owned by the given user.
func (s *portfolioService) ListByUser(ctx context.Context, userID uint) ([]entity.Portfolio, error) {
	return s.portfolioRepo.FindAllByUser(ctx, userID)
}

// Update applies a partial update after verifying the record exists and is
// owned by the requesting user.
func (s *portfolioService) Update(ctx context.Context, userID, id uint, req *dto.UpdatePortfolioRequest) (*entity.Portfolio, error) {
	portfolio, err := s.loadOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		portfolio.Quantity = *req.Quantity
	}
	if req.AvgBuyPrice != nil {
		portfolio.AvgBuyPrice = *req.AvgBuyPrice
	}

	if err := s.portfolioRepo.Update(ctx, portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	return portfolio, nil
}

// Delete removes a portfolio after the ownership check.
func (s *portfolioService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.loadOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.portfolioRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	s.logger.Info("Portfolio deleted", logger.Field("portfolio_id", id), logger.Field("user_id", userID))
	return nil
}

// loadOwned fetches the record and enforces owner scoping: a missing id is
// NotFound, a foreign owner is Forbidden. Mutation never proceeds past a
// mismatch.
func (s *portfolioService) loadOwned(ctx context.Context, userID, id uint) (*entity.Portfolio, error) {
	portfolio, err := s.portfolioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: portfolio %d", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	if portfolio.UserID != userID {
		return nil, fmt.Errorf("%w: portfolio %d belongs to another user", apperrors.ErrForbidden, id)
	}
	return portfolio, nil
}
