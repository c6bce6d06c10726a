package http

import (
	"net/http"

	"golang-stock-advisor/internal/api/dto"
	"golang-stock-advisor/internal/api/service"
	"golang-stock-advisor/internal/entity"
	"golang-stock-advisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles HTTP requests for transactions.
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *logger.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService service.TransactionService, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, logger: logger}
}

// RegisterRoutes registers the transaction routes to the authenticated
// group.
func (h *TransactionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/transactions", h.ListTransactions)
	g.POST("/transactions", h.CreateTransaction)
}

// ListTransactions returns the current user's transactions.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionService.ListByUser(c.Request().Context(), currentUserID(c))
	if err != nil {
		h.logger.Error("Failed to list transactions", logger.ErrorField(err))
		return respondError(c, err)
	}
	if transactions == nil {
		transactions = []entity.Transaction{}
	}
	return c.JSON(http.StatusOK, transactions)
}

// CreateTransaction records a trade for the current user.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	transaction, err := h.transactionService.Create(c.Request().Context(), currentUserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, transaction)
}
