package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/MeiyanW/inner_court_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the ledger lifecycle.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers ledger routes. Members can request
// debits and read their own ledger; the approval queue is admin territory.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, adminOnly gin.HandlerFunc) {
	h := newTransactionHandler(ledgerService)

	txns := rg.Group("/transactions")
	{
		txns.POST("/requests", h.requestDebit)
		txns.GET("/mine", h.listOwnTransactions)
		txns.GET("/balance", h.getOwnBalance)
		txns.GET("/pending", adminOnly, h.listPending)
		txns.POST("/:id/approve", adminOnly, h.approve)
		txns.POST("/:id/reject", adminOnly, h.reject)
	}
}

// requestDebit godoc
// @Summary Request an expense debit
// @Description Appends a pending debit for the caller. No balance check happens here; the admin decides at approval time.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.RequestDebitRequest true "Amount and reason"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/requests [post]
func (h *transactionHandler) requestDebit(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.RequestDebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.RequestDebit(c.Request.Context(), callerID, req)
	if err != nil {
		respondError(c, err, "Failed to create debit request")
		return
	}

	logger.Info("Debit requested", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listOwnTransactions godoc
// @Summary List own ledger rows
// @Description Returns the caller's full ledger, newest first, including pending and rejected rows.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/mine [get]
func (h *transactionHandler) listOwnTransactions(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.ledgerService.ListMemberTransactions(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getOwnBalance godoc
// @Summary Get own balance
// @Description Derives the caller's balance from their approved ledger rows.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/balance [get]
func (h *transactionHandler) getOwnBalance(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balance, err := h.ledgerService.MemberBalance(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err, "Failed to derive balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{MemberID: callerID, Balance: balance})
}

// listPending godoc
// @Summary List pending debit requests
// @Description Returns all unresolved requests across members, oldest first.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /transactions/pending [get]
func (h *transactionHandler) listPending(c *gin.Context) {
	txns, err := h.ledgerService.ListPendingTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pending transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// approve godoc
// @Summary Approve a pending request
// @Description Moves a pending row to approved, making it count toward balance. Approving an already resolved row is a no-op.
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Already resolved the other way"
// @Security BearerAuth
// @Router /transactions/{id}/approve [post]
func (h *transactionHandler) approve(c *gin.Context) {
	h.resolve(c, h.ledgerService.ApproveTransaction)
}

// reject godoc
// @Summary Reject a pending request
// @Description Moves a pending row to rejected, permanently excluding it from balance. Rejecting an already resolved row is a no-op.
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Already resolved the other way"
// @Security BearerAuth
// @Router /transactions/{id}/reject [post]
func (h *transactionHandler) reject(c *gin.Context) {
	h.resolve(c, h.ledgerService.RejectTransaction)
}

func (h *transactionHandler) resolve(c *gin.Context, op func(ctx context.Context, callerID string, id int64) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromContext(c)

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := op(c.Request.Context(), callerID, transactionID)
	if err != nil {
		respondError(c, err, "Failed to resolve transaction")
		return
	}

	logger.Info("Transaction resolved", slog.Int64("transaction_id", txn.TransactionID), slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
