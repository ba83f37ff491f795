package dto

import (
	"time"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RequestDebitRequest is a member's expense request. It lands as a pending
// debit; no balance check happens at creation time.
type RequestDebitRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason" binding:"required,max=200"`
}

// TransactionResponse is the API shape of one ledger row.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	MemberID      string          `json:"memberID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Reason        string          `json:"reason"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a ledger slice.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// BalanceResponse reports a freshly derived balance.
type BalanceResponse struct {
	MemberID string          `json:"memberID"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToTransactionResponse converts a domain ledger row to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		MemberID:      t.MemberID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Status:        string(t.Status),
		Reason:        t.Reason,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a ledger slice.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: out}
}
