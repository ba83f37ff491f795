package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger row credits or debits the member.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// TransactionStatus is the lifecycle state of a ledger row.
// pending -> approved|rejected is the only transition; approved and rejected
// are terminal. Only approved rows contribute to a member's balance.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusRejected TransactionStatus = "rejected"
)

// Transaction is one append-only row of the stipend ledger.
// Rows are never mutated after creation except the single pending->terminal
// status transition, and never deleted.
type Transaction struct {
	TransactionID int64             `json:"transactionID"` // store-assigned, monotonic
	MemberID      string            `json:"memberID"`
	Amount        decimal.Decimal   `json:"amount"` // positive magnitude
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Reason        string            `json:"reason"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// IsResolved reports whether the row has left the pending state.
func (t Transaction) IsResolved() bool {
	return t.Status != StatusPending
}

// SignedAmount returns the row's contribution to the owner's balance:
// +Amount for an approved credit, -Amount for an approved debit, zero for
// pending and rejected rows.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Status != StatusApproved {
		return decimal.Zero
	}
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DeriveBalance folds a member's ledger rows into their current balance:
// the sum of approved credits minus the sum of approved debits. It is a pure
// function of the log; an empty slice yields zero.
func DeriveBalance(txns []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		balance = balance.Add(t.SignedAmount())
	}
	return balance
}
