package services

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade exposes the transaction lifecycle and balance derivation.
type LedgerSvcFacade interface {
	BalanceReaderSvc

	// RequestDebit appends a pending debit for the caller. Overdraft is allowed
	// at request time; the admin may still reject it.
	RequestDebit(ctx context.Context, callerID string, req dto.RequestDebitRequest) (*domain.Transaction, error)

	// ApproveTransaction moves a pending row to approved. Resolving an already
	// resolved row is a no-op, not an error; a missing id is not-found.
	ApproveTransaction(ctx context.Context, callerID string, transactionID int64) (*domain.Transaction, error)

	// RejectTransaction moves a pending row to rejected, permanently excluding
	// it from balance. Same idempotency as ApproveTransaction.
	RejectTransaction(ctx context.Context, callerID string, transactionID int64) (*domain.Transaction, error)

	ListMemberTransactions(ctx context.Context, memberID string) ([]domain.Transaction, error)
	ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// BalanceReaderSvc derives balances from the ledger. Split out so other
// services can depend on balance reads without the full lifecycle surface.
type BalanceReaderSvc interface {
	// MemberBalance recomputes one member's balance from their ledger rows.
	MemberBalance(ctx context.Context, memberID string) (decimal.Decimal, error)

	// Balances folds the entire ledger into a balance per member id.
	Balances(ctx context.Context) (map[string]decimal.Decimal, error)
}
