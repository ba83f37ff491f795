package repositories

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the stipend ledger.
// The ledger is append-only: rows are inserted and their status resolved, never
// updated otherwise and never deleted.
type TransactionRepository interface {
	// SaveTransaction durably appends one row and returns its store-assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// SaveTransactionsBatch appends all rows in a single database transaction.
	// Either every row commits or none do; a partial write must be impossible.
	SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) error

	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByMember returns the member's full ledger, newest first.
	ListTransactionsByMember(ctx context.Context, memberID string) ([]domain.Transaction, error)

	// ListTransactions returns the full ledger, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ResolveIfPending conditionally transitions a row to the given terminal
	// status, only if it is still pending. It reports whether a row was
	// affected; false with a nil error means the predicate did not hold.
	ResolveIfPending(ctx context.Context, transactionID int64, status domain.TransactionStatus) (bool, error)
}
