package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService implements balance derivation and the transaction lifecycle.
type ledgerService struct {
	txnRepo portsrepo.TransactionRepository
}

// NewLedgerService creates the ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// MemberBalance recomputes the member's balance from their full ledger.
// Always a fresh fold over the log, never an incrementally patched counter.
func (s *ledgerService) MemberBalance(ctx context.Context, memberID string) (decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactionsByMember(ctx, memberID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list transactions for member %s: %w", memberID, err)
	}
	return domain.DeriveBalance(txns), nil
}

// Balances folds the entire ledger into a per-member balance map. Members with
// no approved rows simply have no entry; callers treat that as zero.
func (s *ledgerService) Balances(ctx context.Context) (map[string]decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}
	balances := make(map[string]decimal.Decimal)
	for _, t := range txns {
		balances[t.MemberID] = balances[t.MemberID].Add(t.SignedAmount())
	}
	return balances, nil
}

// RequestDebit appends a pending debit row for the caller. No balance check
// happens here; overdraft requests stay visible until the admin resolves them.
func (s *ledgerService) RequestDebit(ctx context.Context, callerID string, req dto.RequestDebitRequest) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		MemberID:  callerID,
		Amount:    req.Amount,
		Type:      domain.Debit,
		Status:    domain.StatusPending,
		Reason:    req.Reason,
		CreatedAt: time.Now().UTC(),
		CreatedBy: callerID,
	}
	id, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to save debit request: %w", err)
	}
	txn.TransactionID = id
	return &txn, nil
}

// ApproveTransaction resolves a pending row to approved.
func (s *ledgerService) ApproveTransaction(ctx context.Context, callerID string, transactionID int64) (*domain.Transaction, error) {
	return s.resolve(ctx, transactionID, domain.StatusApproved)
}

// RejectTransaction resolves a pending row to rejected.
func (s *ledgerService) RejectTransaction(ctx context.Context, callerID string, transactionID int64) (*domain.Transaction, error) {
	return s.resolve(ctx, transactionID, domain.StatusRejected)
}

// resolve performs the conditional pending -> terminal transition. The update
// only matches rows still pending, so a second resolution of the same row
// affects nothing and is reported as a no-op, not an error. A missing id is
// not-found.
func (s *ledgerService) resolve(ctx context.Context, transactionID int64, status domain.TransactionStatus) (*domain.Transaction, error) {
	changed, err := s.txnRepo.ResolveIfPending(ctx, transactionID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transaction %d: %w", transactionID, err)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found", transactionID))
	}
	if !changed && !txn.IsResolved() {
		// Should not happen: the row existed, was pending, yet the conditional
		// update matched nothing. Report it as a conflict.
		return nil, apperrors.NewAppError(409, fmt.Sprintf("transaction %d could not be resolved", transactionID), nil)
	}
	return txn, nil
}

func (s *ledgerService) ListMemberTransactions(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactionsByMember(ctx, memberID)
}

func (s *ledgerService) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListPendingTransactions(ctx)
}
