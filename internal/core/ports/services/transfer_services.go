package services

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TransferSvcFacade exposes atomic multi-row ledger operations.
type TransferSvcFacade interface {
	BalanceOverriderSvc

	// TransferToPeer moves taels from the caller to another member. Both ledger
	// rows commit atomically or the operation fails with no rows written.
	TransferToPeer(ctx context.Context, senderID string, req dto.PeerTransferRequest) (*dto.TransferResult, error)

	// DistributeStipends pays every ordinary member their scheduled stipend in
	// one atomic batch.
	DistributeStipends(ctx context.Context, adminID string, req dto.DistributeStipendsRequest) (*dto.StipendRunResult, error)

	// GrantCredit appends a single approved credit with an admin remark.
	GrantCredit(ctx context.Context, adminID string, req dto.GrantCreditRequest) error
}

// BalanceOverriderSvc reconciles a member's balance to a target value by
// inserting a compensating ledger entry. Split out for the member service,
// which applies administrative profile overrides.
type BalanceOverriderSvc interface {
	OverrideBalance(ctx context.Context, adminID, memberID string, desired decimal.Decimal) error
}
