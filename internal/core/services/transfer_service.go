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

// transferService builds and submits atomic multi-row ledger entries: peer
// transfers, the monthly stipend batch, single grants and balance overrides.
type transferService struct {
	txnRepo    portsrepo.TransactionRepository
	memberRepo portsrepo.MemberRepository
	balances   portssvc.BalanceReaderSvc
	schedule   domain.StipendSchedule
}

// NewTransferService creates the transfer coordinator.
func NewTransferService(
	txnRepo portsrepo.TransactionRepository,
	memberRepo portsrepo.MemberRepository,
	balances portssvc.BalanceReaderSvc,
	schedule domain.StipendSchedule,
) portssvc.TransferSvcFacade {
	return &transferService{
		txnRepo:    txnRepo,
		memberRepo: memberRepo,
		balances:   balances,
		schedule:   schedule,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// TransferToPeer moves taels from the caller to the named recipient.
// The sender's balance is rederived immediately before submission; when it
// covers the amount, exactly two approved rows (sender debit, recipient
// credit) are written in one atomic batch. On any failure no rows land.
func (s *transferService) TransferToPeer(ctx context.Context, senderID string, req dto.PeerTransferRequest) (*dto.TransferResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	sender, err := s.memberRepo.FindMemberByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, apperrors.NewNotFoundError("sender not found")
	}

	recipient, err := s.memberRepo.FindMemberByName(ctx, req.RecipientName)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no member named %q", req.RecipientName))
	}
	if recipient.MemberID == sender.MemberID {
		return nil, apperrors.ErrSelfTarget
	}

	// Freshest possible balance check; still racy against a concurrent spend,
	// which the admin-visible ledger tolerates the same way debit requests do.
	balance, err := s.balances.MemberBalance(ctx, sender.MemberID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, balance, req.Amount)
	}

	now := time.Now().UTC()
	reason := req.Reason
	if reason == "" {
		reason = "私相赠予"
	}
	rows := []domain.Transaction{
		{
			MemberID:  sender.MemberID,
			Amount:    req.Amount,
			Type:      domain.Debit,
			Status:    domain.StatusApproved,
			Reason:    fmt.Sprintf("赠予 %s：%s", recipient.Name, reason),
			CreatedAt: now,
			CreatedBy: sender.MemberID,
		},
		{
			MemberID:  recipient.MemberID,
			Amount:    req.Amount,
			Type:      domain.Credit,
			Status:    domain.StatusApproved,
			Reason:    fmt.Sprintf("受赠自 %s：%s", sender.Name, reason),
			CreatedAt: now,
			CreatedBy: sender.MemberID,
		},
	}
	if err := s.txnRepo.SaveTransactionsBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to commit transfer: %w", err)
	}

	return &dto.TransferResult{
		SenderBalance: balance.Sub(req.Amount),
		RecipientName: recipient.Name,
		Amount:        req.Amount,
		Message:       fmt.Sprintf("已赠予 %s %s 两", recipient.Name, req.Amount),
	}, nil
}

// DistributeStipends pays every ordinary member base-by-rank plus
// bonus-by-family-rank in one atomic batch. Partial payment is impossible:
// either every credit row commits or the whole run fails and may be retried.
func (s *transferService) DistributeStipends(ctx context.Context, adminID string, req dto.DistributeStipendsRequest) (*dto.StipendRunResult, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members for stipend run: %w", err)
	}

	now := time.Now().UTC()
	total := decimal.Zero
	rows := make([]domain.Transaction, 0, len(members))
	for _, m := range members {
		if m.Role != domain.RoleMember {
			continue
		}
		base, bonus, stipend := s.schedule.StipendFor(m)
		reason := fmt.Sprintf("月俸发放 (%s + %s + 家世加成 %s)", m.Rank, base, bonus)
		if req.Remark != "" {
			reason = reason + "：" + req.Remark
		}
		rows = append(rows, domain.Transaction{
			MemberID:  m.MemberID,
			Amount:    stipend,
			Type:      domain.Credit,
			Status:    domain.StatusApproved,
			Reason:    reason,
			CreatedAt: now,
			CreatedBy: adminID,
		})
		total = total.Add(stipend)
	}
	if len(rows) == 0 {
		return &dto.StipendRunResult{Message: "无可发放对象"}, nil
	}

	if err := s.txnRepo.SaveTransactionsBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to commit stipend batch: %w", err)
	}

	return &dto.StipendRunResult{
		MembersPaid: len(rows),
		TotalPaid:   total,
		Message:     fmt.Sprintf("已向 %d 人发放月俸共 %s 两", len(rows), total),
	}, nil
}

// GrantCredit appends one approved credit with an admin remark.
func (s *transferService) GrantCredit(ctx context.Context, adminID string, req dto.GrantCreditRequest) error {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: grant amount must be positive", apperrors.ErrValidation)
	}
	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return err
	}
	if member == nil {
		return apperrors.NewNotFoundError("member not found")
	}

	remark := req.Remark
	if remark == "" {
		remark = "内务府赏赐"
	}
	_, err = s.txnRepo.SaveTransaction(ctx, domain.Transaction{
		MemberID:  member.MemberID,
		Amount:    req.Amount,
		Type:      domain.Credit,
		Status:    domain.StatusApproved,
		Reason:    remark,
		CreatedAt: time.Now().UTC(),
		CreatedBy: adminID,
	})
	if err != nil {
		return fmt.Errorf("failed to save grant: %w", err)
	}
	return nil
}

// OverrideBalance reconciles a member's balance to the desired value by
// inserting one compensating approved entry for the delta. The balance stays
// a pure fold over the log even for manual correction; nothing is written
// when the ledger already agrees.
func (s *transferService) OverrideBalance(ctx context.Context, adminID, memberID string, desired decimal.Decimal) error {
	current, err := s.balances.MemberBalance(ctx, memberID)
	if err != nil {
		return err
	}
	delta := desired.Sub(current)
	if delta.IsZero() {
		return nil
	}

	txn := domain.Transaction{
		MemberID:  memberID,
		Amount:    delta.Abs(),
		Type:      domain.Credit,
		Status:    domain.StatusApproved,
		Reason:    "内务府调账",
		CreatedAt: time.Now().UTC(),
		CreatedBy: adminID,
	}
	if delta.IsNegative() {
		txn.Type = domain.Debit
	}
	if _, err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to save balance adjustment: %w", err)
	}
	return nil
}
