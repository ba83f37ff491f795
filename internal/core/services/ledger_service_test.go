package services_test

import (
	"context"
	"testing"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/core/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo)
}

// --- MemberBalance Tests ---

func (suite *LedgerServiceTestSuite) TestMemberBalance_FoldsOnlyApprovedRows() {
	ctx := context.Background()
	memberID := uuid.NewString()

	txns := []domain.Transaction{
		{MemberID: memberID, Amount: decimal.NewFromInt(100), Type: domain.Credit, Status: domain.StatusApproved},
		{MemberID: memberID, Amount: decimal.NewFromInt(30), Type: domain.Debit, Status: domain.StatusApproved},
		{MemberID: memberID, Amount: decimal.NewFromInt(999), Type: domain.Debit, Status: domain.StatusPending},
		{MemberID: memberID, Amount: decimal.NewFromInt(500), Type: domain.Credit, Status: domain.StatusRejected},
	}
	suite.mockTxnRepo.On("ListTransactionsByMember", ctx, memberID).Return(txns, nil).Once()

	balance, err := suite.service.MemberBalance(ctx, memberID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(70)), "got %s", balance)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestMemberBalance_EmptyLedgerIsZero() {
	ctx := context.Background()
	memberID := uuid.NewString()

	suite.mockTxnRepo.On("ListTransactionsByMember", ctx, memberID).Return([]domain.Transaction{}, nil).Once()

	balance, err := suite.service.MemberBalance(ctx, memberID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestBalances_GroupsByMember() {
	ctx := context.Background()
	alice := uuid.NewString()
	bob := uuid.NewString()

	txns := []domain.Transaction{
		{MemberID: alice, Amount: decimal.NewFromInt(50), Type: domain.Credit, Status: domain.StatusApproved},
		{MemberID: bob, Amount: decimal.NewFromInt(20), Type: domain.Credit, Status: domain.StatusApproved},
		{MemberID: alice, Amount: decimal.NewFromInt(10), Type: domain.Debit, Status: domain.StatusApproved},
		{MemberID: bob, Amount: decimal.NewFromInt(5), Type: domain.Debit, Status: domain.StatusPending},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()

	balances, err := suite.service.Balances(ctx)

	suite.Require().NoError(err)
	suite.True(balances[alice].Equal(decimal.NewFromInt(40)))
	suite.True(balances[bob].Equal(decimal.NewFromInt(20)))
}

// --- RequestDebit Tests ---

func (suite *LedgerServiceTestSuite) TestRequestDebit_Success() {
	ctx := context.Background()
	callerID := uuid.NewString()
	req := dto.RequestDebitRequest{Amount: decimal.NewFromInt(25), Reason: "置办冬衣"}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.MemberID == callerID &&
			txn.Type == domain.Debit &&
			txn.Status == domain.StatusPending &&
			txn.Amount.Equal(req.Amount) &&
			txn.Reason == req.Reason
	})).Return(int64(7), nil).Once()

	txn, err := suite.service.RequestDebit(ctx, callerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(7), txn.TransactionID)
	suite.Equal(domain.StatusPending, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRequestDebit_RejectsNonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		txn, err := suite.service.RequestDebit(ctx, uuid.NewString(), dto.RequestDebitRequest{Amount: amount, Reason: "x"})
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(txn)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRequestDebit_AllowsOverdraftRequest() {
	// No balance check at request time: a pending debit larger than any
	// conceivable balance still lands; the admin decides later.
	ctx := context.Background()
	callerID := uuid.NewString()
	req := dto.RequestDebitRequest{Amount: decimal.NewFromInt(1_000_000), Reason: "重修宫殿"}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(int64(1), nil).Once()

	txn, err := suite.service.RequestDebit(ctx, callerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, txn.Status)
}

// --- Approve / Reject Tests ---

func (suite *LedgerServiceTestSuite) TestApproveTransaction_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	txnID := int64(42)
	resolved := &domain.Transaction{TransactionID: txnID, Status: domain.StatusApproved}

	suite.mockTxnRepo.On("ResolveIfPending", ctx, txnID, domain.StatusApproved).Return(true, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(resolved, nil).Once()

	txn, err := suite.service.ApproveTransaction(ctx, adminID, txnID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestApproveTransaction_NotFound() {
	ctx := context.Background()
	txnID := int64(404)

	suite.mockTxnRepo.On("ResolveIfPending", ctx, txnID, domain.StatusApproved).Return(false, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(nil, nil).Once()

	txn, err := suite.service.ApproveTransaction(ctx, uuid.NewString(), txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *LedgerServiceTestSuite) TestApproveTransaction_AlreadyResolvedIsNoOp() {
	// A second approval of the same row matches no rows in the conditional
	// update; the service reports the existing row instead of failing.
	ctx := context.Background()
	txnID := int64(42)
	already := &domain.Transaction{TransactionID: txnID, Status: domain.StatusApproved}

	suite.mockTxnRepo.On("ResolveIfPending", ctx, txnID, domain.StatusApproved).Return(false, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(already, nil).Once()

	txn, err := suite.service.ApproveTransaction(ctx, uuid.NewString(), txnID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, txn.Status)
}

func (suite *LedgerServiceTestSuite) TestRejectTransaction_Success() {
	ctx := context.Background()
	txnID := int64(43)
	resolved := &domain.Transaction{TransactionID: txnID, Status: domain.StatusRejected}

	suite.mockTxnRepo.On("ResolveIfPending", ctx, txnID, domain.StatusRejected).Return(true, nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(resolved, nil).Once()

	txn, err := suite.service.RejectTransaction(ctx, uuid.NewString(), txnID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, txn.Status)
}

func (suite *LedgerServiceTestSuite) TestRejectTransaction_ResolveError() {
	ctx := context.Background()
	txnID := int64(44)
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("ResolveIfPending", ctx, txnID, domain.StatusRejected).Return(false, expectedErr).Once()

	txn, err := suite.service.RejectTransaction(ctx, uuid.NewString(), txnID)

	suite.Require().Error(err)
	suite.Contains(err.Error(), expectedErr.Error())
	suite.Nil(txn)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
