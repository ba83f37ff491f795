package services_test

import (
	"context"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
	SaveTransactionFn          func(ctx context.Context, txn domain.Transaction) (int64, error)
	SaveTransactionsBatchFn    func(ctx context.Context, txns []domain.Transaction) error
	FindTransactionByIDFn      func(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	ListTransactionsByMemberFn func(ctx context.Context, memberID string) ([]domain.Transaction, error)
	ListTransactionsFn         func(ctx context.Context) ([]domain.Transaction, error)
	ListPendingTransactionsFn  func(ctx context.Context) ([]domain.Transaction, error)
	ResolveIfPendingFn         func(ctx context.Context, transactionID int64, status domain.TransactionStatus) (bool, error)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	if m.SaveTransactionFn != nil {
		return m.SaveTransactionFn(ctx, txn)
	}
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) error {
	if m.SaveTransactionsBatchFn != nil {
		return m.SaveTransactionsBatchFn(ctx, txns)
	}
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	if m.ListTransactionsByMemberFn != nil {
		return m.ListTransactionsByMemberFn(ctx, memberID)
	}
	args := m.Called(ctx, memberID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx)
	}
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListPendingTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if m.ListPendingTransactionsFn != nil {
		return m.ListPendingTransactionsFn(ctx)
	}
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ResolveIfPending(ctx context.Context, transactionID int64, status domain.TransactionStatus) (bool, error) {
	if m.ResolveIfPendingFn != nil {
		return m.ResolveIfPendingFn(ctx, transactionID, status)
	}
	args := m.Called(ctx, transactionID, status)
	return args.Bool(0), args.Error(1)
}

// --- Mock MemberRepository ---

type MockMemberRepository struct {
	mock.Mock
	SaveMemberFn            func(ctx context.Context, member domain.Member) error
	FindMemberByIDFn        func(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByNameFn      func(ctx context.Context, name string) (*domain.Member, error)
	FindMemberByLoginFn     func(ctx context.Context, name, shortID string) (*domain.Member, error)
	ListMembersFn           func(ctx context.Context) ([]domain.Member, error)
	UpdateMemberFn          func(ctx context.Context, member domain.Member) error
	UpdateMemberAttributeFn func(ctx context.Context, memberID string, kind domain.AttributeKind, value string, updatedBy string, updatedAt time.Time) error
	UpdateRefreshTokenFn    func(ctx context.Context, memberID string, tokenHash string, expiresAt time.Time) error
	ClearRefreshTokenFn     func(ctx context.Context, memberID string) error
	FindRefreshTokenFn      func(ctx context.Context, memberID string) (string, time.Time, error)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	if m.SaveMemberFn != nil {
		return m.SaveMemberFn(ctx, member)
	}
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.FindMemberByIDFn != nil {
		return m.FindMemberByIDFn(ctx, memberID)
	}
	args := m.Called(ctx, memberID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMemberByName(ctx context.Context, name string) (*domain.Member, error) {
	if m.FindMemberByNameFn != nil {
		return m.FindMemberByNameFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMemberByLogin(ctx context.Context, name, shortID string) (*domain.Member, error) {
	if m.FindMemberByLoginFn != nil {
		return m.FindMemberByLoginFn(ctx, name, shortID)
	}
	args := m.Called(ctx, name, shortID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx)
	}
	args := m.Called(ctx)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Error(1)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	if m.UpdateMemberFn != nil {
		return m.UpdateMemberFn(ctx, member)
	}
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMemberAttribute(ctx context.Context, memberID string, kind domain.AttributeKind, value string, updatedBy string, updatedAt time.Time) error {
	if m.UpdateMemberAttributeFn != nil {
		return m.UpdateMemberAttributeFn(ctx, memberID, kind, value, updatedBy, updatedAt)
	}
	args := m.Called(ctx, memberID, kind, value, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateRefreshToken(ctx context.Context, memberID string, tokenHash string, expiresAt time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, memberID, tokenHash, expiresAt)
	}
	args := m.Called(ctx, memberID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockMemberRepository) ClearRefreshToken(ctx context.Context, memberID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, memberID)
	}
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockMemberRepository) FindRefreshToken(ctx context.Context, memberID string) (string, time.Time, error) {
	if m.FindRefreshTokenFn != nil {
		return m.FindRefreshTokenFn(ctx, memberID)
	}
	args := m.Called(ctx, memberID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock ItemRepository ---

type MockItemRepository struct {
	mock.Mock
	SaveItemFn         func(ctx context.Context, item domain.Item) (int64, error)
	FindItemByIDFn     func(ctx context.Context, itemID int64) (*domain.Item, error)
	ListItemsByOwnerFn func(ctx context.Context, ownerID string, includeUsed bool) ([]domain.Item, error)
	UpdateItemOwnerFn  func(ctx context.Context, itemID int64, newOwnerID, fromName string) error
	MarkItemUsedFn     func(ctx context.Context, itemID int64) (bool, error)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) (int64, error) {
	if m.SaveItemFn != nil {
		return m.SaveItemFn(ctx, item)
	}
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	if m.FindItemByIDFn != nil {
		return m.FindItemByIDFn(ctx, itemID)
	}
	args := m.Called(ctx, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) ListItemsByOwner(ctx context.Context, ownerID string, includeUsed bool) ([]domain.Item, error) {
	if m.ListItemsByOwnerFn != nil {
		return m.ListItemsByOwnerFn(ctx, ownerID, includeUsed)
	}
	args := m.Called(ctx, ownerID, includeUsed)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *MockItemRepository) UpdateItemOwner(ctx context.Context, itemID int64, newOwnerID, fromName string) error {
	if m.UpdateItemOwnerFn != nil {
		return m.UpdateItemOwnerFn(ctx, itemID, newOwnerID, fromName)
	}
	args := m.Called(ctx, itemID, newOwnerID, fromName)
	return args.Error(0)
}

func (m *MockItemRepository) MarkItemUsed(ctx context.Context, itemID int64) (bool, error) {
	if m.MarkItemUsedFn != nil {
		return m.MarkItemUsedFn(ctx, itemID)
	}
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}
