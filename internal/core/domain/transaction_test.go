package domain_test

import (
	"testing"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name: "approved credit counts positive",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(50),
				Type:   domain.Credit,
				Status: domain.StatusApproved,
			},
			want: decimal.NewFromInt(50),
		},
		{
			name: "approved debit counts negative",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(30),
				Type:   domain.Debit,
				Status: domain.StatusApproved,
			},
			want: decimal.NewFromInt(-30),
		},
		{
			name: "pending row contributes nothing",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(100),
				Type:   domain.Debit,
				Status: domain.StatusPending,
			},
			want: decimal.Zero,
		},
		{
			name: "rejected row contributes nothing",
			transaction: domain.Transaction{
				Amount: decimal.NewFromInt(100),
				Type:   domain.Credit,
				Status: domain.StatusRejected,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.SignedAmount()
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestDeriveBalance(t *testing.T) {
	txns := []domain.Transaction{
		{Amount: decimal.NewFromInt(100), Type: domain.Credit, Status: domain.StatusApproved},
		{Amount: decimal.NewFromInt(40), Type: domain.Debit, Status: domain.StatusApproved},
		{Amount: decimal.NewFromInt(999), Type: domain.Debit, Status: domain.StatusPending},
		{Amount: decimal.NewFromInt(999), Type: domain.Credit, Status: domain.StatusRejected},
	}

	balance := domain.DeriveBalance(txns)
	assert.True(t, balance.Equal(decimal.NewFromInt(60)), "got %s", balance)
}

func TestDeriveBalance_EmptyIsZero(t *testing.T) {
	assert.True(t, domain.DeriveBalance(nil).IsZero())
}

func TestDeriveBalance_CanGoNegative(t *testing.T) {
	// An admin-approved overdraft pushes the fold below zero; nothing in the
	// derivation clamps it.
	txns := []domain.Transaction{
		{Amount: decimal.NewFromInt(10), Type: domain.Credit, Status: domain.StatusApproved},
		{Amount: decimal.NewFromInt(25), Type: domain.Debit, Status: domain.StatusApproved},
	}
	assert.True(t, domain.DeriveBalance(txns).Equal(decimal.NewFromInt(-15)))
}

func TestTransaction_IsResolved(t *testing.T) {
	assert.False(t, domain.Transaction{Status: domain.StatusPending}.IsResolved())
	assert.True(t, domain.Transaction{Status: domain.StatusApproved}.IsResolved())
	assert.True(t, domain.Transaction{Status: domain.StatusRejected}.IsResolved())
}
