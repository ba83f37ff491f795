package domain_test

import (
	"testing"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStipendFor(t *testing.T) {
	schedule := domain.DefaultStipendSchedule()

	tests := []struct {
		name      string
		member    domain.Member
		wantBase  int64
		wantBonus int64
	}{
		{
			name:      "lowest rank and family",
			member:    domain.Member{Rank: "未入品", FamilyRank: "从九品"},
			wantBase:  10,
			wantBonus: 5,
		},
		{
			name:      "mid rank with strong family",
			member:    domain.Member{Rank: "正五品", FamilyRank: "正四品"},
			wantBase:  120,
			wantBonus: 60,
		},
		{
			name:      "top of both scales",
			member:    domain.Member{Rank: "正一品", FamilyRank: "国公/公侯"},
			wantBase:  500,
			wantBonus: 95,
		},
		{
			name:      "unknown ranks fall back to the lowest amounts",
			member:    domain.Member{Rank: "不知何品", FamilyRank: ""},
			wantBase:  10,
			wantBonus: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, bonus, total := schedule.StipendFor(tt.member)
			assert.True(t, base.Equal(decimal.NewFromInt(tt.wantBase)), "base %s", base)
			assert.True(t, bonus.Equal(decimal.NewFromInt(tt.wantBonus)), "bonus %s", bonus)
			assert.True(t, total.Equal(base.Add(bonus)))
		})
	}
}

func TestDefaultStipendSchedule_CoversEveryTier(t *testing.T) {
	schedule := domain.DefaultStipendSchedule()

	for _, rank := range domain.RankTiers {
		_, ok := schedule.BaseByRank[rank]
		assert.True(t, ok, "no base amount for rank %s", rank)
	}
	for _, tier := range domain.FamilyTiers {
		_, ok := schedule.BonusByFamilyRank[tier]
		assert.True(t, ok, "no bonus for family rank %s", tier)
	}
}
