package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StipendSchedule is the policy used by the monthly stipend run: a base amount
// per court rank plus a bonus per family rank. Amounts are in taels.
// The schedule is injected into the transfer service so deployments can tune
// it through configuration without touching the coordinator.
type StipendSchedule struct {
	BaseByRank        map[string]decimal.Decimal
	BonusByFamilyRank map[string]decimal.Decimal
}

// DefaultStipendSchedule mirrors the salary view of the original deployment:
// base pay rises steeply with rank, family standing adds a smaller bonus.
func DefaultStipendSchedule() StipendSchedule {
	base := map[string]decimal.Decimal{
		"未入品": decimal.NewFromInt(10),
		"正九品": decimal.NewFromInt(20),
		"正八品": decimal.NewFromInt(30),
		"正七品": decimal.NewFromInt(50),
		"正六品": decimal.NewFromInt(80),
		"正五品": decimal.NewFromInt(120),
		"正四品": decimal.NewFromInt(180),
		"正三品": decimal.NewFromInt(250),
		"正二品": decimal.NewFromInt(350),
		"正一品": decimal.NewFromInt(500),
	}
	bonus := make(map[string]decimal.Decimal, len(FamilyTiers))
	// 从九品 gets 5, each later family tier adds 5 more, 国公/公侯 tops at 95.
	for i, tier := range FamilyTiers {
		bonus[tier] = decimal.NewFromInt(int64(5 * (i + 1)))
	}
	return StipendSchedule{BaseByRank: base, BonusByFamilyRank: bonus}
}

// StipendFor computes the base, bonus and total stipend for a member.
// Unknown or blank ranks fall back to the lowest scheduled amounts so a badly
// seeded profile still gets paid rather than silently skipped.
func (s StipendSchedule) StipendFor(m Member) (base, bonus, total decimal.Decimal) {
	base, ok := s.BaseByRank[strings.TrimSpace(m.Rank)]
	if !ok {
		base = s.BaseByRank[RankTiers[0]]
	}
	bonus, ok = s.BonusByFamilyRank[strings.TrimSpace(m.FamilyRank)]
	if !ok {
		bonus = s.BonusByFamilyRank[FamilyTiers[0]]
	}
	return base, bonus, base.Add(bonus)
}
