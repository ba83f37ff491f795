package domain

import "github.com/shopspring/decimal"

// Role distinguishes the single administrator from ordinary members.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Member is a participant in the court: a login identity, four progressable
// attributes and a balance derived from the stipend ledger.
// Balance is never persisted; it is recomputed from approved ledger rows on
// every read (see ledger service).
type Member struct {
	MemberID     string `json:"memberID"` // UUID
	ShortID      string `json:"shortID"`  // 6-digit login code, unique
	Name         string `json:"name"`     // display name, unique
	Role         Role   `json:"role"`
	Rank         string `json:"rank"`         // 位分
	FamilyRank   string `json:"familyRank"`   // 家世
	Appearance   string `json:"appearance"`   // 容貌
	Constitution string `json:"constitution"` // 体质
	AuditFields

	// Derived, filled in by services; zero when not computed.
	Balance decimal.Decimal `json:"balance"`
}
