package dto

import (
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMemberRequest is the admin registration payload.
// Attribute fields may be omitted; they default to each sequence's starting tier.
type CreateMemberRequest struct {
	Name         string `json:"name" binding:"required"`
	ShortID      string `json:"shortID" binding:"required,len=6,numeric"`
	Role         string `json:"role" binding:"omitempty,oneof=admin member"`
	Rank         string `json:"rank" binding:"omitempty,tierlabel"`
	FamilyRank   string `json:"familyRank" binding:"omitempty,tierlabel"`
	Appearance   string `json:"appearance" binding:"omitempty,tierlabel"`
	Constitution string `json:"constitution" binding:"omitempty,tierlabel"`
}

// UpdateMemberRequest carries an administrative profile override.
// Pointers distinguish omitted fields from zero values. Balance, when present,
// is applied as a compensating ledger entry rather than a stored write.
type UpdateMemberRequest struct {
	Name         *string          `json:"name"`
	Rank         *string          `json:"rank" binding:"omitempty,tierlabel"`
	FamilyRank   *string          `json:"familyRank" binding:"omitempty,tierlabel"`
	Appearance   *string          `json:"appearance" binding:"omitempty,tierlabel"`
	Constitution *string          `json:"constitution" binding:"omitempty,tierlabel"`
	Balance      *decimal.Decimal `json:"balance"`
}

// MemberResponse is the API shape of a member, balance included.
type MemberResponse struct {
	MemberID     string          `json:"memberID"`
	ShortID      string          `json:"shortID"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Rank         string          `json:"rank"`
	FamilyRank   string          `json:"familyRank"`
	Appearance   string          `json:"appearance"`
	Constitution string          `json:"constitution"`
	Balance      decimal.Decimal `json:"balance"`
}

// ListMembersResponse wraps the roster.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain member to its API shape.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		ShortID:      m.ShortID,
		Name:         m.Name,
		Role:         string(m.Role),
		Rank:         m.Rank,
		FamilyRank:   m.FamilyRank,
		Appearance:   m.Appearance,
		Constitution: m.Constitution,
		Balance:      m.Balance,
	}
}

// ToListMembersResponse converts a roster slice.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: out}
}
