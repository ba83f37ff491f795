package mapping

import (
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/MeiyanW/inner_court_app/internal/models"
)

// ToModelMember converts a domain member to its database model.
// The derived balance is intentionally dropped: it is never stored.
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:     d.MemberID,
		ShortID:      d.ShortID,
		Name:         d.Name,
		Role:         string(d.Role),
		Rank:         d.Rank,
		FamilyRank:   d.FamilyRank,
		Appearance:   d.Appearance,
		Constitution: d.Constitution,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a database member row to the domain type.
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:     m.MemberID,
		ShortID:      m.ShortID,
		Name:         m.Name,
		Role:         domain.Role(m.Role),
		Rank:         m.Rank,
		FamilyRank:   m.FamilyRank,
		Appearance:   m.Appearance,
		Constitution: m.Constitution,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts a slice of member rows.
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	out := make([]domain.Member, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMember(m)
	}
	return out
}
