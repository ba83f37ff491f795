package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MeiyanW/inner_court_app/internal/apperrors"
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portsrepo "github.com/MeiyanW/inner_court_app/internal/core/ports/repositories"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/MeiyanW/inner_court_app/internal/dto"
	"github.com/google/uuid"
)

// memberService implements the member registry: registration, roster reads
// with derived balances, and administrative profile overrides.
type memberService struct {
	memberRepo portsrepo.MemberRepository
	balances   portssvc.BalanceReaderSvc
	overrider  portssvc.BalanceOverriderSvc
}

// NewMemberService creates the member service.
func NewMemberService(
	memberRepo portsrepo.MemberRepository,
	balances portssvc.BalanceReaderSvc,
	overrider portssvc.BalanceOverriderSvc,
) portssvc.MemberSvcFacade {
	return &memberService{
		memberRepo: memberRepo,
		balances:   balances,
		overrider:  overrider,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// CreateMember registers a new member. Attribute fields left blank default to
// each sequence's starting tier.
func (s *memberService) CreateMember(ctx context.Context, creatorID string, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleMember
	}

	now := time.Now().UTC()
	member := domain.Member{
		MemberID:     uuid.NewString(),
		ShortID:      req.ShortID,
		Name:         name,
		Role:         role,
		Rank:         defaultTier(req.Rank, domain.AttrRank),
		FamilyRank:   defaultTier(req.FamilyRank, domain.AttrFamilyRank),
		Appearance:   defaultTier(req.Appearance, domain.AttrAppearance),
		Constitution: defaultTier(req.Constitution, domain.AttrConstitution),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetMember returns a member with their freshly derived balance.
func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}
	balance, err := s.balances.MemberBalance(ctx, memberID)
	if err != nil {
		return nil, err
	}
	member.Balance = balance
	return member, nil
}

// ListMembers returns the roster with derived balances, folding the whole
// ledger once rather than per member.
func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	balances, err := s.balances.Balances(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].Balance = balances[members[i].MemberID]
	}
	return members, nil
}

// UpdateMember applies an administrative override to a member's profile.
// Attribute writes go to the profile row; a balance target is converted into
// a compensating ledger entry so the balance stays a fold over the log.
func (s *memberService) UpdateMember(ctx context.Context, updaterID, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.Rank != nil {
		member.Rank = *req.Rank
	}
	if req.FamilyRank != nil {
		member.FamilyRank = *req.FamilyRank
	}
	if req.Appearance != nil {
		member.Appearance = *req.Appearance
	}
	if req.Constitution != nil {
		member.Constitution = *req.Constitution
	}
	member.LastUpdatedAt = time.Now().UTC()
	member.LastUpdatedBy = updaterID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, err
	}

	if req.Balance != nil {
		if err := s.overrider.OverrideBalance(ctx, updaterID, memberID, *req.Balance); err != nil {
			return nil, err
		}
	}

	return s.GetMember(ctx, memberID)
}

// defaultTier returns the given label, or the sequence's starting tier when
// blank.
func defaultTier(label string, kind domain.AttributeKind) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.SequenceFor(kind).Start()
	}
	return label
}
