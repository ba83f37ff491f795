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
)

// defaultGranterLabel is the provenance recorded when no granter name applies.
const defaultGranterLabel = "内务府"

// itemService implements reward item grants, gifting and exactly-once
// consumption with tier progression.
type itemService struct {
	itemRepo   portsrepo.ItemRepository
	memberRepo portsrepo.MemberRepository
}

// NewItemService creates the item service.
func NewItemService(itemRepo portsrepo.ItemRepository, memberRepo portsrepo.MemberRepository) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo, memberRepo: memberRepo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

// GrantItem creates a new unused item for a member.
func (s *itemService) GrantItem(ctx context.Context, granterID string, req dto.GrantItemRequest) (*domain.Item, error) {
	effect := domain.ItemEffect(req.Effect)
	if !domain.ValidEffect(effect) {
		return nil, fmt.Errorf("%w: unknown effect type %q", apperrors.ErrValidation, req.Effect)
	}

	owner, err := s.memberRepo.FindMemberByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("member not found")
	}

	fromName := defaultGranterLabel
	if granter, err := s.memberRepo.FindMemberByID(ctx, granterID); err == nil && granter != nil {
		fromName = granter.Name
	}

	item := domain.Item{
		OwnerID:   owner.MemberID,
		Name:      req.Name,
		Effect:    effect,
		FromName:  fromName,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.itemRepo.SaveItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	item.ItemID = id
	return &item, nil
}

// GiftItem reassigns an unused item owned by the caller to the named member.
// Ownership and provenance (the gifter's name) update together; no ledger
// entry is produced, items carry their own value.
func (s *itemService) GiftItem(ctx context.Context, callerID string, itemID int64, req dto.GiftItemRequest) (*dto.GiftItemResult, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %d not found", itemID))
	}
	if item.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}
	if item.Used {
		return nil, fmt.Errorf("%w: used items cannot be gifted", apperrors.ErrValidation)
	}

	caller, err := s.memberRepo.FindMemberByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, apperrors.NewNotFoundError("caller not found")
	}

	recipient, err := s.memberRepo.FindMemberByName(ctx, req.RecipientName)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperrors.NewNotFoundError("查无此人")
	}
	if recipient.MemberID == caller.MemberID {
		return nil, apperrors.ErrSelfTarget
	}

	if err := s.itemRepo.UpdateItemOwner(ctx, itemID, recipient.MemberID, caller.Name); err != nil {
		return nil, fmt.Errorf("failed to reassign item %d: %w", itemID, err)
	}
	return &dto.GiftItemResult{
		RecipientName: recipient.Name,
		Message:       fmt.Sprintf("已赠予 %s", recipient.Name),
	}, nil
}

// UseItem consumes an item and advances the governed attribute one tier.
//
// The unused->used flip is a conditional update and the sole concurrency
// guard: when two consumptions race, exactly one wins and the loser becomes a
// silent no-op. Any failure after a successful flip leaves the item sunk; the
// effect is at-most-once by design rather than retried.
func (s *itemService) UseItem(ctx context.Context, callerID string, itemID int64) (*dto.UseItemResult, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %d not found", itemID))
	}
	if item.OwnerID != callerID {
		return nil, apperrors.ErrForbidden
	}

	flipped, err := s.itemRepo.MarkItemUsed(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume item %d: %w", itemID, err)
	}
	if !flipped {
		// Lost the race (or a retried request): the item is already spent and
		// its effect must not apply twice.
		return &dto.UseItemResult{
			Applied: false,
			Effect:  string(item.Effect),
			Message: "此物已被用过",
		}, nil
	}

	kind, ok := item.Effect.Attribute()
	if !ok {
		return &dto.UseItemResult{
			Applied: true,
			Effect:  string(item.Effect),
			Message: fmt.Sprintf("%s 已使用", item.Name),
		}, nil
	}

	// Re-read the profile from the source of truth; a cached copy could be
	// stale if another action just changed the attribute.
	member, err := s.memberRepo.FindMemberByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("item %d consumed but profile read failed: %w", itemID, err)
	}
	if member == nil {
		return nil, apperrors.NewNotFoundError("caller not found")
	}

	seq := domain.SequenceFor(kind)
	current, next, saturated := seq.Next(s.attributeValue(member, kind))
	if saturated {
		return &dto.UseItemResult{
			Applied:    true,
			Effect:     string(item.Effect),
			BeforeTier: current,
			AfterTier:  current,
			Saturated:  true,
			Message:    fmt.Sprintf("已至化境（%s），无需提升", current),
		}, nil
	}

	if err := s.memberRepo.UpdateMemberAttribute(ctx, member.MemberID, kind, next, callerID, time.Now().UTC()); err != nil {
		// The flip already committed, so the item is gone either way. Surface
		// the failure; the effect is lost rather than retried.
		return nil, fmt.Errorf("item %d consumed but attribute write failed: %w", itemID, err)
	}

	return &dto.UseItemResult{
		Applied:    true,
		Effect:     string(item.Effect),
		BeforeTier: current,
		AfterTier:  next,
		Message:    fmt.Sprintf("功效显著！已由【%s】提升至【%s】", current, next),
	}, nil
}

// ListInventory returns the owner's unused items.
func (s *itemService) ListInventory(ctx context.Context, ownerID string) ([]domain.Item, error) {
	return s.itemRepo.ListItemsByOwner(ctx, ownerID, false)
}

func (s *itemService) attributeValue(m *domain.Member, kind domain.AttributeKind) string {
	switch kind {
	case domain.AttrAppearance:
		return m.Appearance
	case domain.AttrConstitution:
		return m.Constitution
	case domain.AttrFamilyRank:
		return m.FamilyRank
	case domain.AttrRank:
		return m.Rank
	}
	return ""
}
