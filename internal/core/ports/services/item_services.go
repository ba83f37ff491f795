package services

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/MeiyanW/inner_court_app/internal/dto"
)

// ItemSvcFacade exposes reward item operations: grant, gift, use, inventory.
type ItemSvcFacade interface {
	// GrantItem creates a new unused item for a member (admin action).
	GrantItem(ctx context.Context, granterID string, req dto.GrantItemRequest) (*domain.Item, error)

	// GiftItem reassigns an unused item owned by the caller to another member,
	// resolved by display name. Ownership and provenance move together.
	GiftItem(ctx context.Context, callerID string, itemID int64, req dto.GiftItemRequest) (*dto.GiftItemResult, error)

	// UseItem consumes an item exactly once and advances the governed
	// attribute one tier. A lost conditional flip is a silent no-op.
	UseItem(ctx context.Context, callerID string, itemID int64) (*dto.UseItemResult, error)

	// ListInventory returns the owner's unused items.
	ListInventory(ctx context.Context, ownerID string) ([]domain.Item, error)
}
