package repositories

import (
	"context"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
)

// ItemRepository defines persistence operations for reward items.
type ItemRepository interface {
	// SaveItem inserts a new item and returns its store-assigned id.
	SaveItem(ctx context.Context, item domain.Item) (int64, error)

	FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error)

	// ListItemsByOwner returns the owner's items; used items are excluded
	// unless includeUsed is set.
	ListItemsByOwner(ctx context.Context, ownerID string, includeUsed bool) ([]domain.Item, error)

	// UpdateItemOwner reassigns an item and its provenance label together.
	UpdateItemOwner(ctx context.Context, itemID int64, newOwnerID, fromName string) error

	// MarkItemUsed flips the used flag with a conditional update that succeeds
	// only if the item was still unused. It reports whether the flip happened;
	// false with a nil error means the item was already consumed.
	MarkItemUsed(ctx context.Context, itemID int64) (bool, error)
}
