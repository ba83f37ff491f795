package dto

import (
	"time"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
)

// GrantItemRequest is an administrative item grant.
type GrantItemRequest struct {
	OwnerID string `json:"ownerID" binding:"required,uuid"`
	Name    string `json:"name" binding:"required,max=50"`
	Effect  string `json:"effect" binding:"required,oneof=appearance constitution family_rank none"`
}

// GiftItemRequest reassigns an unused item to another member by name.
type GiftItemRequest struct {
	RecipientName string `json:"recipientName" binding:"required"`
}

// ItemResponse is the API shape of one inventory item.
type ItemResponse struct {
	ItemID    int64     `json:"itemID"`
	OwnerID   string    `json:"ownerID"`
	Name      string    `json:"name"`
	Effect    string    `json:"effect"`
	Used      bool      `json:"used"`
	FromName  string    `json:"fromName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListItemsResponse wraps an inventory slice.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// UseItemResult reports the outcome of consuming an item.
// Applied is false when the conditional flip lost to an earlier consumption;
// that case is a silent no-op, not an error. Saturated reports an attribute
// already at its terminal tier.
type UseItemResult struct {
	Applied    bool   `json:"applied"`
	Effect     string `json:"effect"`
	BeforeTier string `json:"beforeTier,omitempty"`
	AfterTier  string `json:"afterTier,omitempty"`
	Saturated  bool   `json:"saturated"`
	Message    string `json:"message"`
}

// GiftItemResult reports a completed gift.
type GiftItemResult struct {
	RecipientName string `json:"recipientName"`
	Message       string `json:"message"`
}

// ToItemResponse converts a domain item to its API shape.
func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:    it.ItemID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Effect:    string(it.Effect),
		Used:      it.Used,
		FromName:  it.FromName,
		CreatedAt: it.CreatedAt,
	}
}

// ToListItemsResponse converts an inventory slice.
func ToListItemsResponse(items []domain.Item) ListItemsResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = ToItemResponse(&items[i])
	}
	return ListItemsResponse{Items: out}
}
