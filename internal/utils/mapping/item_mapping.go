package mapping

import (
	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	"github.com/MeiyanW/inner_court_app/internal/models"
)

// ToModelItem converts a domain item to its database model.
func ToModelItem(d domain.Item) models.Item {
	return models.Item{
		ItemID:    d.ItemID,
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Effect:    string(d.Effect),
		Used:      d.Used,
		FromName:  d.FromName,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainItem converts a database inventory row to the domain type.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:    m.ItemID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Effect:    domain.ItemEffect(m.Effect),
		Used:      m.Used,
		FromName:  m.FromName,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainItemSlice converts a slice of inventory rows.
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	out := make([]domain.Item, len(ms))
	for i, m := range ms {
		out[i] = ToDomainItem(m)
	}
	return out
}
