package domain

import "time"

// ItemEffect names the attribute an item advances when consumed.
type ItemEffect string

const (
	EffectAppearance   ItemEffect = "appearance"
	EffectConstitution ItemEffect = "constitution"
	EffectFamilyRank   ItemEffect = "family_rank"
	EffectNone         ItemEffect = "none" // cosmetic, no progression
)

// ValidEffect reports whether e is one of the known effect types.
func ValidEffect(e ItemEffect) bool {
	switch e {
	case EffectAppearance, EffectConstitution, EffectFamilyRank, EffectNone:
		return true
	}
	return false
}

// Attribute returns the attribute kind governed by the effect, or false for
// cosmetic items.
func (e ItemEffect) Attribute() (AttributeKind, bool) {
	switch e {
	case EffectAppearance:
		return AttrAppearance, true
	case EffectConstitution:
		return AttrConstitution, true
	case EffectFamilyRank:
		return AttrFamilyRank, true
	}
	return "", false
}

// Item is a single-use reward object. Ownership moves by gifting while the
// item is unused; consumption flips Used exactly once, after which the item is
// permanently inert.
type Item struct {
	ItemID    int64      `json:"itemID"` // store-assigned
	OwnerID   string     `json:"ownerID"`
	Name      string     `json:"name"`
	Effect    ItemEffect `json:"effect"`
	Used      bool       `json:"used"`
	FromName  string     `json:"fromName"` // provenance: granter or last gifter
	CreatedAt time.Time  `json:"createdAt"`
}
