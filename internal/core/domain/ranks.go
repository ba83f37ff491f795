package domain

import "strings"

// AttributeKind identifies one of the four progressable member attributes.
type AttributeKind string

const (
	AttrRank         AttributeKind = "rank"
	AttrFamilyRank   AttributeKind = "family_rank"
	AttrAppearance   AttributeKind = "appearance"
	AttrConstitution AttributeKind = "constitution"
)

// Tier sequences, ordered from the starting tier up to the terminal tier.
// Labels must match the stored profile values exactly; reads trim incidental
// whitespace before lookup.
var (
	// CommonTiers governs appearance and constitution.
	CommonTiers = []string{
		"十等", "九等", "八等", "七等", "六等", "五等", "四等", "三等", "二等", "一等", "特等",
	}

	// FamilyTiers governs family rank, interleaving 从/正 grades up to 国公/公侯.
	FamilyTiers = []string{
		"从九品", "正九品", "从八品", "正八品", "从七品", "正七品",
		"从六品", "正六品", "从五品", "正五品", "从四品", "正四品",
		"从三品", "正三品", "从二品", "正二品", "从一品", "正一品", "国公/公侯",
	}

	// RankTiers governs the court rank (位分). It only moves by administrative
	// decree, never by item consumption, but shares the sequence machinery.
	RankTiers = []string{
		"未入品", "正九品", "正八品", "正七品", "正六品", "正五品",
		"正四品", "正三品", "正二品", "正一品",
	}
)

// TierSequence is an ordered, fixed progression of tier labels with a defined
// starting tier (used when a member has no value recorded) and a terminal tier
// beyond which advancement saturates.
type TierSequence struct {
	Kind  AttributeKind
	Tiers []string
}

// SequenceFor returns the sequence governing the given attribute.
func SequenceFor(kind AttributeKind) TierSequence {
	switch kind {
	case AttrFamilyRank:
		return TierSequence{Kind: AttrFamilyRank, Tiers: FamilyTiers}
	case AttrRank:
		return TierSequence{Kind: AttrRank, Tiers: RankTiers}
	default:
		return TierSequence{Kind: kind, Tiers: CommonTiers}
	}
}

// Start returns the sequence's defined starting tier.
func (s TierSequence) Start() string {
	return s.Tiers[0]
}

// Terminal returns the sequence's maximum tier.
func (s TierSequence) Terminal() string {
	return s.Tiers[len(s.Tiers)-1]
}

// Contains reports whether label is a tier of this sequence.
func (s TierSequence) Contains(label string) bool {
	return s.indexOf(strings.TrimSpace(label)) >= 0
}

func (s TierSequence) indexOf(label string) int {
	for i, t := range s.Tiers {
		if t == label {
			return i
		}
	}
	return -1
}

// KnownTierLabel reports whether label belongs to any tier sequence. Input
// validation uses this so a profile never stores a label the advancement
// machinery cannot resolve.
func KnownTierLabel(label string) bool {
	for _, kind := range []AttributeKind{AttrRank, AttrFamilyRank, AttrAppearance} {
		if SequenceFor(kind).Contains(label) {
			return true
		}
	}
	return false
}

// Next resolves the tier that follows current in the sequence.
// A blank or unknown current value resolves to the starting tier before
// advancing, mirroring a member with no tier recorded. saturated is true when
// current is already the terminal tier, in which case next equals current and
// no advancement should be written.
func (s TierSequence) Next(current string) (resolved, next string, saturated bool) {
	resolved = strings.TrimSpace(current)
	idx := s.indexOf(resolved)
	if idx < 0 {
		resolved = s.Start()
		idx = 0
	}
	if idx == len(s.Tiers)-1 {
		return resolved, resolved, true
	}
	return resolved, s.Tiers[idx+1], false
}
