package domain

// WellBeingTag is a qualitative day-level label describing which areas of
// life a day contributed to. Tags attach to the whole day, not to a single hour.
type WellBeingTag string

const (
	TagPhysical  WellBeingTag = "Physical"
	TagMental    WellBeingTag = "Mental"
	TagSocial    WellBeingTag = "Social"
	TagSpiritual WellBeingTag = "Spiritual"
	TagGrowth    WellBeingTag = "Growth"
	TagFamily    WellBeingTag = "Family"
	TagMission   WellBeingTag = "Mission"
	TagMoney     WellBeingTag = "Money"
	TagRomance   WellBeingTag = "Romance"
	TagFriends   WellBeingTag = "Friends"
	TagJoy       WellBeingTag = "Joy"
)

// WellBeingTags returns all known tags in display order.
// This is the axis order of the well-being wheel.
func WellBeingTags() []WellBeingTag {
	return []WellBeingTag{
		TagPhysical, TagMental, TagSocial, TagSpiritual, TagGrowth,
		TagFamily, TagMission, TagMoney, TagRomance, TagFriends, TagJoy,
	}
}

// IsValid reports whether the tag is one of the known set.
func (t WellBeingTag) IsValid() bool {
	for _, known := range WellBeingTags() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseWellBeingTag validates a tag string. Matching is exact, tags are
// stored in their canonical capitalized form.
func ParseWellBeingTag(s string) (WellBeingTag, error) {
	t := WellBeingTag(s)
	if !t.IsValid() {
		return "", &InvalidTagError{Value: s}
	}
	return t, nil
}

// MergeTags returns the set union of two tag lists.
// Duplicates collapse, first-seen order is preserved, inputs are not mutated.
// The union is commutative in set terms: only the ordering depends on
// argument order.
func MergeTags(existing, incoming []WellBeingTag) []WellBeingTag {
	seen := make(map[WellBeingTag]struct{}, len(existing)+len(incoming))
	merged := make([]WellBeingTag, 0, len(existing)+len(incoming))
	for _, t := range existing {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	for _, t := range incoming {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
