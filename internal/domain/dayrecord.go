package domain

import "time"

// HoursPerDay is the fixed number of slots in a day record.
const HoursPerDay = 24

// DateLayout is the ISO calendar date form used everywhere in this model.
// Lexicographic order on this form matches calendar order, which the range
// queries rely on.
const DateLayout = "2006-01-02"

// SubcategorySnapshot is a denormalized copy of a subcategory's display
// fields, attached to an hour entry so clients can render without a join.
// It is a caching convenience, never a source of truth.
type SubcategorySnapshot struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Category Category `json:"category"`
}

// HourEntry is the activity assigned to one hour slot within a day record.
// It is a value object owned by its slot, with no independent identity.
type HourEntry struct {
	TaskName      string               `json:"task_name"`
	Category      Category             `json:"category"`
	SubcategoryID string               `json:"subcategory_id"`
	Duration      float64              `json:"duration"`
	Subcategory   *SubcategorySnapshot `json:"subcategory,omitempty"`
}

// DayRecord is the per-user-per-date aggregate: a well-being tag set plus a
// fixed-length sequence of 24 optional hour entries, index = hour of day.
// Dates are naive local calendar dates, no timezone conversion anywhere.
//
// Hours is a fixed array so the length-24 invariant holds structurally.
// Empty slots are explicit nils, serialized as nulls.
type DayRecord struct {
	Syncable
	UserID        string                  `json:"user_id"`
	Date          string                  `json:"date"`
	WellBeingTags []WellBeingTag          `json:"well_being_tags"`
	Hours         [HoursPerDay]*HourEntry `json:"hours"`
}

// NewDayRecord creates an empty record for a date: all 24 slots nil, no tags.
// The ID is left unset, the store assigns one on first persist.
func NewDayRecord(userID, date string) *DayRecord {
	return &DayRecord{
		UserID:        userID,
		Date:          date,
		WellBeingTags: []WellBeingTag{},
	}
}

// ValidateDate checks that date is a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if len(date) != len(DateLayout) {
		return &InvalidDateError{Date: date}
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return &InvalidDateError{Date: date}
	}
	return nil
}

// ValidHour reports whether hour is a valid slot index.
func ValidHour(hour int) bool {
	return hour >= 0 && hour < HoursPerDay
}

// SlotAt returns the entry at the given hour, or nil for an empty slot.
func (d *DayRecord) SlotAt(hour int) (*HourEntry, error) {
	if !ValidHour(hour) {
		return nil, &InvalidHourError{Hour: hour}
	}
	return d.Hours[hour], nil
}

// WithSlot returns a copy of the record with the given hour slot replaced by
// entry (nil clears the slot). All other slots and the tag set are unchanged.
// The receiver is never mutated, so a caller can fold a batch of updates over
// successive return values while keeping the original intact. Entries are
// treated as immutable once placed in a slot.
func (d *DayRecord) WithSlot(hour int, entry *HourEntry) (*DayRecord, error) {
	if !ValidHour(hour) {
		return nil, &InvalidHourError{Hour: hour}
	}

	out := *d // array field copies by value
	out.WellBeingTags = make([]WellBeingTag, len(d.WellBeingTags))
	copy(out.WellBeingTags, d.WellBeingTags)
	out.Hours[hour] = entry
	return &out, nil
}

// PopulatedCount returns the number of non-empty hour slots.
func (d *DayRecord) PopulatedCount() int {
	n := 0
	for _, slot := range d.Hours {
		if slot != nil {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the record has no populated slots and no tags.
// Such records stay in storage, clearing every slot never deletes the row.
func (d *DayRecord) IsEmpty() bool {
	return d.PopulatedCount() == 0 && len(d.WellBeingTags) == 0
}
