package domain

import "sort"

// Cell addresses one hour slot on one date.
type Cell struct {
	Date string `json:"date"`
	Hour int    `json:"hour"`
}

// Assignment is the single activity payload applied to every selected cell.
type Assignment struct {
	TaskName      string
	Category      Category
	SubcategoryID string
	Duration      float64
	WellBeingTags []WellBeingTag

	// Snapshot is an optional display copy of the referenced subcategory,
	// attached to each written entry when the caller has one at hand.
	Snapshot *SubcategorySnapshot
}

// Reconcile translates "apply this activity to these cells" into per-date
// record mutations. Cells are grouped by date; each date gets exactly one
// output record representing the full replacement state for that date, with
// the selected hours overwritten by the assignment's entry and the payload
// tags merged into the day's tag set as a union.
//
// known holds the already-fetched records keyed by date; dates absent from
// it are synthesized empty. known and its records are never mutated, so the
// caller's snapshot stays valid if persistence fails partway.
//
// Output is ordered by date ascending. Within a date, hours apply in
// ascending order. Applying the same call twice yields the same records.
func Reconcile(userID string, cells []Cell, a Assignment, known map[string]*DayRecord) ([]*DayRecord, error) {
	groups, err := groupCells(cells)
	if err != nil {
		return nil, err
	}

	entry := &HourEntry{
		TaskName:      a.TaskName,
		Category:      a.Category,
		SubcategoryID: a.SubcategoryID,
		Duration:      a.Duration,
		Subcategory:   a.Snapshot,
	}

	records := make([]*DayRecord, 0, len(groups))
	for _, g := range groups {
		rec := baseRecord(userID, g.date, known)
		for _, hour := range g.hours {
			rec, err = rec.WithSlot(hour, entry)
			if err != nil {
				return nil, err
			}
		}
		rec.WellBeingTags = MergeTags(rec.WellBeingTags, a.WellBeingTags)
		rec.Touch()
		records = append(records, rec)
	}
	return records, nil
}

// ReconcileClear is the removal counterpart of Reconcile: the selected hours
// are emptied instead of assigned, and the day's tag set is left alone. A
// record whose slots all end up empty is still emitted, never auto-deleted.
func ReconcileClear(userID string, cells []Cell, known map[string]*DayRecord) ([]*DayRecord, error) {
	groups, err := groupCells(cells)
	if err != nil {
		return nil, err
	}

	records := make([]*DayRecord, 0, len(groups))
	for _, g := range groups {
		rec := baseRecord(userID, g.date, known)
		for _, hour := range g.hours {
			rec, err = rec.WithSlot(hour, nil)
			if err != nil {
				return nil, err
			}
		}
		rec.Touch()
		records = append(records, rec)
	}
	return records, nil
}

type cellGroup struct {
	date  string
	hours []int
}

// groupCells validates the selection and buckets hours by date.
// Duplicate cells collapse. Groups come back ordered by date ascending with
// hours ascending inside each group.
func groupCells(cells []Cell) ([]cellGroup, error) {
	if len(cells) == 0 {
		return nil, ErrEmptySelection
	}

	byDate := make(map[string]map[int]struct{})
	for _, c := range cells {
		if err := ValidateDate(c.Date); err != nil {
			return nil, err
		}
		if !ValidHour(c.Hour) {
			return nil, &InvalidHourError{Hour: c.Hour}
		}
		if byDate[c.Date] == nil {
			byDate[c.Date] = make(map[int]struct{})
		}
		byDate[c.Date][c.Hour] = struct{}{}
	}

	groups := make([]cellGroup, 0, len(byDate))
	for date, hourSet := range byDate {
		hours := make([]int, 0, len(hourSet))
		for h := range hourSet {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		groups = append(groups, cellGroup{date: date, hours: hours})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].date < groups[j].date })
	return groups, nil
}

// baseRecord returns a copy of the known record for date, or a fresh empty
// one when the date has never been touched.
func baseRecord(userID, date string, known map[string]*DayRecord) *DayRecord {
	if existing, ok := known[date]; ok && existing != nil {
		out := *existing
		out.WellBeingTags = make([]WellBeingTag, len(existing.WellBeingTags))
		copy(out.WellBeingTags, existing.WellBeingTags)
		return &out
	}
	return NewDayRecord(userID, date)
}
