package domain

import (
	"sort"
	"strconv"
)

// Task is the flat per-(date,hour) view of a populated slot, produced for
// consumers that predate the grid shape (trend charts, activity exports).
// Tasks are derived on demand and never written back directly.
type Task struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	Date          string               `json:"date"`
	Hour          int                  `json:"hour"`
	TaskName      string               `json:"task_name"`
	Category      Category             `json:"category"`
	SubcategoryID string               `json:"subcategory_id"`
	Duration      float64              `json:"duration"`
	Subcategory   *SubcategorySnapshot `json:"subcategory,omitempty"`

	// Day-level tags replicated onto every derived task, some consumers
	// expect them per-task.
	WellBeingTags []WellBeingTag `json:"well_being_tags"`
}

// Tasks expands the record into flat tasks, one per populated slot, ordered
// by hour ascending. Deterministic and side-effect free: at most 24 elements.
func (d *DayRecord) Tasks() []Task {
	tasks := make([]Task, 0, d.PopulatedCount())
	for hour, entry := range d.Hours {
		if entry == nil {
			continue
		}
		tasks = append(tasks, Task{
			ID:            d.ID + "-" + strconv.Itoa(hour),
			UserID:        d.UserID,
			Date:          d.Date,
			Hour:          hour,
			TaskName:      entry.TaskName,
			Category:      entry.Category,
			SubcategoryID: entry.SubcategoryID,
			Duration:      entry.Duration,
			Subcategory:   entry.Subcategory,
			WellBeingTags: d.WellBeingTags,
		})
	}
	return tasks
}

// GroupTasks folds flat tasks back into day records, one per distinct date,
// ordered by date ascending. Each task's hour slot is replayed onto its
// date's record, later tasks for the same (date, hour) win. Day-level tags
// are the union of the grouped tasks' tag sets.
//
// Expanding a record with Tasks and regrouping the result reproduces the
// original populated slots exactly.
func GroupTasks(userID string, tasks []Task) ([]*DayRecord, error) {
	byDate := make(map[string]*DayRecord)
	for _, t := range tasks {
		if err := ValidateDate(t.Date); err != nil {
			return nil, err
		}
		if !ValidHour(t.Hour) {
			return nil, &InvalidHourError{Hour: t.Hour}
		}

		rec, ok := byDate[t.Date]
		if !ok {
			rec = NewDayRecord(userID, t.Date)
			byDate[t.Date] = rec
		}
		rec.Hours[t.Hour] = &HourEntry{
			TaskName:      t.TaskName,
			Category:      t.Category,
			SubcategoryID: t.SubcategoryID,
			Duration:      t.Duration,
			Subcategory:   t.Subcategory,
		}
		rec.WellBeingTags = MergeTags(rec.WellBeingTags, t.WellBeingTags)
	}

	records := make([]*DayRecord, 0, len(byDate))
	for _, rec := range byDate {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}
