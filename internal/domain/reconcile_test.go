package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sleepAssignment() Assignment {
	return Assignment{
		TaskName:      "Sleep",
		Category:      CategoryRest,
		SubcategoryID: "sleep-1",
		Duration:      1,
	}
}

func TestReconcile_EmptySelection(t *testing.T) {
	_, err := Reconcile("user-1", nil, sleepAssignment(), nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = ReconcileClear("user-1", []Cell{}, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestReconcile_GroupsCellsByDate(t *testing.T) {
	cells := []Cell{
		{Date: "2024-03-01", Hour: 8},
		{Date: "2024-03-01", Hour: 9},
		{Date: "2024-03-02", Hour: 8},
	}

	records, err := Reconcile("user-1", cells, sleepAssignment(), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first, second := records[0], records[1]
	assert.Equal(t, "2024-03-01", first.Date)
	assert.Equal(t, "2024-03-02", second.Date)

	require.NotNil(t, first.Hours[8])
	require.NotNil(t, first.Hours[9])
	assert.Equal(t, 2, first.PopulatedCount())
	assert.Equal(t, "Sleep", first.Hours[8].TaskName)

	require.NotNil(t, second.Hours[8])
	assert.Equal(t, 1, second.PopulatedCount())
}

func TestReconcile_GroupingCompleteness(t *testing.T) {
	// 5 distinct cells over 3 distinct dates: exactly 3 mutations and
	// every input hour touched exactly once.
	cells := []Cell{
		{Date: "2024-03-03", Hour: 1},
		{Date: "2024-03-01", Hour: 0},
		{Date: "2024-03-02", Hour: 23},
		{Date: "2024-03-01", Hour: 12},
		{Date: "2024-03-03", Hour: 2},
	}

	records, err := Reconcile("user-1", cells, sleepAssignment(), nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	touched := map[Cell]int{}
	for _, rec := range records {
		assert.Len(t, rec.Hours, HoursPerDay)
		for hour, slot := range rec.Hours {
			if slot != nil {
				touched[Cell{Date: rec.Date, Hour: hour}]++
			}
		}
	}
	require.Len(t, touched, len(cells))
	for _, c := range cells {
		assert.Equal(t, 1, touched[c], "cell %v", c)
	}
}

func TestReconcile_PreservesExistingSlots(t *testing.T) {
	existing := NewDayRecord("user-1", "2024-03-01")
	existing.ID = "day-abc"
	existing.Hours[7] = workEntry("Meetings", "meetings-1")

	records, err := Reconcile("user-1", []Cell{{Date: "2024-03-01", Hour: 9}}, sleepAssignment(),
		map[string]*DayRecord{"2024-03-01": existing})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "day-abc", got.ID) // stored identity survives
	require.NotNil(t, got.Hours[7])
	assert.Equal(t, "Meetings", got.Hours[7].TaskName)
	require.NotNil(t, got.Hours[9])
	assert.Equal(t, "Sleep", got.Hours[9].TaskName)

	// Known snapshot untouched.
	assert.Nil(t, existing.Hours[9])
}

func TestReconcile_Idempotent(t *testing.T) {
	cells := []Cell{
		{Date: "2024-03-01", Hour: 8},
		{Date: "2024-03-01", Hour: 9},
	}
	a := sleepAssignment()
	a.WellBeingTags = []WellBeingTag{TagPhysical}

	once, err := Reconcile("user-1", cells, a, nil)
	require.NoError(t, err)
	require.Len(t, once, 1)

	twice, err := Reconcile("user-1", cells, a, map[string]*DayRecord{"2024-03-01": once[0]})
	require.NoError(t, err)
	require.Len(t, twice, 1)

	assert.Equal(t, once[0].Hours, twice[0].Hours)
	assert.Equal(t, once[0].WellBeingTags, twice[0].WellBeingTags)
}

func TestReconcile_DuplicateCellsCollapse(t *testing.T) {
	cells := []Cell{
		{Date: "2024-03-01", Hour: 8},
		{Date: "2024-03-01", Hour: 8},
	}

	records, err := Reconcile("user-1", cells, sleepAssignment(), nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].PopulatedCount())
}

func TestReconcile_MergesTagsAsUnion(t *testing.T) {
	existing := NewDayRecord("user-1", "2024-03-01")
	existing.WellBeingTags = []WellBeingTag{TagMental}

	a := sleepAssignment()
	a.WellBeingTags = []WellBeingTag{TagMental, TagGrowth}

	records, err := Reconcile("user-1", []Cell{{Date: "2024-03-01", Hour: 8}}, a,
		map[string]*DayRecord{"2024-03-01": existing})
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, []WellBeingTag{TagMental, TagGrowth}, records[0].WellBeingTags)
}

func TestReconcile_AttachesSnapshot(t *testing.T) {
	a := sleepAssignment()
	a.Snapshot = &SubcategorySnapshot{Name: "Sleep", Color: "#9ca3af", Category: CategoryRest}

	records, err := Reconcile("user-1", []Cell{{Date: "2024-03-01", Hour: 0}}, a, nil)
	require.NoError(t, err)
	require.NotNil(t, records[0].Hours[0].Subcategory)
	assert.Equal(t, "Sleep", records[0].Hours[0].Subcategory.Name)
}

func TestReconcile_RejectsInvalidCells(t *testing.T) {
	_, err := Reconcile("user-1", []Cell{{Date: "2024-03-01", Hour: 24}}, sleepAssignment(), nil)
	var invalidHour *InvalidHourError
	require.ErrorAs(t, err, &invalidHour)
	assert.Equal(t, 24, invalidHour.Hour)

	_, err = Reconcile("user-1", []Cell{{Date: "2024-99-01", Hour: 8}}, sleepAssignment(), nil)
	var invalidDate *InvalidDateError
	assert.ErrorAs(t, err, &invalidDate)
}

func TestReconcileClear_EmptiesSlotsKeepsRecord(t *testing.T) {
	existing := NewDayRecord("user-1", "2024-03-01")
	existing.ID = "day-abc"
	existing.WellBeingTags = []WellBeingTag{TagJoy}
	existing.Hours[14] = workEntry("Emails", "emails-1")

	records, err := ReconcileClear("user-1", []Cell{{Date: "2024-03-01", Hour: 14}},
		map[string]*DayRecord{"2024-03-01": existing})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "day-abc", got.ID)
	assert.Equal(t, 0, got.PopulatedCount())
	// Clearing slots leaves the tag set alone and still emits the record.
	assert.Equal(t, []WellBeingTag{TagJoy}, got.WellBeingTags)
}

func TestReconcileClear_UnknownDateEmitsEmptyRecord(t *testing.T) {
	records, err := ReconcileClear("user-1", []Cell{{Date: "2024-03-05", Hour: 6}}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-05", records[0].Date)
	assert.Equal(t, 0, records[0].PopulatedCount())
}
