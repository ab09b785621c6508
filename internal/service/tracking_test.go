package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daygridapp/daygrid-server/internal/domain"
	domainerrors "github.com/daygridapp/daygrid-server/internal/errors"
	"github.com/daygridapp/daygrid-server/internal/store"
	"github.com/daygridapp/daygrid-server/internal/store/sqlite"
)

func setupTestTracking(t *testing.T) (*TrackingService, store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tracking-service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	testStore, err := sqlite.Open(dbPath, nil)
	require.NoError(t, err)

	svc := NewTrackingService(testStore, nil)

	cleanup := func() {
		testStore.Close()
		os.RemoveAll(tmpDir)
	}

	return svc, testStore, cleanup
}

func ensureTestUser(t *testing.T, s store.Store, userID string) {
	t.Helper()
	now := time.Now()
	_ = s.CreateUser(context.Background(), &domain.User{
		Syncable:    domain.Syncable{ID: userID, CreatedAt: now, UpdatedAt: now},
		Email:       userID + "@test.com",
		DisplayName: "Test " + userID,
		LastLoginAt: now,
	}) // Ignore error if user already exists.
}

func createTestSubcategory(t *testing.T, s store.Store, userID, subID, name string, cat domain.Category) {
	t.Helper()
	sub := &domain.Subcategory{
		Syncable: domain.Syncable{ID: subID},
		UserID:   userID,
		Name:     name,
		Category: cat,
		Color:    cat.Color(),
	}
	sub.InitTimestamps()
	require.NoError(t, s.CreateSubcategory(context.Background(), sub))
}

func TestAssignCells_CreatesRecordsPerDate(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")

	records, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells: []domain.Cell{
			{Date: "2026-03-02", Hour: 9},
			{Date: "2026-03-01", Hour: 14},
			{Date: "2026-03-01", Hour: 9},
		},
		TaskName:      "Deep work",
		Category:      "WORK",
		SubcategoryID: "sub-coding",
		WellBeingTags: []string{"Mental", "Growth"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Output ordered by date ascending.
	assert.Equal(t, "2026-03-01", records[0].Date)
	assert.Equal(t, "2026-03-02", records[1].Date)

	// Stored identifiers were assigned.
	assert.NotEmpty(t, records[0].ID)
	assert.NotEmpty(t, records[1].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)

	// Selected slots hold the activity, defaulting to a full hour.
	first := records[0]
	require.NotNil(t, first.Hours[9])
	require.NotNil(t, first.Hours[14])
	assert.Nil(t, first.Hours[10])
	assert.Equal(t, "Deep work", first.Hours[9].TaskName)
	assert.Equal(t, domain.CategoryWork, first.Hours[9].Category)
	assert.Equal(t, 1.0, first.Hours[9].Duration)

	assert.ElementsMatch(t,
		[]domain.WellBeingTag{domain.TagMental, domain.TagGrowth},
		first.WellBeingTags)
}

func TestAssignCells_PreservesExistingSlotsAndIdentity(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")

	first, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 8}},
		TaskName:      "Standup",
		Category:      "WORK",
		SubcategoryID: "sub-meetings",
	})
	require.NoError(t, err)
	storedID := first[0].ID

	second, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 22}},
		TaskName:      "Wind down",
		Category:      "REST",
		SubcategoryID: "sub-relax",
	})
	require.NoError(t, err)

	rec := second[0]
	assert.Equal(t, storedID, rec.ID, "record identity must survive updates")
	require.NotNil(t, rec.Hours[8], "earlier slot must be preserved")
	assert.Equal(t, "Standup", rec.Hours[8].TaskName)
	require.NotNil(t, rec.Hours[22])
	assert.Equal(t, domain.CategoryRest, rec.Hours[22].Category)
}

func TestAssignCells_EmptySelection(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	_, err := svc.AssignCells(context.Background(), "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{},
		Category:      "WORK",
		SubcategoryID: "sub-coding",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrEmptySelection))
}

func TestAssignCells_InvalidHour(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	_, err := svc.AssignCells(context.Background(), "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 24}},
		Category:      "WORK",
		SubcategoryID: "sub-coding",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidHour))
}

func TestAssignCells_RejectsUnknownCategory(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	_, err := svc.AssignCells(context.Background(), "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 9}},
		Category:      "MISC",
		SubcategoryID: "sub-coding",
	})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestAssignCells_AttachesSubcategorySnapshot(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")
	createTestSubcategory(t, testStore, "user-1", "sub-coding", "Coding", domain.CategoryWork)

	records, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 10}},
		Category:      "WORK",
		SubcategoryID: "sub-coding",
	})
	require.NoError(t, err)

	entry := records[0].Hours[10]
	require.NotNil(t, entry)
	require.NotNil(t, entry.Subcategory)
	assert.Equal(t, "Coding", entry.Subcategory.Name)
	assert.Equal(t, domain.CategoryWork, entry.Subcategory.Category)
}

func TestAssignCells_DanglingSubcategoryFallsBackToUnknown(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	records, err := svc.AssignCells(context.Background(), "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 10}},
		Category:      "OTHER",
		SubcategoryID: "sub-deleted-long-ago",
	})
	require.NoError(t, err)

	entry := records[0].Hours[10]
	require.NotNil(t, entry)
	require.NotNil(t, entry.Subcategory)
	assert.Equal(t, domain.UnknownSubcategoryName, entry.Subcategory.Name)
}

func TestAssignCells_ForeignSubcategoryFallsBackToUnknown(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")
	ensureTestUser(t, testStore, "user-2")
	createTestSubcategory(t, testStore, "user-2", "sub-theirs", "Secret Project", domain.CategoryWork)

	// A subcategory id owned by another user must not leak its snapshot.
	records, err := svc.AssignCells(context.Background(), "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 11}},
		Category:      "WORK",
		SubcategoryID: "sub-theirs",
	})
	require.NoError(t, err)

	entry := records[0].Hours[11]
	require.NotNil(t, entry)
	require.NotNil(t, entry.Subcategory)
	assert.Equal(t, domain.UnknownSubcategoryName, entry.Subcategory.Name)
	assert.Equal(t, domain.CategoryWork.Color(), entry.Subcategory.Color)
}

func TestClearCells_KeepsRecordAndTags(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")

	_, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells:         []domain.Cell{{Date: "2026-03-01", Hour: 7}},
		Category:      "REST",
		SubcategoryID: "sub-sleep",
		WellBeingTags: []string{"Physical"},
	})
	require.NoError(t, err)

	cleared, err := svc.ClearCells(ctx, "user-1", ClearCellsRequest{
		Cells: []domain.Cell{{Date: "2026-03-01", Hour: 7}},
	})
	require.NoError(t, err)
	require.Len(t, cleared, 1)

	rec := cleared[0]
	assert.Nil(t, rec.Hours[7])
	assert.True(t, rec.IsEmpty())
	assert.Equal(t, []domain.WellBeingTag{domain.TagPhysical}, rec.WellBeingTags,
		"clearing slots must not touch tags")

	// The all-empty record is still stored, not deleted.
	stored, err := testStore.GetDayRecord(ctx, "user-1", "2026-03-01")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestClearCells_UnknownDateEmitsEmptyRecord(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	cleared, err := svc.ClearCells(context.Background(), "user-1", ClearCellsRequest{
		Cells: []domain.Cell{{Date: "2026-04-15", Hour: 3}},
	})
	require.NoError(t, err)
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].IsEmpty())
	assert.NotEmpty(t, cleared[0].ID)
}

func TestGetDay_NeverWrittenReturnsEmpty(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()
	ensureTestUser(t, testStore, "user-1")

	rec, err := svc.GetDay(context.Background(), "user-1", "2026-01-01")
	require.NoError(t, err)
	assert.True(t, rec.IsEmpty())
	assert.Empty(t, rec.ID, "unpersisted record has no identifier yet")
	assert.Equal(t, "2026-01-01", rec.Date)
}

func TestGetDay_InvalidDate(t *testing.T) {
	svc, _, cleanup := setupTestTracking(t)
	defer cleanup()

	_, err := svc.GetDay(context.Background(), "user-1", "01/03/2026")
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestGetRange_InclusiveAndOrdered(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")

	for _, date := range []string{"2026-02-28", "2026-03-01", "2026-03-15", "2026-03-31", "2026-04-01"} {
		_, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
			Cells:         []domain.Cell{{Date: date, Hour: 12}},
			Category:      "WORK",
			SubcategoryID: "sub-coding",
		})
		require.NoError(t, err)
	}

	records, err := svc.GetRange(ctx, "user-1", "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2026-03-01", records[0].Date)
	assert.Equal(t, "2026-03-15", records[1].Date)
	assert.Equal(t, "2026-03-31", records[2].Date)
}

func TestGetRange_StartAfterEnd(t *testing.T) {
	svc, _, cleanup := setupTestTracking(t)
	defer cleanup()

	_, err := svc.GetRange(context.Background(), "user-1", "2026-03-31", "2026-03-01")
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestGetTasks_FlatExpansion(t *testing.T) {
	svc, testStore, cleanup := setupTestTracking(t)
	defer cleanup()

	ctx := context.Background()
	ensureTestUser(t, testStore, "user-1")

	_, err := svc.AssignCells(ctx, "user-1", AssignCellsRequest{
		Cells: []domain.Cell{
			{Date: "2026-03-01", Hour: 9},
			{Date: "2026-03-01", Hour: 10},
			{Date: "2026-03-02", Hour: 9},
		},
		TaskName:      "Writing",
		Category:      "WORK",
		SubcategoryID: "sub-writing",
	})
	require.NoError(t, err)

	tasks, err := svc.GetTasks(ctx, "user-1", "2026-03-01", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "2026-03-01", tasks[0].Date)
	assert.Equal(t, 9, tasks[0].Hour)
	assert.Equal(t, 10, tasks[1].Hour)
	assert.Equal(t, "2026-03-02", tasks[2].Date)
	assert.Equal(t, "Writing", tasks[0].TaskName)
}
