package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daygridapp/daygrid-server/internal/domain"
)

// createSubcategory provisions a subcategory over HTTP and returns its id.
func (ts *testServer) createSubcategory(t *testing.T, token, name, category string) string {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/api/v1/subcategories", token, map[string]any{
		"name":     name,
		"category": category,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	envelope := decodeEnvelope[domain.Subcategory](t, resp)
	require.NotEmpty(t, envelope.Data.ID)
	return envelope.Data.ID
}

func TestAssignAndGetDay(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)
	subID := ts.createSubcategory(t, token, "Coding", "WORK")

	assignResp := ts.do(t, http.MethodPost, "/api/v1/days/assign", token, map[string]any{
		"cells": []map[string]any{
			{"date": "2026-03-01", "hour": 9},
			{"date": "2026-03-01", "hour": 10},
			{"date": "2026-03-02", "hour": 14},
		},
		"task_name":       "Feature work",
		"category":        "WORK",
		"subcategory_id":  subID,
		"well_being_tags": []string{"Mental", "Growth"},
	})
	require.Equal(t, http.StatusOK, assignResp.Code, assignResp.Body.String())

	assigned := decodeEnvelope[[]*domain.DayRecord](t, assignResp)
	require.Len(t, assigned.Data, 2)
	assert.Equal(t, "2026-03-01", assigned.Data[0].Date)
	assert.Equal(t, "2026-03-02", assigned.Data[1].Date)

	dayResp := ts.do(t, http.MethodGet, "/api/v1/days/2026-03-01", token, nil)
	require.Equal(t, http.StatusOK, dayResp.Code)

	day := decodeEnvelope[domain.DayRecord](t, dayResp)
	require.NotNil(t, day.Data.Hours[9])
	assert.Equal(t, "Feature work", day.Data.Hours[9].TaskName)
	assert.Equal(t, domain.CategoryWork, day.Data.Hours[9].Category)
	require.NotNil(t, day.Data.Hours[9].Subcategory)
	assert.Equal(t, "Coding", day.Data.Hours[9].Subcategory.Name)
	assert.Nil(t, day.Data.Hours[8])
}

func TestGetDay_NeverWritten(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)

	resp := ts.do(t, http.MethodGet, "/api/v1/days/2026-07-04", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	day := decodeEnvelope[domain.DayRecord](t, resp)
	assert.Equal(t, "2026-07-04", day.Data.Date)
	assert.Empty(t, day.Data.ID)
	for hour, entry := range day.Data.Hours {
		assert.Nil(t, entry, "hour %d", hour)
	}
}

func TestGetDay_InvalidDate(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)

	resp := ts.do(t, http.MethodGet, "/api/v1/days/03-01-2026", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetDayRange(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)
	subID := ts.createSubcategory(t, token, "Sleep", "REST")

	for _, date := range []string{"2026-03-01", "2026-03-05", "2026-03-10"} {
		resp := ts.do(t, http.MethodPost, "/api/v1/days/assign", token, map[string]any{
			"cells":          []map[string]any{{"date": date, "hour": 23}},
			"category":       "REST",
			"subcategory_id": subID,
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	}

	resp := ts.do(t, http.MethodGet, "/api/v1/days?start=2026-03-01&end=2026-03-05", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	records := decodeEnvelope[[]*domain.DayRecord](t, resp)
	require.Len(t, records.Data, 2)
	assert.Equal(t, "2026-03-01", records.Data[0].Date)
	assert.Equal(t, "2026-03-05", records.Data[1].Date)

	missing := ts.do(t, http.MethodGet, "/api/v1/days?start=2026-03-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	inverted := ts.do(t, http.MethodGet, "/api/v1/days?start=2026-03-10&end=2026-03-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, inverted.Code)
}

func TestAssignCells_Validation(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)
	subID := ts.createSubcategory(t, token, "Coding", "WORK")

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "empty selection",
			body: map[string]any{
				"cells":          []map[string]any{},
				"category":       "WORK",
				"subcategory_id": subID,
			},
		},
		{
			name: "hour out of range",
			body: map[string]any{
				"cells":          []map[string]any{{"date": "2026-03-01", "hour": 24}},
				"category":       "WORK",
				"subcategory_id": subID,
			},
		},
		{
			name: "unknown category",
			body: map[string]any{
				"cells":          []map[string]any{{"date": "2026-03-01", "hour": 9}},
				"category":       "MISC",
				"subcategory_id": subID,
			},
		},
		{
			name: "unknown well-being tag",
			body: map[string]any{
				"cells":           []map[string]any{{"date": "2026-03-01", "hour": 9}},
				"category":        "WORK",
				"subcategory_id":  subID,
				"well_being_tags": []string{"Vibes"},
			},
		},
		{
			name: "malformed date",
			body: map[string]any{
				"cells":          []map[string]any{{"date": "March 1", "hour": 9}},
				"category":       "WORK",
				"subcategory_id": subID,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.do(t, http.MethodPost, "/api/v1/days/assign", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		})
	}
}

func TestClearCells(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)
	subID := ts.createSubcategory(t, token, "Coding", "WORK")

	assignResp := ts.do(t, http.MethodPost, "/api/v1/days/assign", token, map[string]any{
		"cells": []map[string]any{
			{"date": "2026-03-01", "hour": 9},
			{"date": "2026-03-01", "hour": 10},
		},
		"category":       "WORK",
		"subcategory_id": subID,
	})
	require.Equal(t, http.StatusOK, assignResp.Code)

	clearResp := ts.do(t, http.MethodPost, "/api/v1/days/clear", token, map[string]any{
		"cells": []map[string]any{{"date": "2026-03-01", "hour": 9}},
	})
	require.Equal(t, http.StatusOK, clearResp.Code, clearResp.Body.String())

	cleared := decodeEnvelope[[]*domain.DayRecord](t, clearResp)
	require.Len(t, cleared.Data, 1)
	assert.Nil(t, cleared.Data[0].Hours[9])
	assert.NotNil(t, cleared.Data[0].Hours[10])
}

func TestGetTasks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()
	token := ts.setupAndLogin(t)
	subID := ts.createSubcategory(t, token, "Coding", "WORK")

	resp := ts.do(t, http.MethodPost, "/api/v1/days/assign", token, map[string]any{
		"cells": []map[string]any{
			{"date": "2026-03-02", "hour": 8},
			{"date": "2026-03-01", "hour": 9},
		},
		"task_name":      "Deep work",
		"category":       "WORK",
		"subcategory_id": subID,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	tasksResp := ts.do(t, http.MethodGet, "/api/v1/tasks?start=2026-03-01&end=2026-03-02", token, nil)
	require.Equal(t, http.StatusOK, tasksResp.Code)

	tasks := decodeEnvelope[[]domain.Task](t, tasksResp)
	require.Len(t, tasks.Data, 2)
	assert.Equal(t, "2026-03-01", tasks.Data[0].Date)
	assert.Equal(t, 9, tasks.Data[0].Hour)
	assert.Equal(t, "2026-03-02", tasks.Data[1].Date)
	assert.Equal(t, "Deep work", tasks.Data[1].TaskName)
}
