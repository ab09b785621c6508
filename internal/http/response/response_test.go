package response

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/daygridapp/daygrid-server/internal/errors"
	"github.com/daygridapp/daygrid-server/internal/store"
)

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	data := map[string]string{"message": "test"}
	JSON(w, http.StatusOK, data, logger)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Error)
}

func TestJSON_ErrorStatus(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	JSON(w, http.StatusNotFound, map[string]string{"message": "test"}, logger)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success, "Success should be false for status >= 400")
}

func TestJSON_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"message": "test"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Success(w, map[string]any{"id": "123", "name": "test"}, logger)

	assert.Equal(t, http.StatusOK, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.True(t, result.Success)
	dataMap, ok := result.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "123", dataMap["id"])
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Created(w, map[string]string{"id": "new-id"}, logger)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()

	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_Generic(t *testing.T) {
	w := httptest.NewRecorder()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	Error(w, http.StatusInternalServerError, "something went wrong", logger)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result Envelope
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Equal(t, "something went wrong", result.Error)
}

func TestStatusCodeBoundary(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		expectedSuccess bool
	}{
		{"200 OK", 200, true},
		{"204 No Content", 204, true},
		{"399 Custom Success", 399, true},
		{"400 Bad Request", 400, false},
		{"500 Internal Server Error", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			JSON(w, tt.status, nil, logger)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSuccess, result.Success)
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app not found",
			err:        apperrors.NotFound("record not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   "record not found",
		},
		{
			name:       "app validation",
			err:        apperrors.InvalidHour(24),
			wantStatus: http.StatusBadRequest,
			wantBody:   "hour 24 is outside the valid range [0,23]",
		},
		{
			name:       "app empty selection",
			err:        apperrors.EmptySelection(),
			wantStatus: http.StatusBadRequest,
			wantBody:   "no cells selected",
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("assigning cells: %w", apperrors.Unauthorized("session expired")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "session expired",
		},
		{
			name:       "store not found",
			err:        store.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   store.ErrNotFound.Message,
		},
		{
			name:       "store email exists",
			err:        store.ErrEmailExists,
			wantStatus: http.StatusConflict,
			wantBody:   store.ErrEmailExists.Message,
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			HandleError(w, tt.err, logger)

			assert.Equal(t, tt.wantStatus, w.Code)

			var result Envelope
			err := json.Unmarshal(w.Body.Bytes(), &result)
			require.NoError(t, err)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantBody, result.Error)
		})
	}
}

func TestEnvelope_OmitEmpty(t *testing.T) {
	tests := []struct {
		name        string
		envelope    Envelope
		contains    []string
		notContains []string
	}{
		{
			name:        "success with data",
			envelope:    Envelope{Success: true, Data: "test"},
			contains:    []string{"\"success\":true", "\"data\":\"test\""},
			notContains: []string{"\"error\":", "\"message\":"},
		},
		{
			name:        "error without data",
			envelope:    Envelope{Success: false, Error: "something failed"},
			contains:    []string{"\"success\":false", "\"error\":\"something failed\""},
			notContains: []string{"\"data\":"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.envelope)
			require.NoError(t, err)

			jsonStr := string(data)
			for _, s := range tt.contains {
				assert.Contains(t, jsonStr, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, jsonStr, s)
			}
		})
	}
}
