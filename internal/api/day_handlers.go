package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// handleGetDay returns the record for one date. Untracked dates come back as
// an empty grid, not a 404.
func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	rec, err := s.trackingService.GetDay(r.Context(), getUserID(r.Context()), date)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, rec, s.logger)
}

// handleGetDayRange returns records for an inclusive date range
// (?start=YYYY-MM-DD&end=YYYY-MM-DD), ordered ascending.
func (s *Server) handleGetDayRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", s.logger)
		return
	}

	records, err := s.trackingService.GetRange(r.Context(), getUserID(r.Context()), start, end)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, records, s.logger)
}

// handleAssignCells applies one activity to a selection of hour cells and
// returns the stored per-date records.
func (s *Server) handleAssignCells(w http.ResponseWriter, r *http.Request) {
	var req service.AssignCellsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	records, err := s.trackingService.AssignCells(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, records, s.logger)
}

// handleClearCells empties a selection of hour cells.
func (s *Server) handleClearCells(w http.ResponseWriter, r *http.Request) {
	var req service.ClearCellsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	records, err := s.trackingService.ClearCells(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, records, s.logger)
}

// handleGetTasks returns the legacy flat task view for a date range.
func (s *Server) handleGetTasks(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", s.logger)
		return
	}

	tasks, err := s.trackingService.GetTasks(r.Context(), getUserID(r.Context()), start, end)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, tasks, s.logger)
}
