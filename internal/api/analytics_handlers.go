package api

import (
	"net/http"

	"github.com/daygridapp/daygrid-server/internal/http/response"
)

// rangeParams pulls the start/end query parameters shared by the analytics
// endpoints. Writes a 400 and returns false when either is missing.
func (s *Server) rangeParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "start and end query parameters are required", s.logger)
		return "", "", false
	}
	return start, end, true
}

// handleAnalyticsSummary returns the hour breakdown for a date range.
func (s *Server) handleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := s.rangeParams(w, r)
	if !ok {
		return
	}

	summary, err := s.analyticsService.Summary(r.Context(), getUserID(r.Context()), start, end)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, summary, s.logger)
}

// handleAnalyticsTrends returns the per-day category hour series.
func (s *Server) handleAnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	start, end, ok := s.rangeParams(w, r)
	if !ok {
		return
	}

	points, err := s.analyticsService.Trends(r.Context(), getUserID(r.Context()), start, end)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, points, s.logger)
}

// handleAnalyticsWellBeing returns the well-being wheel counts.
func (s *Server) handleAnalyticsWellBeing(w http.ResponseWriter, r *http.Request) {
	start, end, ok := s.rangeParams(w, r)
	if !ok {
		return
	}

	counts, err := s.analyticsService.WellBeing(r.Context(), getUserID(r.Context()), start, end)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, counts, s.logger)
}
