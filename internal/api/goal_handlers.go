package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/service"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.goalService.List(r.Context(), getUserID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, goals, s.logger)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGoalRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	goal, err := s.goalService.Create(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, goal, s.logger)
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := s.goalService.Get(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, goal, s.logger)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateGoalRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	goal, err := s.goalService.Update(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, goal, s.logger)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.goalService.Delete(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleGoalProgress returns every goal's standing against one date
// (?date=YYYY-MM-DD).
func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", s.logger)
		return
	}

	progress, err := s.goalService.Progress(r.Context(), getUserID(r.Context()), date)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, progress, s.logger)
}
