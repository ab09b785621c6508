package api

import (
	"net/http"

	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// handleGetCurrentUser returns the authenticated user's profile.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.accountService.GetUser(r.Context(), getUserID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user.PasswordHash = ""
	response.Success(w, user, s.logger)
}

// handleUpdateProfile updates the authenticated user's profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProfileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, err := s.accountService.UpdateProfile(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user.PasswordHash = ""
	response.Success(w, user, s.logger)
}

// handleCompleteOnboarding records onboarding answers and seeds starter
// subcategories.
func (s *Server) handleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req service.OnboardingRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	user, err := s.accountService.CompleteOnboarding(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user.PasswordHash = ""
	response.Success(w, user, s.logger)
}

// handleListSessions returns the user's active sessions.
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessionService.ListUserSessions(r.Context(), getUserID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	for _, sess := range sessions {
		sess.RefreshTokenHash = ""
	}
	response.Success(w, sessions, s.logger)
}

// handleLogoutEverywhere revokes all of the user's sessions.
func (s *Server) handleLogoutEverywhere(w http.ResponseWriter, r *http.Request) {
	if err := s.sessionService.DeleteAllUserSessions(r.Context(), getUserID(r.Context())); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
