package api

import (
	"net/http"

	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/service"
)

// handleSetupStatus reports whether the first user still needs to be created.
func (s *Server) handleSetupStatus(w http.ResponseWriter, r *http.Request) {
	required, err := s.authService.SetupRequired(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]bool{"setup_required": required}, s.logger)
}

// handleSetup creates the first user. One-shot; later calls conflict.
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req service.SetupRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	resp, err := s.authService.Setup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	resp.User.PasswordHash = ""
	response.Created(w, resp, s.logger)
}

// handleLogin authenticates a user and opens a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	req.IPAddress = clientIP(r)

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	resp.User.PasswordHash = ""
	response.Success(w, resp, s.logger)
}

// handleRefresh rotates a session's tokens.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req service.RefreshRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	req.IPAddress = clientIP(r)

	resp, err := s.authService.RefreshTokens(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	resp.User.PasswordHash = ""
	response.Success(w, resp, s.logger)
}

// logoutRequest is the request body for logout.
type logoutRequest struct {
	SessionID string `json:"session_id"`
}

// handleLogout revokes a session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.SessionID == "" {
		response.BadRequest(w, "session_id is required", s.logger)
		return
	}

	if err := s.authService.Logout(r.Context(), req.SessionID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]string{"message": "Logged out successfully"}, s.logger)
}
