package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daygridapp/daygrid-server/internal/http/response"
	"github.com/daygridapp/daygrid-server/internal/service"
)

func (s *Server) handleListSubcategories(w http.ResponseWriter, r *http.Request) {
	subs, err := s.subcategoryService.List(r.Context(), getUserID(r.Context()))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, subs, s.logger)
}

func (s *Server) handleCreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSubcategoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sub, err := s.subcategoryService.Create(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, sub, s.logger)
}

func (s *Server) handleGetSubcategory(w http.ResponseWriter, r *http.Request) {
	sub, err := s.subcategoryService.Get(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, sub, s.logger)
}

func (s *Server) handleUpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateSubcategoryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sub, err := s.subcategoryService.Update(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, sub, s.logger)
}

func (s *Server) handleDeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	if err := s.subcategoryService.Delete(r.Context(), getUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
