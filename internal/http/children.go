package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListChildren(w http.ResponseWriter, r *http.Request) {
	children, err := services.GetChildren(r.Context(), s.DB)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, children)
}

func (s *Server) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChildInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	child, err := services.CreateChild(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventChildCreated, ID: child.ID})
	WriteJSON(w, http.StatusCreated, child)
}

// UpdateChild takes the id from the path; an id in the body is ignored.
func (s *Server) UpdateChild(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateChildInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	child, err := services.UpdateChild(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventChildUpdated, ID: child.ID})
	WriteJSON(w, http.StatusOK, child)
}
