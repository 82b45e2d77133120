package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

func (s *Server) ListDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := services.GetDonors(r.Context(), s.DB)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, donors)
}

func (s *Server) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDonorInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	donor, err := services.CreateDonor(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventDonorCreated, ID: donor.ID})
	WriteJSON(w, http.StatusCreated, donor)
}
