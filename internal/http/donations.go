package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

func (s *Server) ListDonations(w http.ResponseWriter, r *http.Request) {
	window, err := dateRangeFromQuery(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	donations, err := services.GetDonationsByDateRange(r.Context(), s.DB, models.DonationQuery{
		DateRangeInput: window,
		DonorID:        queryString(r, "donor_id"),
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, donations)
}

func (s *Server) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDonationInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	donation, err := services.CreateDonation(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventDonationCreated, ID: donation.ID})
	WriteJSON(w, http.StatusCreated, donation)
}
