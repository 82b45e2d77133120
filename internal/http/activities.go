package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	window, err := dateRangeFromQuery(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	q := models.ActivityQuery{DateRangeInput: window}
	if raw := queryString(r, "type"); raw != nil {
		kind := models.ActivityType(*raw)
		q.Type = &kind
	}
	activities, err := services.GetActivitiesByDateRange(r.Context(), s.DB, q)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, activities)
}

func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = CurrentUserID(r)
	}
	activity, err := services.CreateActivity(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventActivityCreated, ID: activity.ID})
	WriteJSON(w, http.StatusCreated, activity)
}

func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateActivityInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	req.ID = chi.URLParam(r, "id")
	activity, err := services.UpdateActivity(r.Context(), s.DB, s.Policy, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventActivityUpdated, ID: activity.ID})
	WriteJSON(w, http.StatusOK, activity)
}
