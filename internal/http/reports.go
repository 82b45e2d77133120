package httpapi

import (
	"net/http"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

func (s *Server) FinancialReport(w http.ResponseWriter, r *http.Request) {
	window, err := dateRangeFromQuery(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	report, err := services.GetFinancialReport(r.Context(), s.DB, window)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, report)
}

func (s *Server) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := services.GetDashboardSummary(r.Context(), s.DB, time.Now())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
