package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	window, err := dateRangeFromQuery(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	q := models.ExpenseQuery{DateRangeInput: window}
	if raw := queryString(r, "category"); raw != nil {
		category := models.ExpenseCategory(*raw)
		q.Category = &category
	}
	expenses, err := services.GetExpensesByDateRange(r.Context(), s.DB, q)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, expenses)
}

// CreateExpense records the expense as created by the caller unless the body
// names another user.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = CurrentUserID(r)
	}
	expense, err := services.CreateExpense(r.Context(), s.DB, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Hub.Broadcast(services.DashboardEvent{Type: services.EventExpenseCreated, ID: expense.ID})
	WriteJSON(w, http.StatusCreated, expense)
}
