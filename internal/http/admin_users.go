package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

type PagedResponse struct {
	Items    []UserDTO `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := services.UserListQuery{
		Page:     parseInt(r.URL.Query().Get("page"), 1),
		PageSize: parseInt(r.URL.Query().Get("page_size"), 20),
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	users, total, err := services.ListUsers(r.Context(), s.DB, q)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, PagedResponse{Items: toUserDTOs(users), Total: total, Page: q.Page, PageSize: q.PageSize})
}

// CreateUser lets an admin create an account with any role.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserInput
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	user, err := services.CreateUser(r.Context(), s.DB, s.Tokens, req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, toUserDTO(user))
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
