package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, err := services.GetUser(r.Context(), s.DB, CurrentUserID(r))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]UserDTO{"user": toUserDTO(user)})
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		s.writeServiceError(w, r, models.NewValidationError("confirm_password", "eqfield", "does not match new_password"))
		return
	}
	if err := services.ChangePassword(r.Context(), s.DB, s.Tokens, CurrentUserID(r), req.CurrentPassword, req.NewPassword); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
