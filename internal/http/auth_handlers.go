package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

type RegisterRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	services.TokenPair
	User UserDTO `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register creates a donatur account. Staff accounts are created by an admin.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if req.ConfirmPassword != nil && req.Password != *req.ConfirmPassword {
		s.writeServiceError(w, r, models.NewValidationError("confirm_password", "eqfield", "does not match password"))
		return
	}
	user, err := services.CreateUser(r.Context(), s.DB, s.Tokens, models.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     models.RoleDonatur,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.Log.WithComponent(logging.ComponentAuth).InfoContext(r.Context(), "account registered", logging.FieldUserID, user.ID)
	WriteJSON(w, http.StatusCreated, toUserDTO(user))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	user, err := services.Authenticate(r.Context(), s.DB, s.Tokens, req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeTokens(w, r, user)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	claims, err := s.Tokens.ParseToken(req.RefreshToken, services.TokenTypeRefresh)
	if err != nil || claims.Subject == "" {
		WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
		return
	}
	user, err := services.GetUser(r.Context(), s.DB, claims.Subject)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
		return
	}
	if !user.IsActive {
		WriteError(w, http.StatusForbidden, CodeForbidden, "account is disabled")
		return
	}
	s.writeTokens(w, r, user)
}

func (s *Server) writeTokens(w http.ResponseWriter, r *http.Request, user models.User) {
	pair, err := s.Tokens.IssuePair(user)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{TokenPair: pair, User: toUserDTO(user)})
}
