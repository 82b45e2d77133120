package httpapi

import (
	"net/http"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/gorilla/websocket"
)

func (s *Server) SystemStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, services.CaptureSystemStats(r.Context(), s.Config.MediaStoragePath))
}

// DashboardSocket streams change events to staff. Browsers cannot set headers on
// websocket requests, so the access token comes in the query string.
func (s *Server) DashboardSocket(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("token")
	if query == "" {
		WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
		return
	}
	claims, err := s.Tokens.ParseToken(query, services.TokenTypeAccess)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
		return
	}
	if claims.Role != models.RoleAdmin && claims.Role != models.RolePengurus {
		WriteError(w, http.StatusForbidden, CodeForbidden, "Not allowed")
		return
	}
	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	log := s.Log.WithComponent(logging.ComponentDashboard)
	log.Debug("dashboard client joined", logging.FieldUserID, claims.Subject)
	s.Hub.Add(conn)
	defer func() {
		s.Hub.Remove(conn)
		_ = conn.Close()
		log.Debug("dashboard client left", logging.FieldUserID, claims.Subject)
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// checkOrigin accepts any origin unless CORS origins are configured.
func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.Config.CorsOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.Config.CorsOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
