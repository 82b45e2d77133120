package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"
)

type contextKey string

const (
	ctxUserID   contextKey = "userID"
	ctxUsername contextKey = "username"
	ctxRole     contextKey = "role"
)

func WithAuth(tokenService services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			claims, err := tokenService.ParseToken(tokenStr, services.TokenTypeAccess)
			if err != nil || claims.Subject == "" {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "Authentication failed")
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserID, claims.Subject)
			ctx = context.WithValue(ctx, ctxUsername, claims.Username)
			ctx = context.WithValue(ctx, ctxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CurrentUserID(r *http.Request) string {
	if value, ok := r.Context().Value(ctxUserID).(string); ok {
		return value
	}
	return ""
}

func CurrentRole(r *http.Request) models.Role {
	if value, ok := r.Context().Value(ctxRole).(models.Role); ok {
		return value
	}
	return ""
}

func RequireAnyRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := map[models.Role]bool{}
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowed[CurrentRole(r)] {
				next.ServeHTTP(w, r)
				return
			}
			WriteError(w, http.StatusForbidden, CodeForbidden, "Not allowed")
		})
	}
}
