package middleware

import (
	"net/http"
	"strings"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/handlers"
	"github.com/Bessima/token-shipping/internal/models"
)

func AuthMiddleware(authHandler *handlers.AuthHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenString string

			cookie, err := r.Cookie("access_token")
			if err == nil {
				tokenString = cookie.Value
			} else {
				authHeader := r.Header.Get("Authorization")
				if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
					tokenString = strings.TrimPrefix(authHeader, "Bearer ")
				}
			}

			if tokenString == "" {
				http.Error(w, "Authorization token required", http.StatusUnauthorized)
				return
			}

			session, err := authHandler.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithSession(r.Context(), session)))
		})
	}
}

// RequireRole lets the request through only when the session role passes allowed.
// It must run after AuthMiddleware.
func RequireRole(allowed func(models.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := handlers.GetSessionFromContext(r.Context())
			if !session.Authenticated {
				http.Error(w, "Authorization token required", http.StatusUnauthorized)
				return
			}
			if !allowed(session.Role) {
				forbidden := customerror.NewForbiddenError("action is not available for " + string(session.Role))
				http.Error(w, forbidden.Error(), forbidden.GetHTTPCode())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
