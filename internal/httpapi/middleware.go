package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"quiz-platform/internal/identity"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// requireToken verifies the session token on every route except registration,
// login and the health check, and stores the verified claims on the request
// context. The server never trusts a client-supplied user id or role.
func (a *API) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/healthz", "/api/register", "/api/login":
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := a.tokens.Verify(tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFrom(r *http.Request) *identity.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*identity.Claims)
	return claims
}

// requireAdmin writes a 403 and returns false unless the caller's token
// carries the admin role.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims := claimsFrom(r)
	if claims == nil || claims.Role != identity.RoleAdmin {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin role required"})
		return false
	}
	return true
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, recorder.statusCode, time.Since(start))
	})
}
