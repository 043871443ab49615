package middleware

import (
	"context"
	"net/http"

	"github.com/roombooker/booking-service/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID carries the id of the authenticated user. Authentication
// itself is done upstream; this service only needs the identity.
const HeaderUserID = "X-User-ID"

// Auth requires the X-User-ID header and stores its value in the request
// context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id stored by Auth, or "" when the
// request did not pass through it.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
