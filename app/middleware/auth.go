package middleware

import (
	"context"
	"net/http"

	"scripthaven/app/httpx"
	"scripthaven/app/models"
	"scripthaven/app/services"
	"scripthaven/app/session"
)

type ctxKey int

const userKey ctxKey = 1

// Auth resolves the session cookie to a fresh principal on every request.
// Role and ban state are re-read from the database each time, so a downgrade
// or ban takes effect on the very next request.
type Auth struct {
	Sessions *session.Manager
	Users    *services.UserService
}

func (a *Auth) resolveUser(r *http.Request) *models.User {
	id, ok := a.Sessions.Resolve(r.Context(), r)
	if !ok {
		return nil
	}
	u, err := a.Users.GetByID(id)
	if err != nil || u.Banned {
		return nil
	}
	return u
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := a.resolveUser(r)
		if u == nil {
			httpx.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

// RequireRole chains the session check with a capability check: 401 without a
// valid session, 403 for a valid session whose role is insufficient.
func (a *Auth) RequireRole(required models.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := a.resolveUser(r)
		if u == nil {
			httpx.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !u.Role.HasCapability(required) {
			httpx.Error(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}
