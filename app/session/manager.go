package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager binds verified users to cookie-carried sessions. The cookie holds
// only the opaque token; the store maps token -> user ID.
type Manager struct {
	store      Store
	cookieName string
	ttl        time.Duration
}

func NewManager(store Store, cookieName string, ttl time.Duration) *Manager {
	if cookieName == "" {
		cookieName = "sid"
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{store: store, cookieName: cookieName, ttl: ttl}
}

// Issue creates a session for the user and sets the cookie on the response.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, userID uint) error {
	token := uuid.NewString()
	if err := m.store.Set(ctx, token, userID, m.ttl); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl / time.Second),
	})
	return nil
}

// Resolve maps the request's session cookie to a user ID. A missing cookie,
// unknown token or expired session all come back as (0, false).
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (uint, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	id, err := m.store.Get(ctx, c.Value)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Clear destroys the session record (if any) and expires the cookie. Clearing
// when no valid session exists is a no-op, so logout is idempotent.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	if err := m.store.Destroy(ctx, c.Value); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
