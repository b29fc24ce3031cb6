package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueAndExtract(t *testing.T, m *Manager, userID uint) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(context.Background(), rec, userID))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestIssueSetsCookieContract(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", 7*24*time.Hour)
	c := issueAndExtract(t, m, 1)

	assert.Equal(t, "sid", c.Name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, int(7*24*time.Hour/time.Second), c.MaxAge)
}

func TestResolveRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", time.Hour)
	c := issueAndExtract(t, m, 99)

	r := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.AddCookie(c)
	id, ok := m.Resolve(context.Background(), r)
	require.True(t, ok)
	assert.Equal(t, uint(99), id)
}

func TestResolveWithoutCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", time.Hour)
	r := httptest.NewRequest(http.MethodGet, "/user", nil)
	_, ok := m.Resolve(context.Background(), r)
	assert.False(t, ok)
}

func TestResolveUnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", time.Hour)
	r := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: "forged"})
	_, ok := m.Resolve(context.Background(), r)
	assert.False(t, ok)
}

func TestClearDestroysSessionAndIsIdempotent(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", time.Hour)
	c := issueAndExtract(t, m, 5)
	ctx := context.Background()

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(c)
	require.NoError(t, m.Clear(ctx, httptest.NewRecorder(), r))

	// The token no longer resolves.
	r2 := httptest.NewRequest(http.MethodGet, "/user", nil)
	r2.AddCookie(c)
	_, ok := m.Resolve(ctx, r2)
	assert.False(t, ok)

	// Clearing again with the dead cookie, or with none, still succeeds.
	r3 := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r3.AddCookie(c)
	require.NoError(t, m.Clear(ctx, httptest.NewRecorder(), r3))
	require.NoError(t, m.Clear(ctx, httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/logout", nil)))
}

func TestClearExpiresCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(), "sid", time.Hour)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Clear(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/logout", nil)))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}
