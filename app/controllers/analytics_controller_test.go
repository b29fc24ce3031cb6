package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"scripthaven/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummary(t *testing.T) {
	app := newTestApp(t)
	admin := seedAdmin(t, app)

	owner, _ := registerAndLogin(t, app, "alice")
	sc := seedScript(t, app, owner, "Popular")
	_, err := app.Scripts.Get(sc.ID) // one view
	require.NoError(t, err)
	require.NoError(t, app.Scripts.Favorite(owner.ID, sc.ID))

	rec := app.do(t, http.MethodGet, "/admin/analytics/summary", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary dto.AnalyticsSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, int64(2), summary.Users, "root + alice")
	assert.Equal(t, int64(1), summary.Scripts)
	assert.Equal(t, int64(1), summary.Favorites)
	require.Len(t, summary.TopScripts, 1)
	assert.Equal(t, "Popular", summary.TopScripts[0].Title)
	assert.NotEmpty(t, summary.SignupsPerDay)
}

func TestAnalyticsRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	_, cookie := registerAndLogin(t, app, "alice")
	rec := app.do(t, http.MethodGet, "/admin/analytics/summary", nil, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
