package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"scripthaven/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCampaignWithBanner(t *testing.T, app *testApp, active bool, startsAt, endsAt time.Time) *models.AdBanner {
	t.Helper()
	c, err := app.Ads.CreateCampaign("summer", active, startsAt, endsAt)
	require.NoError(t, err)
	b, err := app.Ads.CreateBanner(c.ID, "sidebar", "https://cdn.example/banner.png", "https://example.com")
	require.NoError(t, err)
	return b
}

func TestCampaignCRUDRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	_, cookie := registerAndLogin(t, app, "alice")

	rec := app.do(t, http.MethodGet, "/admin/campaigns", nil, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(t, http.MethodGet, "/admin/campaigns", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCampaignLifecycle(t *testing.T) {
	app := newTestApp(t)
	admin := seedAdmin(t, app)

	now := time.Now()
	rec := app.do(t, http.MethodPost, "/admin/campaigns", map[string]any{
		"name": "launch", "active": true,
		"startsAt": now.Add(-time.Hour), "endsAt": now.Add(time.Hour),
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var c models.AdCampaign
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))

	rec = app.do(t, http.MethodPost, "/admin/banners", map[string]any{
		"campaignId": c.ID, "placement": "header",
		"imageUrl": "https://cdn.example/x.png", "targetUrl": "https://example.com",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(t, http.MethodGet, "/admin/campaigns", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var cs []models.AdCampaign
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cs))
	require.Len(t, cs, 1)
	assert.Len(t, cs[0].Banners, 1)

	rec = app.do(t, http.MethodDelete, fmt.Sprintf("/admin/campaigns?id=%d", c.ID), nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCampaignValidation(t *testing.T) {
	app := newTestApp(t)
	admin := seedAdmin(t, app)
	now := time.Now()

	rec := app.do(t, http.MethodPost, "/admin/campaigns", map[string]any{
		"name": "", "active": true, "startsAt": now, "endsAt": now.Add(time.Hour),
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/admin/campaigns", map[string]any{
		"name": "backwards", "active": true, "startsAt": now, "endsAt": now.Add(-time.Hour),
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeAdCountsImpression(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	b := seedCampaignWithBanner(t, app, true, now.Add(-time.Hour), now.Add(time.Hour))

	rec := app.do(t, http.MethodGet, "/ads/serve?placement=sidebar", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		BannerID uint `json:"bannerId"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, b.ID, resp.BannerID)

	var got models.AdBanner
	require.NoError(t, app.DB.First(&got, b.ID).Error)
	assert.Equal(t, int64(1), got.Impressions)
}

func TestServeAdOutsideWindow(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	seedCampaignWithBanner(t, app, true, now.Add(-2*time.Hour), now.Add(-time.Hour))

	rec := app.do(t, http.MethodGet, "/ads/serve?placement=sidebar", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeAdInactiveCampaign(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	seedCampaignWithBanner(t, app, false, now.Add(-time.Hour), now.Add(time.Hour))

	rec := app.do(t, http.MethodGet, "/ads/serve?placement=sidebar", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdClick(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	b := seedCampaignWithBanner(t, app, true, now.Add(-time.Hour), now.Add(time.Hour))

	rec := app.do(t, http.MethodPost, fmt.Sprintf("/ads/click?id=%d", b.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		TargetURL string `json:"targetUrl"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "https://example.com", resp.TargetURL)

	var got models.AdBanner
	require.NoError(t, app.DB.First(&got, b.ID).Error)
	assert.Equal(t, int64(1), got.Clicks)
}
