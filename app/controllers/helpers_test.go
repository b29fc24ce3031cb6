package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"scripthaven/app/controllers"
	jwtutil "scripthaven/app/jwt"
	"scripthaven/app/middleware"
	"scripthaven/app/models"
	"scripthaven/app/repo"
	"scripthaven/app/services"
	"scripthaven/app/session"
	"scripthaven/global"
	"scripthaven/router"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	global.Logger = zerolog.Nop()
}

type testApp struct {
	Handler  http.Handler
	Users    *services.UserService
	Scripts  *services.ScriptService
	Ads      *services.AdService
	Links    *services.AffiliateService
	Sessions *session.Manager
	DB       *gorm.DB
}

// newTestApp wires the real router over sqlite and the in-memory session
// store, mirroring initialize.Build.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Script{},
		&models.Favorite{},
		&models.AdCampaign{},
		&models.AdBanner{},
		&models.AffiliateLink{},
		&models.AffiliateClick{},
	))

	sessions := session.NewManager(session.NewMemoryStore(), "sid", 7*24*time.Hour)

	userRepo := repo.NewUserRepository(gdb)
	scriptRepo := repo.NewScriptRepository(gdb)
	adRepo := repo.NewAdRepository(gdb)
	affiliateRepo := repo.NewAffiliateRepository(gdb)

	userSvc := services.NewUserService(userRepo)
	scriptSvc := services.NewScriptService(scriptRepo)
	adSvc := services.NewAdService(adRepo)
	affiliateSvc := services.NewAffiliateService(affiliateRepo)
	analyticsSvc := services.NewAnalyticsService(userSvc, scriptRepo, adRepo, affiliateRepo)

	signer := &jwtutil.Signer{Secret: []byte("test-secret"), TTL: 5 * time.Minute}
	mw := &middleware.Auth{Sessions: sessions, Users: userSvc}

	h := router.New(router.Controllers{
		Auth:      controllers.NewAuthController(userSvc, sessions),
		Admin:     controllers.NewAdminController(userSvc),
		Scripts:   controllers.NewScriptController(scriptSvc, signer),
		Ads:       controllers.NewAdController(adSvc),
		Affiliate: controllers.NewAffiliateController(affiliateSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
	}, mw)

	return &testApp{
		Handler:  h,
		Users:    userSvc,
		Scripts:  scriptSvc,
		Ads:      adSvc,
		Links:    affiliateSvc,
		Sessions: sessions,
		DB:       gdb,
	}
}

func (a *testApp) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, r)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// login is a shortcut for tests that need an authenticated cookie.
func (a *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/login", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) *models.User {
	t.Helper()
	var resp struct {
		User *models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.User)
	return resp.User
}
