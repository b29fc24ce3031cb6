package router

import (
	"net/http"

	"scripthaven/app/controllers"
	"scripthaven/app/middleware"
	"scripthaven/app/models"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Admin     *controllers.AdminController
	Scripts   *controllers.ScriptController
	Ads       *controllers.AdController
	Affiliate *controllers.AffiliateController
	Analytics *controllers.AnalyticsController
}

func New(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// accounts
	mux.HandleFunc("/register", c.Auth.Register)
	mux.HandleFunc("/login", c.Auth.Login)
	mux.HandleFunc("/logout", c.Auth.Logout)
	mux.Handle("/user", mw.RequireAuth(http.HandlerFunc(c.Auth.CurrentUser)))
	mux.Handle("/profile", mw.RequireAuth(http.HandlerFunc(c.Auth.UpdateProfile)))
	mux.Handle("/change-password", mw.RequireAuth(http.HandlerFunc(c.Auth.ChangePassword)))

	// scripts
	mux.HandleFunc("/scripts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			c.Scripts.List(w, r)
		case http.MethodPost:
			mw.RequireAuth(http.HandlerFunc(c.Scripts.Create)).ServeHTTP(w, r)
		case http.MethodPut:
			mw.RequireAuth(http.HandlerFunc(c.Scripts.Update)).ServeHTTP(w, r)
		case http.MethodDelete:
			mw.RequireAuth(http.HandlerFunc(c.Scripts.Delete)).ServeHTTP(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/scripts/get", c.Scripts.Get)
	mux.HandleFunc("/scripts/raw", c.Scripts.Raw)
	mux.Handle("/scripts/favorite", mw.RequireAuth(http.HandlerFunc(c.Scripts.Favorite)))
	mux.Handle("/scripts/download-token", mw.RequireAuth(http.HandlerFunc(c.Scripts.DownloadToken)))
	mux.Handle("/favorites", mw.RequireAuth(http.HandlerFunc(c.Scripts.Favorites)))

	// affiliates
	mux.Handle("/affiliates", mw.RequireAuth(http.HandlerFunc(c.Affiliate.Own)))
	mux.HandleFunc("/a", c.Affiliate.Follow)

	// ads (public side)
	mux.HandleFunc("/ads/serve", c.Ads.Serve)
	mux.HandleFunc("/ads/click", c.Ads.Click)

	// admin
	mux.Handle("/admin/create-user", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Admin.CreateUser)))
	mux.Handle("/admin/users", mw.RequireRole(models.RoleModerator, http.HandlerFunc(c.Admin.ListUsers)))
	mux.Handle("/admin/users/role", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Admin.SetRole)))
	mux.Handle("/admin/users/ban", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Admin.SetBan)))
	mux.Handle("/admin/campaigns", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Ads.Campaigns)))
	mux.Handle("/admin/banners", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Ads.Banners)))
	mux.Handle("/admin/affiliates", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Affiliate.ListAll)))
	mux.Handle("/admin/analytics/summary", mw.RequireRole(models.RoleAdmin, http.HandlerFunc(c.Analytics.Summary)))

	return mux
}
