package initialize

import (
	"fmt"
	"net/http"

	"scripthaven/app/controllers"
	"scripthaven/app/db"
	jwtutil "scripthaven/app/jwt"
	"scripthaven/app/middleware"
	"scripthaven/app/models"
	"scripthaven/app/repo"
	"scripthaven/app/services"
	"scripthaven/app/session"
	"scripthaven/config"
	"scripthaven/global"
	"scripthaven/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Users    *services.UserService
	Scripts  *services.ScriptService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Script{},
		&models.Favorite{},
		&models.AdCampaign{},
		&models.AdBanner{},
		&models.AffiliateLink{},
		&models.AffiliateClick{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Session store: redis when configured, in-process otherwise. The memory
	// store does not survive restarts and cannot be shared across instances.
	var store session.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
		global.Rdb = rdb
		store = session.NewRedisStore(rdb)
	} else {
		global.Logger.Warn().Msg("no redis configured, using in-memory session store")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.Session.CookieName, cfg.Session.TTL)

	userRepo := repo.NewUserRepository(gdb)
	scriptRepo := repo.NewScriptRepository(gdb)
	adRepo := repo.NewAdRepository(gdb)
	affiliateRepo := repo.NewAffiliateRepository(gdb)

	userSvc := services.NewUserService(userRepo)
	scriptSvc := services.NewScriptService(scriptRepo)
	adSvc := services.NewAdService(adRepo)
	affiliateSvc := services.NewAffiliateService(affiliateRepo)
	analyticsSvc := services.NewAnalyticsService(userSvc, scriptRepo, adRepo, affiliateRepo)

	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("ensure admin")
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.Download.Secret), TTL: cfg.Download.TTL}
	mw := &middleware.Auth{Sessions: sessions, Users: userSvc}

	h := router.New(router.Controllers{
		Auth:      controllers.NewAuthController(userSvc, sessions),
		Admin:     controllers.NewAdminController(userSvc),
		Scripts:   controllers.NewScriptController(scriptSvc, signer),
		Ads:       controllers.NewAdController(adSvc),
		Affiliate: controllers.NewAffiliateController(affiliateSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
	}, mw)
	h = middleware.Logging(h)

	return &App{Cfg: *cfg, DB: gdb, Router: h, Sessions: sessions, Users: userSvc, Scripts: scriptSvc}, nil
}
