package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type Session struct {
	CookieName string
	TTL        time.Duration
}

type Admin struct {
	Username string
	Password string
}

type Config struct {
	HTTP     HTTP
	DB       DB
	Redis    Redis
	Session  Session
	Admin    Admin
	Download struct {
		Secret string
		TTL    time.Duration
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 9300)
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "scripthaven")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.pass", "")
	v.SetDefault("server.redis.db", 0)
	v.SetDefault("server.session.cookie_name", "sid")
	v.SetDefault("server.session.ttl_hours", 168) // one week
	v.SetDefault("server.download.ttl_minutes", 5)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Host: v.GetString("server.db.host"),
			Port: v.GetInt("server.db.port"),
			User: v.GetString("server.db.user"),
			Pass: v.GetString("server.db.pass"),
			Name: v.GetString("server.db.name"),
		},
		Redis: Redis{
			Addr: v.GetString("server.redis.addr"),
			Pass: v.GetString("server.redis.pass"),
			DB:   v.GetInt("server.redis.db"),
		},
		Session: Session{
			CookieName: v.GetString("server.session.cookie_name"),
			TTL:        time.Duration(v.GetInt("server.session.ttl_hours")) * time.Hour,
		},
		Admin: Admin{
			Username: v.GetString("server.admin.username"),
			Password: v.GetString("server.admin.password"),
		},
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 168 * time.Hour
	}
	cfg.Download.Secret = v.GetString("server.download.secret")
	if cfg.Download.Secret == "" {
		cfg.Download.Secret = "dev-secret"
	}
	cfg.Download.TTL = time.Duration(v.GetInt("server.download.ttl_minutes")) * time.Minute
	if cfg.Download.TTL <= 0 {
		cfg.Download.TTL = 5 * time.Minute
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
	}
	return cfg, nil
}
