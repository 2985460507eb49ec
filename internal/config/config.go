package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr           string        `env:"LISTEN_ADDR"`
	Port                 string        `env:"PORT" envDefault:"8080"`
	DataDir              string        `env:"DATA_DIR" envDefault:"data"`
	DatabasePath         string        `env:"DATABASE_PATH" envDefault:"data/folio.db"`
	SessionSecret        string        `env:"SESSION_SECRET" envDefault:"folio-dev-secret"`
	GinMode              string        `env:"GIN_MODE" envDefault:"release"`
	UploadDir            string        `env:"UPLOAD_DIR" envDefault:"data/uploads"`
	UploadURLPath        string        `env:"UPLOAD_URL_PATH" envDefault:"/uploads"`
	AdminUserName        string        `env:"ADMIN_USER_NAME"`
	AdminPassword        string        `env:"ADMIN_PASSWORD"`
	AdminTokenTTL        time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"168h"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	ContactDelay         time.Duration `env:"CONTACT_DELAY" envDefault:"1s"`
	ContactRatePerMinute int           `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	LoginRatePerMinute   int           `env:"LOGIN_RATE_PER_MINUTE" envDefault:"10"`
	HomeProjectsPerPage  int           `env:"HOME_PROJECTS_PER_PAGE" envDefault:"6"`
}

// Load 读取 .env（可选）与环境变量，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	// .env 文件不存在时忽略
	_ = godotenv.Load()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *AppConfig) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "8080"
	}

	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}

	c.DataDir = strings.TrimSpace(c.DataDir)
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	c.DatabasePath = strings.TrimSpace(c.DatabasePath)
	c.SessionSecret = strings.TrimSpace(c.SessionSecret)
	c.GinMode = strings.TrimSpace(c.GinMode)
	c.UploadDir = strings.TrimSpace(c.UploadDir)
	c.AdminUserName = strings.TrimSpace(c.AdminUserName)
	c.AdminPassword = strings.TrimSpace(c.AdminPassword)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	c.UploadURLPath = "/" + strings.Trim(strings.TrimSpace(c.UploadURLPath), "/")
	if c.UploadURLPath == "/" {
		c.UploadURLPath = "/uploads"
	}

	if c.HomeProjectsPerPage <= 0 {
		c.HomeProjectsPerPage = 6
	}
	if c.ContactDelay < 0 {
		c.ContactDelay = 0
	}
}
