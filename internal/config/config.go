package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const EnvLocal = "local"

type Config struct {
	Env          string `env:"APP_ENV" env-default:"local"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"data/portfolio.db"`
	HTTPServer
	RateLimit RateLimit
	SMTP      SMTP
}

type HTTPServer struct {
	Port         string        `env:"PORT" env-default:"3000"`
	BaseURL      string        `env:"BASE_URL"`
	FrontendURL  string        `env:"FRONTEND_URL" env-default:"*"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type RateLimit struct {
	Requests int           `env:"RATE_LIMIT" env-default:"100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m"`
}

type SMTP struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" env-default:"587"`
	User       string `env:"EMAIL_USER"`
	Password   string `env:"EMAIL_PASS"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// Load reads .env files when present and then the process environment.
// Variables already set in the environment win over .env values.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if cfg.RateLimit.Requests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit.Requests)
	}
	if cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.Window < time.Duration(cfg.RateLimit.Requests) {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW %s is too short for RATE_LIMIT %d", cfg.RateLimit.Window, cfg.RateLimit.Requests)
	}
	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}
