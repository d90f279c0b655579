// Package config loads pongadmin settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PONGADMIN_PORT" envDefault:"9000"`
	BackendURL     string        `env:"PONGADMIN_BACKEND_URL" envDefault:"http://localhost:8000"`
	DB             string        `env:"PONGADMIN_DB" envDefault:"pongadmin"`
	RequestTimeout time.Duration `env:"PONGADMIN_REQUEST_TIMEOUT" envDefault:"10s"`
	// WhoamiPath is called during token validation when the token carries no subject.
	WhoamiPath    string `env:"PONGADMIN_WHOAMI_PATH"`
	DefaultLang   string `env:"PONGADMIN_LANG" envDefault:"ko"`
	SecureCookies bool   `env:"PONGADMIN_SECURE_COOKIES" envDefault:"false"`
	LogLevel      string `env:"PONGADMIN_LOG_LEVEL" envDefault:"debug"`
	OtelEndpoint  string `env:"PONGADMIN_OTEL_ENDPOINT"`
}

// Load reads the given env files (".env" when none are given) and parses the
// environment into a Config. Missing env files are not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", f, err)
		}
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	if cfg.BackendURL == "" {
		return Config{}, errors.New("PONGADMIN_BACKEND_URL must not be empty")
	}
	if cfg.Port == "" {
		return Config{}, errors.New("PONGADMIN_PORT must not be empty")
	}
	return cfg, nil
}
