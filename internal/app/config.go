package app

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"unitconv/internal/telemetry"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string        `env:"UNITCONV_HOME"`             // config directory, default $HOME/.unitconv
	ExchangeAPIKey  string        `env:"UNITCONV_EXCHANGE_API_KEY"` // overrides the stored key
	ExchangeURL     string        `env:"UNITCONV_EXCHANGE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	ExchangeTimeout time.Duration `env:"UNITCONV_EXCHANGE_TIMEOUT" envDefault:"5s"`
	Locale          string        `env:"UNITCONV_LOCALE" envDefault:"en-US"`
	EditMode        string        `env:"UNITCONV_EDIT_MODE" envDefault:"inverse"`
	Passphrase      string        `env:"UNITCONV_PASSPHRASE"` // unlocks the stored key
	Telemetry       telemetry.Config

	HTTP   *http.Client `env:"-"` // optional; defaults to a client with ExchangeTimeout
	ErrOut io.Writer    `env:"-"` // error-display channel; defaults to os.Stderr
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveHome returns cfg.Home or $HOME/.unitconv.
func (c Config) ResolveHome() (string, error) {
	if c.Home != "" {
		return c.Home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".unitconv"), nil
}
