package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"unitconv/internal/convert"
	"unitconv/internal/display"
	"unitconv/internal/domain"
	"unitconv/internal/rates"
	"unitconv/internal/session"
	"unitconv/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	home, err := cfg.ResolveHome()
	if err != nil {
		return nil, err
	}
	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	reporter := LogReporter{Logger: log.New(errOut, "[unitconv] ", 0)}

	mode, err := session.ParseEditMode(cfg.EditMode)
	if err != nil {
		return nil, err
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en-US"
	}
	printer, err := display.New(locale)
	if err != nil {
		return nil, err
	}

	keys := store.NewKeyFileStore(home)
	apiKey, err := resolveAPIKey(cfg, keys)
	if err != nil {
		return nil, err
	}

	// Rate client only when a key is available; without one, currency
	// conversions degrade to identity through the dispatcher.
	var lookup domain.RateLookup
	if apiKey != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			timeout := cfg.ExchangeTimeout
			if timeout <= 0 {
				timeout = rates.DefaultTimeout
			}
			httpClient = &http.Client{Timeout: timeout}
		}
		lookup = rates.NewHTTP(cfg.ExchangeURL, apiKey, httpClient)
	}

	return &App{
		Home:      home,
		Keys:      keys,
		Rates:     lookup,
		Converter: convert.New(lookup, reporter),
		Reporter:  reporter,
		Printer:   printer,
		EditMode:  mode,
	}, nil
}

// resolveAPIKey prefers an explicit key, then the keystore when a passphrase
// is given. A missing stored key is not an error.
func resolveAPIKey(cfg Config, keys domain.KeyStore) (string, error) {
	if cfg.ExchangeAPIKey != "" {
		return cfg.ExchangeAPIKey, nil
	}
	if cfg.Passphrase == "" {
		return "", nil
	}
	key, err := keys.LoadAPIKey(cfg.Passphrase)
	if errors.Is(err, store.ErrNoAPIKey) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("unlock exchange API key: %w", err)
	}
	return key, nil
}
