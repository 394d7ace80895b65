package app

import (
	"log"

	"unitconv/internal/display"
	"unitconv/internal/domain"
	"unitconv/internal/session"
)

// App bundles the stores, services and clients used by the CLI.
type App struct {
	Home      string
	Keys      domain.KeyStore
	Rates     domain.RateLookup // nil when no API key is available
	Converter domain.Converter
	Reporter  domain.ErrorReporter
	Printer   *display.Printer
	EditMode  session.EditMode
}

// NewSession starts a fresh conversion session.
func (a *App) NewSession(opts ...session.Option) *session.Controller {
	return session.New(a.Converter, append([]session.Option{session.WithEditMode(a.EditMode)}, opts...)...)
}

// LogReporter shows recoverable failures on a log.Logger.
type LogReporter struct {
	Logger *log.Logger
}

// ReportError logs message and err on one line.
func (r LogReporter) ReportError(message string, err error) {
	if err == nil {
		r.Logger.Print(message)
		return
	}
	r.Logger.Printf("%s: %v", message, err)
}

// Compile-time assertion that LogReporter implements domain.ErrorReporter.
var _ domain.ErrorReporter = LogReporter{}
