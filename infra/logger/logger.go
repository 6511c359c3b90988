package logger

import corelogger "github.com/routesim/vrptw/core/logger"

// Logger re-exports the core logging interface so adapters and callers
// share one import.
type Logger = corelogger.Logger

// NopLogger drops every record. The episode runner falls back to it when a
// caller passes no logger, keeping rollouts silent by default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns the default logger for the given component: zerolog-backed,
// stderr, format chosen by APP_ENV.
func New(component string) Logger {
	return NewZerologLogger(component)
}
