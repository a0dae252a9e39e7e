// Package logger constructs the zap loggers used across filepress.
package logger

import "go.uber.org/zap"

// New returns a sugared production logger tagged with the service name.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.DisableStacktrace = true

	log, err := config.Build()
	if err != nil {
		panic(err)
	}

	return log.Sugar().Named(service)
}

// NewNop returns a logger that discards everything, for callers that do
// not want output.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
