// Package logging constructs the zap loggers used by Tabula's data sources
// and pipeline runner. The relational operations themselves are pure and do
// not log.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production-configured logger at the given level
func New(level zapcore.Level) (*zap.Logger, error) {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(level)
	return conf.Build()
}

// Nop returns a logger which discards everything. Components which accept
// an optional logger fall back to this.
func Nop() *zap.Logger {
	return zap.NewNop()
}
