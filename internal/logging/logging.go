// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the campusroute binaries and
// bridges it to logr for the library packages.
package logging

import (
	"errors"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadFormat indicates a log format other than json or console.
var ErrBadFormat = errors.New("logging: format must be json or console")

// ParseLevel maps debug|info|warn|error to a zap level. Unknown names fall
// back to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Config returns the zap configuration for format and level.
func Config(format, level string) (zap.Config, error) {
	var zc zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, ErrBadFormat
	}
	zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	// Logs go to stderr so command output on stdout stays clean.
	zc.OutputPaths = []string{"stderr"}

	return zc, nil
}

// New builds a zap logger for format (json|console) and level
// (debug|info|warn|error).
func New(format, level string) (*zap.Logger, error) {
	zc, err := Config(format, level)
	if err != nil {
		return nil, err
	}

	return zc.Build()
}

// Logr wraps l for packages that take a logr.Logger. zap debug maps to
// logr V(1).
func Logr(l *zap.Logger) logr.Logger {
	return zapr.NewLogger(l)
}
