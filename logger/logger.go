// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the process-wide zap logger of the headerinspect
// command, and a logr bridge for the HTTP middleware.
package logger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/headerinspect/env"
)

// StructuredLogsEnv switches process logs to JSON on stdout when set to true.
const StructuredLogsEnv = "HEADERINSPECT_STRUCTURED_LOGS"

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Sync flushes buffered log entries. Call it before the process exits.
func Sync() {
	_ = zap.L().Sync()
}

// NewLogr returns a logr.Logger backed by the singleton zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// DebugProvider reports whether debug logging is enabled.
type DebugProvider interface {
	IsDebug() bool
}

// DebugFlag is a DebugProvider backed by a command-line flag value.
type DebugFlag bool

// IsDebug implements DebugProvider.
func (d DebugFlag) IsDebug() bool {
	return bool(d)
}

// Initialize builds the singleton logger and installs it as the zap global.
//
// Logs are human-readable console output on stderr unless
// HEADERINSPECT_STRUCTURED_LOGS is true, in which case they are JSON on stdout.
func Initialize(envReader env.Reader, debug DebugProvider) error {
	l, err := buildConfig(envReader, debug).Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return nil
}

func buildConfig(envReader env.Reader, debug DebugProvider) zap.Config {
	var config zap.Config
	if structuredLogs(envReader) {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	}

	if debug != nil && debug.IsDebug() {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config
}

func structuredLogs(envReader env.Reader) bool {
	structured, err := strconv.ParseBool(envReader.Getenv(StructuredLogsEnv))
	if err != nil {
		// unset or not a bool
		return false
	}
	return structured
}
