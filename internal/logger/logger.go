// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-edu-resources client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain call-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger writing JSON to w.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. Entries below level are
// dropped.
func NewLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs a *Logger appending to the file at path. The
// client draws on the terminal, so logs never go to stdout. The parent
// directory is created when missing; if the file cannot be opened the
// logger falls back to stderr and the open error is returned alongside it.
//
// The returned close function releases the file and is safe to call when
// the fallback was used.
func NewClientLogger(role, path string, level zerolog.Level) (*Logger, func() error, error) {
	noop := func() error { return nil }

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return NewLogger(role, os.Stderr, level), noop, fmt.Errorf("error creating log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return NewLogger(role, os.Stderr, level), noop, fmt.Errorf("error opening log file: %w", err)
	}

	return NewLogger(role, file, level), file.Close, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx so FromContext can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
