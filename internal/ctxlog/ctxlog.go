// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// CommandKey is the attribute key holding the command path.
	CommandKey = "command"
	// CommandPathSeparator separates the identifiers in a command path.
	CommandPathSeparator = " > "
	logLevelEnvSuffix    = "_LOG_LEVEL"
)

type (
	loggerKey      struct{}
	commandPathKey struct{}
)

// LevelVar is the level shared by DefaultLogger and JSONLogger.
var LevelVar = &slog.LevelVar{}

// DefaultLogger writes pretty records to stderr, coloured when stderr is a terminal.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes JSON records to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// New returns a context carrying logger, or DefaultLogger if logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// WithCommand returns a context whose command path ends with identifier.
func WithCommand(ctx context.Context, identifier string) context.Context {
	path := slices.Concat(CommandPath(ctx), []string{identifier})
	return context.WithValue(ctx, commandPathKey{}, path)
}

// CommandPath returns the identifiers recorded by WithCommand, outermost first.
func CommandPath(ctx context.Context) []string {
	path, _ := ctx.Value(commandPathKey{}).([]string)
	return path
}

// CommandLogger returns the context logger with the command path attached.
func CommandLogger(ctx context.Context) *slog.Logger {
	logger := Logger(ctx)

	path := CommandPath(ctx)
	if len(path) == 0 {
		return logger
	}

	return logger.With(CommandKey, strings.Join(path, CommandPathSeparator))
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	CommandLogger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	CommandLogger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	CommandLogger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	CommandLogger(ctx).Error(msg, args...)
}

// LevelEnvVar returns the name of the variable that sets the log level for this executable.
func LevelEnvVar() string {
	exe, _ := os.Executable()
	exe = filepath.Base(exe)
	exe = strings.TrimSuffix(exe, ".exe")

	return strings.ToUpper(exe) + logLevelEnvSuffix
}

func logLevelFromEnv() slog.Level {
	return parseLevel(os.Getenv(LevelEnvVar()))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
