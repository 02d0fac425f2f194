package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// logFilePath determines the application log file location per the XDG spec.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "chordfetch", "app.log"), nil
}

// Init configures the default logger. While the TUI owns the terminal, logs
// go to a file only; in CLI mode they also go to stderr.
// It must be called once, before anything logs.
func Init(isTUI bool) {
	var writers []io.Writer

	path, err := logFilePath()
	if err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err == nil {
			if file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
				writers = append(writers, file)
			}
		}
	}
	if !isTUI {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		// File logging failed and stderr belongs to the TUI.
		writers = append(writers, io.Discard)
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = io.MultiWriter(writers...)
	}
	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// checkLogger guards against use before Init.
func checkLogger() {
	if defaultLogger == nil {
		Init(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
