package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"heystupid/pkg/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "heystupid.log"
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Discard installs a default logger that drops everything. It is used
// until the config file has been read.
func Discard() *slog.Logger {
	logger := slog.New(slog.DiscardHandler)
	slog.SetDefault(logger)
	return logger
}

// Init configures slog to write structured logs to a rotating file.
// Logs never go to stdout, which carries the reply.
func Init(cfg config.Settings) (*slog.Logger, io.Closer, error) {
	if isOff(cfg.LogLevel) {
		return Discard(), nopCloser{}, nil
	}

	handlerOptions := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return Discard(), nopCloser{}, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(cfg.LogFormat, writer, handlerOptions))
	slog.SetDefault(logger)
	return logger, writer, nil
}

// DefaultLogPath returns ~/.heystupid/logs/heystupid.log.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".heystupid", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".heystupid", "logs", defaultLogFile)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func isOff(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none", "disabled":
		return true
	}
	return false
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
