// Package logger is a thin printf-style facade over logrus shared by all
// binaries. Messages conventionally start with a "[Tag]" identifying the
// emitting component.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var std = logrus.New()

func init() {
	std.SetOutput(os.Stderr)
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
}

// InitLog switches logging to the given file path in addition to stderr.
// The directory is created if needed.
func InitLog(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	std.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}

// FlushLog is a no-op hook kept for symmetry with InitLog; logrus writes
// synchronously.
func FlushLog() {}

// SetLevel sets the logging level by name ("debug", "info", "warn", "error").
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	std.SetLevel(lvl)
}

// SetOutput redirects all log output (used by tests).
func SetOutput(w io.Writer) { std.SetOutput(w) }

func Debug(format string, args ...interface{}) { std.Debugf(format, args...) }
func Info(format string, args ...interface{})  { std.Infof(format, args...) }
func Warn(format string, args ...interface{})  { std.Warnf(format, args...) }
func Error(format string, args ...interface{}) { std.Errorf(format, args...) }

// DebugX logs at debug level with an explicit module field.
func DebugX(module, format string, args ...interface{}) {
	std.WithField("module", module).Debugf(format, args...)
}

// InfoX logs at info level with an explicit module field.
func InfoX(module, format string, args ...interface{}) {
	std.WithField("module", module).Infof(format, args...)
}

// WarnX logs at warn level with an explicit module field.
func WarnX(module, format string, args ...interface{}) {
	std.WithField("module", module).Warnf(format, args...)
}
