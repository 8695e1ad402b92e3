package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger discards everything until Init is called.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init opens (or creates) filelist.log inside dir and points Logger at it.
func Init(dir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(filepath.Join(dir, "filelist.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	Logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: level,
	}))
	return logFile, nil
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
