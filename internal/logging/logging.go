package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init writes logs to ~/.pizzeria/logs/pizzeria.log.
// The terminal belongs to the form while it runs, so nothing goes to stderr.
// The returned closer releases the log file.
func Init() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return InitFile(filepath.Join(homeDir, ".pizzeria", "logs", "pizzeria.log"))
}

// InitFile is Init with an explicit log path
func InitFile(logPath string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	install(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// Route the standard log package to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// InitStderr installs a text logger on stderr at the given level, for pizzeriad
func InitStderr(level slog.Level) *slog.Logger {
	return InitWriter(os.Stderr, level)
}

// InitWriter installs a text logger writing to w
func InitWriter(w io.Writer, level slog.Level) *slog.Logger {
	install(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return Logger
}

func install(handler slog.Handler) {
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}
