package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/natefinch/lumberjack"

	"github.com/andyballingall/curvecheck/internal/fs"
)

const (
	LogFile   = ".curvecheck.log"
	LogEnvVar = "CURVECHECK_LOG_FILE"

	// Watch sessions can run for days, so the log file is rotated.
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

// setupLogger configures a logger that writes structured logs to a file
// and clean, human-readable logs to the console. The file is CURVECHECK_LOG_FILE
// when set, otherwise .curvecheck.log in dir. If the file cannot be opened the
// console logger is still returned, along with the error.
func setupLogger(stderr io.Writer, logLevel *slog.LevelVar, env fs.EnvProvider, dir string,
) (*slog.Logger, io.Closer, error) {
	logPath := env.Get(LogEnvVar)
	if logPath == "" {
		logPath = filepath.Join(dir, LogFile)
	}

	var logCloser io.Closer
	handlers := make([]slog.Handler, 0, 2)

	// lumberjack opens the file lazily, so check it can be written first
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		_ = f.Close()
		sink := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		}
		logCloser = sink
		handlers = append(handlers, slog.NewJSONHandler(sink, &slog.HandlerOptions{
			Level: slog.LevelDebug, // File always gets full debug info
		}))
	}

	handlers = append(handlers, &consoleHandler{
		w:     stderr,
		level: logLevel,
	})

	return slog.New(&multiHandler{handlers: handlers}), logCloser, err
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

type consoleHandler struct {
	w     io.Writer
	level *slog.LevelVar
	attrs []slog.Attr
}

func (c *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= c.level.Level()
}

//nolint:gocritic // slog.Record is passed by value in the interface
func (c *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	// Clean output for the console
	switch {
	case record.Level >= slog.LevelError:
		fmt.Fprintf(c.w, "Error: %s", record.Message)
	case record.Level >= slog.LevelWarn:
		fmt.Fprintf(c.w, "Warning: %s", record.Message)
	default:
		fmt.Fprint(c.w, record.Message)
	}

	// Show attributes added via WithAttrs
	for _, a := range c.attrs {
		c.formatAttr(a)
	}

	// Show attributes from the record
	record.Attrs(func(a slog.Attr) bool {
		c.formatAttr(a)
		return true
	})

	fmt.Fprintln(c.w)
	return nil
}

func (c *consoleHandler) formatAttr(a slog.Attr) {
	switch {
	case a.Key == "error" || a.Key == "err":
		fmt.Fprintf(c.w, ": %v", a.Value)
	case a.Key == "component":
		// The console reader does not care which component logged.
	case c.level.Level() <= slog.LevelDebug:
		fmt.Fprintf(c.w, " %s=%v", a.Key, a.Value)
	}
}

func (c *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:     c.w,
		level: c.level,
		attrs: slices.Concat(c.attrs, attrs),
	}
}

// WithGroup is a no-op: console output is flat.
func (c *consoleHandler) WithGroup(_ string) slog.Handler {
	return c
}
