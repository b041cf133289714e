// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace sits below debug for very chatty output such as per-request
// routing decisions.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string // service name for default attrs
	Version string // service version for default attrs
	File    FileConfig
}

// FileConfig controls the optional rotating log file.
// The file is always written as JSON regardless of Config.Format.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a new configured slog.Logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a new configured slog.Logger with a custom writer.
// Secrets are redacted on every sink.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	replaceAttr := NewReplaceAttr()

	handler := terminalHandler(cfg.Format, w, level, replaceAttr)

	if cfg.File.Enabled && cfg.File.Path != "" {
		fileHandler := slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		}, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceAttr,
		})
		handler = NewMultiHandler(handler, fileHandler)
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

func terminalHandler(
	format string,
	w io.Writer,
	level slog.Level,
	replaceAttr func([]string, slog.Attr) slog.Attr,
) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	}

	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "pretty":
		charm := log.NewWithOptions(w, log.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})
		charm.SetStyles(charmStyles())

		return &redactingHandler{next: charm, replaceAttr: replaceAttr}
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// charmTraceLevel shares its value with LevelTrace; charm levels use the
// slog numbering.
const charmTraceLevel = log.Level(LevelTrace)

// charmStyles adds a label for trace records, which charm does not print
// without one.
func charmStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[charmTraceLevel] = styles.Levels[log.DebugLevel].SetString("TRACE").Faint(true)

	return styles
}

// slogToCharmLevel clamps an slog level onto the levels charm knows about,
// plus trace.
func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level <= LevelTrace:
		return charmTraceLevel
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// redactingHandler applies ReplaceAttr to handlers that do not accept
// slog.HandlerOptions, such as the charm logger.
type redactingHandler struct {
	next        slog.Handler
	replaceAttr func([]string, slog.Attr) slog.Attr
	groups      []string
}

func (h *redactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactingHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.replaceAttr(h.groups, a))
		return true
	})

	return h.next.Handle(ctx, out)
}

func (h *redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.replaceAttr(h.groups, a)
	}

	return &redactingHandler{next: h.next.WithAttrs(redacted), replaceAttr: h.replaceAttr, groups: h.groups}
}

func (h *redactingHandler) WithGroup(name string) slog.Handler {
	groups := append(append([]string(nil), h.groups...), name)
	return &redactingHandler{next: h.next.WithGroup(name), replaceAttr: h.replaceAttr, groups: groups}
}
