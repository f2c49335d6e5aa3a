package slog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler formats logs like the default slog output followed by attributes:
// "YYYY/MM/DD HH:MM:SS LEVEL Message key=value ..."
type Handler struct {
	out    io.Writer
	mu     *sync.Mutex
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	prefix string
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &Handler{out: out, mu: &sync.Mutex{}, opts: opts}
}

// ParseLevel resolves a level name (debug, info, warn, error) case-insensitively.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': %w", name, err)
	}

	return level, nil
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Level != nil {
		return level >= h.opts.Level.Level()
	}

	return level >= slog.LevelInfo
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006/01/02 15:04:05"))
	sb.WriteByte(' ')
	sb.WriteString(strings.ToUpper(r.Level.String()))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&sb, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, h.prefix, attr)

		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := io.WriteString(h.out, sb.String()); err != nil {
		return fmt.Errorf("unable to write log record: %w", err)
	}

	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	copyLogger := *h
	copyLogger.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	copyLogger.attrs = append(copyLogger.attrs, h.attrs...)
	for _, attr := range attrs {
		if h.prefix != "" {
			attr.Key = h.prefix + attr.Key
		}
		copyLogger.attrs = append(copyLogger.attrs, attr)
	}

	return &copyLogger
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	copyLogger := *h
	copyLogger.prefix = h.prefix + name + "."

	return &copyLogger
}

func writeAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		for _, groupAttr := range attr.Value.Group() {
			writeAttr(sb, groupPrefix, groupAttr)
		}

		return
	}

	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n\"=") {
		value = fmt.Sprintf("%q", value)
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(attr.Key)
	sb.WriteByte('=')
	sb.WriteString(value)
}
