package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var levelBadges = map[slog.Level]func(string, ...interface{}) string{
	slog.LevelDebug: color.HiBlackString,
	slog.LevelInfo:  color.CyanString,
	slog.LevelWarn:  color.YellowString,
	slog.LevelError: color.RedString,
}

// attrColors highlights the keys matelint logs most often. Anything else is dimmed.
var attrColors = map[string]func(string, ...interface{}) string{
	"error":    color.RedString,
	"err":      color.RedString,
	"rule":     color.MagentaString,
	"rules":    color.MagentaString,
	"preset":   color.MagentaString,
	"problems": color.GreenString,
	"warnings": color.GreenString,
	"bytes":    color.GreenString,
	"path":     color.CyanString,
	"source":   color.CyanString,
}

// PrettyHandler writes one line per record: a level badge, the message and
// key=value attributes.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []string
	prefix string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.opts.Level == nil {
		return level >= slog.LevelWarn
	}
	return level >= h.opts.Level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, 2+len(h.attrs)+r.NumAttrs())
	parts = append(parts, badge(r.Level), r.Message)
	parts = append(parts, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, a)
		return true
	})

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			parts = append(parts, color.HiBlackString("(%s:%d)", filepath.Base(frame.File), frame.Line))
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, strings.Join(parts, " "))
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		c.attrs = appendAttr(c.attrs, c.prefix, a)
	}
	return c
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix += name + "."
	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	c := *h
	c.attrs = append([]string(nil), h.attrs...)
	return &c
}

// badge pads INFO and WARN so messages line up under DEBUG and ERROR.
func badge(level slog.Level) string {
	paint, ok := levelBadges[level]
	if !ok {
		return fmt.Sprintf("[%s]", level)
	}
	label := fmt.Sprintf("[%s]", level)
	return paint("%-7s", label)
}

func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, prefix, ga)
		}
		return parts
	}

	paint, ok := attrColors[a.Key]
	if !ok {
		paint = color.HiBlackString
	}
	return append(parts, paint("%s%s=%s", prefix, a.Key, a.Value.String()))
}
