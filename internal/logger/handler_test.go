package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	t.Run("should drop records below the warn level by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false)

		log.Info("loading rules", "path", ".matelint.toml")

		assert.Empty(t, buf.String())
	})

	t.Run("should print info records in verbose mode", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, true)

		log.Info("loading rules", "path", ".matelint.toml")

		assert.Equal(t, "[INFO]  loading rules path=.matelint.toml\n", buf.String())
	})

	t.Run("should keep attributes added with With before record attributes", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false).With("preset", "gitmoji")

		log.Warn("rule disabled", "rule", "type-empty")

		assert.Equal(t, "[WARN]  rule disabled preset=gitmoji rule=type-empty\n", buf.String())
	})

	t.Run("should prefix keys with group names", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false).WithGroup("lint")

		log.Error("failed", "problems", 2)

		assert.Equal(t, "[ERROR] failed lint.problems=2\n", buf.String())
	})

	t.Run("should include source location in debug mode", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true, false)

		log.Debug("parsed header")

		assert.Contains(t, buf.String(), "[DEBUG] parsed header")
		assert.Contains(t, buf.String(), "handler_test.go:")
	})

	t.Run("should qualify attributes with the group open when they were added", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, false).With("preset", "gitmoji").WithGroup("lint").With("rule", "scope-case")

		log.Warn("checked", slog.Group("input", "bytes", 12))

		assert.Equal(t, "[WARN]  checked preset=gitmoji lint.rule=scope-case lint.input.bytes=12\n", buf.String())
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("should return the logger stored in context", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), New(&buf, false, false))
		ctx = With(ctx, "source", "stdin")

		Warn(ctx, "empty body")

		assert.Equal(t, "[WARN]  empty body source=stdin\n", buf.String())
	})

	t.Run("should fall back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})
}
