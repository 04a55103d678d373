package completion

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateLint/internal/config"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func init() {
	color.NoColor = true
}

func setupCompletionTest(t *testing.T, shell string) (*cli.Command, *bytes.Buffer, string) {
	t.Helper()
	home := t.TempDir()
	app, out := newCompletionApp(t, shell, home)
	return app, out, home
}

func newCompletionApp(t *testing.T, shell, home string) (*cli.Command, *bytes.Buffer) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	factory := &CompletionCommandFactory{
		homeDir: func() (string, error) { return home, nil },
		shell:   func() string { return shell },
	}

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "matelint",
		Commands: []*cli.Command{factory.CreateCommand(translations, &config.Config{})},
		Writer:   &out,
	}
	return app, &out
}

func TestCompletionCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("should print the bash script", func(t *testing.T) {
		app, out, _ := setupCompletionTest(t, "/bin/bash")

		err := app.Run(ctx, []string{"matelint", "completion", "bash"})

		require.NoError(t, err)
		assert.Equal(t, bashCompletionScript, out.String())
	})

	t.Run("should print the zsh script", func(t *testing.T) {
		app, out, _ := setupCompletionTest(t, "/bin/zsh")

		err := app.Run(ctx, []string{"matelint", "completion", "zsh"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "#compdef matelint"))
	})

	t.Run("should install once into the shell rc file", func(t *testing.T) {
		// Arrange
		first, _, home := setupCompletionTest(t, "/usr/bin/zsh")
		second, out := newCompletionApp(t, "/usr/bin/zsh", home)

		// Act
		require.NoError(t, first.Run(ctx, []string{"matelint", "completion", "install"}))
		require.NoError(t, second.Run(ctx, []string{"matelint", "completion", "install"}))

		// Assert
		data, err := os.ReadFile(filepath.Join(home, ".zshrc"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), installMarker))
		assert.Contains(t, string(data), "source <(matelint completion zsh)")
		assert.Contains(t, out.String(), "already installed")
	})

	t.Run("should reject unknown shells", func(t *testing.T) {
		app, _, _ := setupCompletionTest(t, "/usr/bin/fish")

		err := app.Run(ctx, []string{"matelint", "completion", "install"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "/usr/bin/fish")
	})
}
