package config

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/services"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func init() {
	color.NoColor = true
}

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()
	tmpConfigPath := filepath.Join(t.TempDir(), "config.json")

	cfg := &config.Config{
		PathFile: tmpConfigPath,
		Language: "es",
		UseColor: true,
	}

	translations, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	return cfg, translations, tmpConfigPath
}

// newTestApp mounts the config command under a root carrying the global flags.
func newTestApp(t *i18n.Translations, cfg *config.Config) (*cli.Command, *bytes.Buffer) {
	return newTestAppWithGit(t, cfg, new(services.MockGitService))
}

func newTestAppWithGit(t *i18n.Translations, cfg *config.Config, git *services.MockGitService) (*cli.Command, *bytes.Buffer) {
	var out bytes.Buffer
	factory := NewConfigCommandFactory(services.NewRulesService(cfg), git)
	app := &cli.Command{
		Name:     "matelint",
		Flags:    flags.Global(t),
		Commands: []*cli.Command{factory.CreateCommand(t, cfg)},
		Writer:   &out,
	}
	return app, &out
}

func TestConfigCommand(t *testing.T) {
	t.Run("should expose every subcommand", func(t *testing.T) {
		// Arrange
		cfg, translations, _ := setupConfigTest(t)

		// Act
		cmd := NewConfigCommandFactory(services.NewRulesService(cfg), new(services.MockGitService)).CreateCommand(translations, cfg)

		// Assert
		names := make([]string, 0, len(cmd.Commands))
		for _, sub := range cmd.Commands {
			names = append(names, sub.Name)
		}
		assert.Equal(t, "config", cmd.Name)
		assert.Equal(t, []string{"show", "init", "set-lang", "set-rules"}, names)
	})

	t.Run("should run through the root command", func(t *testing.T) {
		// Arrange
		cfg, translations, _ := setupConfigTest(t)
		app, out := newTestApp(translations, cfg)

		// Act
		err := app.Run(context.Background(), []string{"matelint", "--config", "gitmoji", "config", "show"})

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, out.String())
	})
}
