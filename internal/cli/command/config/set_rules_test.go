package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRulesCommand(t *testing.T) {
	t.Run("should store the absolute path of a valid rules file", func(t *testing.T) {
		// Arrange
		cfg, translations, tmpConfigPath := setupConfigTest(t)
		rulesPath := filepath.Join(t.TempDir(), "team.yaml")
		require.NoError(t, os.WriteFile(rulesPath, []byte("extends: [conventional]\n"), 0644))
		app, out := newTestApp(translations, cfg)

		// Act
		err := app.Run(context.Background(), []string{"matelint", "config", "set-rules", "--path", rulesPath})

		// Assert
		require.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, rulesPath, loadedCfg.RulesFile)
		assert.Contains(t, out.String(), rulesPath)
	})

	t.Run("should refuse invalid rules files", func(t *testing.T) {
		// Arrange
		cfg, translations, _ := setupConfigTest(t)
		rulesPath := filepath.Join(t.TempDir(), "team.toml")
		require.NoError(t, os.WriteFile(rulesPath, []byte(`extends = ["angular"]`), 0644))
		app, _ := newTestApp(translations, cfg)

		// Act
		err := app.Run(context.Background(), []string{"matelint", "config", "set-rules", "--path", rulesPath})

		// Assert
		assert.ErrorIs(t, err, domainErrors.ErrUnknownPreset)
		assert.Empty(t, cfg.RulesFile)
	})

	t.Run("should clear the rules file", func(t *testing.T) {
		// Arrange
		cfg, translations, tmpConfigPath := setupConfigTest(t)
		cfg.RulesFile = filepath.Join(t.TempDir(), "old.toml")
		app, _ := newTestApp(translations, cfg)

		// Act
		err := app.Run(context.Background(), []string{"matelint", "config", "set-rules", "--clear"})

		// Assert
		require.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Empty(t, loadedCfg.RulesFile)
	})
}
