package rules

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/rules"
	"github.com/Tomas-vilte/MateLint/internal/services"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func init() {
	color.NoColor = true
}

func setupRulesTest(t *testing.T) (*cli.Command, *bytes.Buffer) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg := &config.Config{Language: "en"}
	factory := NewRulesCommandFactory(services.NewRulesService(cfg))

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "matelint",
		Flags:    flags.Global(translations),
		Commands: []*cli.Command{factory.CreateCommand(translations, cfg)},
		Writer:   &out,
	}
	return app, &out
}

func TestRulesCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("should describe the gitmoji preset", func(t *testing.T) {
		// Arrange
		app, out := setupRulesTest(t)

		// Act
		err := app.Run(ctx, []string{"matelint", "rules", "--preset", "gitmoji"})

		// Assert
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "   Source: preset: gitmoji\n")
		assert.Contains(t, text, "   Fields: emoji, type, scope, subject\n")
		assert.Contains(t, text, "   ✨ feat       Features\n")
		assert.Contains(t, text, "   Core, Gateway, Docker, Config, Logging, CI/CD, deps, deps-dev, release\n")
		assert.Contains(t, text, "   header-max-length"+strings.Repeat(" ", 10)+"error    always  100\n")
		assert.Contains(t, text, `   contains "[skip ci]"`)
		assert.NotContains(t, text, "type-empty")
	})

	t.Run("should describe the rules given with --config", func(t *testing.T) {
		// Arrange
		app, out := setupRulesTest(t)
		path := filepath.Join(t.TempDir(), "team.yaml")
		require.NoError(t, os.WriteFile(path, []byte("extends: [conventional]\nrules:\n  body-leading-blank: [0]\n"), 0644))

		// Act
		err := app.Run(ctx, []string{"matelint", "--config", path, "rules"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out.String(), "   Source: flag: "+path+"\n")
		assert.NotContains(t, out.String(), "body-leading-blank")
		assert.Contains(t, out.String(), "subject-full-stop")
	})

	t.Run("should print a rule file that loads back", func(t *testing.T) {
		// Arrange
		app, out := setupRulesTest(t)

		// Act
		err := app.Run(ctx, []string{"matelint", "rules", "--preset", "conventional", "--format", "toml"})

		// Assert
		require.NoError(t, err)
		file, err := rules.Decode(out.Bytes(), rules.FormatTOML)
		require.NoError(t, err)
		rs, err := file.Resolve()
		require.NoError(t, err)
		assert.Equal(t, rules.Conventional().Parser, rs.Parser)
		assert.Equal(t, rules.Conventional().Rules["subject-full-stop"], rs.Rules["subject-full-stop"])
	})

	t.Run("should accept yaml and json", func(t *testing.T) {
		for _, format := range []string{"yaml", "json"} {
			app, out := setupRulesTest(t)

			err := app.Run(ctx, []string{"matelint", "rules", "--preset", "gitmoji", "--format", format})

			require.NoError(t, err, format)
			assert.Contains(t, out.String(), "header_pattern", format)
		}
	})

	t.Run("should reject unknown presets and formats", func(t *testing.T) {
		app, _ := setupRulesTest(t)
		err := app.Run(ctx, []string{"matelint", "rules", "--preset", "angular"})
		assert.ErrorIs(t, err, domainErrors.ErrUnknownPreset)

		app, _ = setupRulesTest(t)
		err = app.Run(ctx, []string{"matelint", "rules", "--preset", "gitmoji", "--format", "xml"})
		assert.ErrorIs(t, err, domainErrors.ErrUnsupportedFormat)
	})
}
