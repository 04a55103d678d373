package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/rules"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

const rulesFileBase = ".matelint"

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(rules.FormatTOML),
				Usage:   t.GetMessage("config.init_format_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Value:   rules.PresetGitmoji,
				Usage:   t.GetMessage("config.init_preset_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: t.GetMessage("config.init_dir_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("config.init_force_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format, err := rules.ParseFormat(command.String("format"))
			if err != nil {
				return err
			}

			name := command.String("preset")
			rs, ok := rules.Preset(name)
			if !ok {
				return domainErrors.ErrUnknownPreset.WithContext("preset", name)
			}

			dir, err := c.initDir(ctx, command.String("dir"))
			if err != nil {
				return err
			}
			path := filepath.Join(dir, rulesFileBase+format.Extension())

			if _, err := os.Stat(path); err == nil && !command.Bool("force") {
				return domainErrors.ErrRulesExist.WithContext("path", path)
			}

			var buf bytes.Buffer
			if err := rules.Encode(&buf, rs, format); err != nil {
				return domainErrors.ErrWriteRules.WithError(err).WithContext("path", path)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return domainErrors.ErrWriteRules.WithError(err).WithContext("path", path)
			}
			logger.Debug(ctx, "rules file written", "path", path, "preset", rs.Name)

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.init_written", 0, map[string]interface{}{
				"Path":   path,
				"Preset": rs.Name,
			}))
			return nil
		},
	}
}

// initDir defaults to the repository root, or the working directory outside
// a repository.
func (c *ConfigCommandFactory) initDir(ctx context.Context, dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if c.gitService.IsRepo(ctx) {
		root, err := c.gitService.RepoRoot(ctx)
		if err == nil {
			return root, nil
		}
		logger.Warn(ctx, "could not resolve repository root", "error", err)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", domainErrors.ErrWriteRules.WithError(err)
	}
	return dir, nil
}
