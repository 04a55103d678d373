package config

import (
	"context"
	"path/filepath"

	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/rules"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

// newSetRulesCommand stores a personal rules file used when a repository
// has none of its own.
func (c *ConfigCommandFactory) newSetRulesCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-rules",
		Usage: t.GetMessage("config.set_rules_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "path",
				Usage:     t.GetMessage("config.set_rules_path_flag_usage", 0, nil),
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "clear",
				Usage: t.GetMessage("config.set_rules_clear_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			path := command.String("path")

			if command.Bool("clear") || path == "" {
				cfg.RulesFile = ""
				if err := config.SaveConfig(cfg); err != nil {
					return domainErrors.ErrSaveConfig.WithError(err).WithContext("path", cfg.PathFile)
				}
				ui.PrintSuccess(w, t.GetMessage("config.rules_file_cleared", 0, nil))
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return domainErrors.ErrReadRules.WithError(err).WithContext("path", path)
			}
			if _, err := rules.Load(abs); err != nil {
				return err
			}

			cfg.RulesFile = abs
			if err := config.SaveConfig(cfg); err != nil {
				cfg.RulesFile = ""
				return domainErrors.ErrSaveConfig.WithError(err).WithContext("path", cfg.PathFile)
			}
			ui.PrintSuccess(w, t.GetMessage("config.rules_file_configured", 0, map[string]interface{}{
				"Path": abs,
			}))
			return nil
		},
	}
}
