package config

import (
	"context"
	"os"
	"strconv"

	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			msg := func(id string) string { return t.GetMessage(id, 0, nil) }

			ui.PrintSectionBanner(w, msg("config.current_config"))
			ui.PrintKeyValue(w, msg("config.language_label"), cfg.Language)
			ui.PrintKeyValue(w, msg("config.use_color_label"), strconv.FormatBool(cfg.UseColor))

			rulesFile := cfg.RulesFile
			if rulesFile == "" {
				rulesFile = msg("config.not_set")
			}
			ui.PrintKeyValue(w, msg("config.rules_file_label"), rulesFile)
			ui.PrintKeyValue(w, msg("config.path_label"), cfg.PathFile)

			dir, err := os.Getwd()
			if err != nil {
				dir = "."
			}
			_, source, err := c.rulesService.Resolve(ctx, command.String(flags.Config), dir)
			if err != nil {
				ui.PrintKeyValue(w, msg("config.rules_source_label"), msg("config.rules_source_error"))
				return err
			}
			ui.PrintKeyValue(w, msg("config.rules_source_label"), source.String())
			return nil
		},
	}
}
