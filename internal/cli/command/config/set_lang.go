package config

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config.set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage: t.GetMessage("config.set_lang_flag_usage", 0, map[string]interface{}{
					"Languages": strings.Join(config.SupportedLanguages, ", "),
				}),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.String("lang")
			if !config.IsSupportedLanguage(lang) {
				return domainErrors.ErrUnsupportedLanguage.WithContext("lang", lang)
			}

			previous := cfg.Language
			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				cfg.Language = previous
				return domainErrors.ErrSaveConfig.WithError(err).WithContext("path", cfg.PathFile)
			}

			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config.language_configured", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
