package config

import (
	"github.com/Tomas-vilte/MateLint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateLint/internal/config"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/ports"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	rulesService ports.RulesService
	gitService   ports.GitService
}

func NewConfigCommandFactory(rulesService ports.RulesService, gitService ports.GitService) *ConfigCommandFactory {
	return &ConfigCommandFactory{rulesService: rulesService, gitService: gitService}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config.command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newInitCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetRulesCommand(t, cfg),
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
	}
}
