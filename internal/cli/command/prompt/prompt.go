package prompt

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateLint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/ports"
	"github.com/Tomas-vilte/MateLint/internal/prompt"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

type PromptCommandFactory struct {
	rulesService ports.RulesService
}

func NewPromptCommandFactory(rulesService ports.RulesService) *PromptCommandFactory {
	return &PromptCommandFactory{rulesService: rulesService}
}

func (f *PromptCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "prompt",
		Aliases:       []string{"p"},
		Usage:         t.GetMessage("prompt.command_usage", 0, nil),
		Description:   t.GetMessage("prompt.command_description", 0, nil),
		Flags:         f.createFlags(t),
		Action:        f.createAction(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
	}
}

func (f *PromptCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "output",
			Aliases:   []string{"o"},
			Usage:     t.GetMessage("prompt.output_flag_usage", 0, nil),
			TakesFile: true,
		},
	}
}

func (f *PromptCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		dir, err := os.Getwd()
		if err != nil {
			dir = "."
		}
		linter, source, err := f.rulesService.Linter(ctx, command.String(flags.Config), dir)
		if err != nil {
			return err
		}
		ctx = logger.With(ctx, "rules", source.String())

		root := command.Root()
		p := prompt.NewPrompter(root.Reader, root.ErrWriter, t, linter)
		message, err := p.Run(ctx)
		if err != nil {
			return err
		}

		output := command.String("output")
		if output == "" {
			_, _ = fmt.Fprintln(root.Writer, message)
			return nil
		}

		if err := os.WriteFile(output, []byte(message+"\n"), 0644); err != nil {
			return domainErrors.ErrWriteMessage.WithError(err).WithContext("path", output)
		}
		logger.Debug(ctx, "commit message written", "path", output)
		ui.PrintSuccess(root.ErrWriter, t.GetMessage("prompt.message_written", 0, map[string]interface{}{
			"Path": output,
		}))
		return nil
	}
}
