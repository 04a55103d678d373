package lint

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/ports"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

type LintCommandFactory struct {
	rulesService   ports.RulesService
	messageService ports.MessageService
}

func NewLintCommandFactory(rulesService ports.RulesService, messageService ports.MessageService) *LintCommandFactory {
	return &LintCommandFactory{
		rulesService:   rulesService,
		messageService: messageService,
	}
}

func (f *LintCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "lint",
		Aliases:       []string{"l"},
		Usage:         t.GetMessage("lint.command_usage", 0, nil),
		Description:   t.GetMessage("lint.command_description", 0, nil),
		ArgsUsage:     t.GetMessage("lint.args_usage", 0, nil),
		Flags:         f.createFlags(t),
		Action:        f.createAction(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
	}
}

func (f *LintCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "edit",
			Aliases:   []string{"e"},
			Usage:     t.GetMessage("lint.edit_flag_usage", 0, nil),
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:    "commit-msg",
			Aliases: []string{"g"},
			Usage:   t.GetMessage("lint.commit_msg_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   ui.FormatText,
			Usage: t.GetMessage("lint.format_flag_usage", 0, map[string]interface{}{
				"Formats": strings.Join(ui.ReportFormats, ", "),
			}),
		},
		&cli.BoolFlag{
			Name:    "strict",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("lint.strict_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   t.GetMessage("lint.quiet_flag_usage", 0, nil),
		},
	}
}

func (f *LintCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		format := command.String("format")
		if !slices.Contains(ui.ReportFormats, format) {
			return domainErrors.ErrUnsupportedOutput.WithContext("format", format)
		}

		linter, source, err := f.rulesService.Linter(ctx, command.String(flags.Config), workDir())
		if err != nil {
			return err
		}
		ctx = logger.With(ctx, "rules", source.String())

		stdin := command.Root().Reader
		message, err := f.messageService.Read(ctx, models.MessageRequest{
			EditFile:        command.String("edit"),
			CommitMsg:       command.Bool("commit-msg"),
			Args:            command.Args().Slice(),
			Stdin:           stdin,
			StdinIsTerminal: isTerminal(stdin),
		})
		if err != nil {
			return err
		}

		report, err := linter.Lint(ctx, message)
		if err != nil {
			return err
		}
		logger.Debug(ctx, "lint finished",
			"valid", report.Valid,
			"errors", len(report.Errors),
			"warnings", len(report.Warnings))

		if !command.Bool("quiet") {
			helpURL := linter.Rules().Set().HelpURL
			if err := ui.FormatReport(command.Root().Writer, report, ui.ReportOptions{
				Format:       format,
				Verbose:      command.Bool(flags.Verbose),
				HelpURL:      helpURL,
				Translations: t,
			}); err != nil {
				return err
			}
		}

		if report.Failed(command.Bool("strict")) {
			return domainErrors.ErrLintFailed.
				WithContext("errors", len(report.Errors)).
				WithContext("warnings", len(report.Warnings))
		}
		return nil
	}
}

func workDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
