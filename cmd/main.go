package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Tomas-vilte/MateLint/internal/cli/command/completion"
	"github.com/Tomas-vilte/MateLint/internal/cli/command/config"
	"github.com/Tomas-vilte/MateLint/internal/cli/command/lint"
	"github.com/Tomas-vilte/MateLint/internal/cli/command/prompt"
	rulescmd "github.com/Tomas-vilte/MateLint/internal/cli/command/rules"
	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/git"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/services"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/Tomas-vilte/MateLint/internal/version"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		ui.HandleAppError(stderr, domainErrors.ErrLoadConfig.WithError(err), nil)
		return 1
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		ui.HandleAppError(stderr, domainErrors.ErrLoadConfig.WithError(err), nil)
		return 1
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		ui.HandleAppError(stderr, err, nil)
		return 1
	}

	app, err := initializeApp(cfgApp, translations)
	if err != nil {
		ui.HandleAppError(stderr, err, translations)
		return 1
	}
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		return exitCode(stderr, err, translations)
	}
	return 0
}

// exitCode prints err and maps it to the process exit status. A failed lint
// has already printed its report.
func exitCode(w io.Writer, err error, t *i18n.Translations) int {
	if errors.Is(err, domainErrors.ErrLintFailed) {
		return 1
	}
	ui.HandleAppError(w, err, t)
	return 1
}

func initializeApp(cfgApp *cfg.Config, translations *i18n.Translations) (*cli.Command, error) {
	gitService := git.NewGitService()
	rulesService := services.NewRulesService(cfgApp)
	messageService := services.NewMessageService(gitService)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"lint", lint.NewLintCommandFactory(rulesService, messageService)},
		{"prompt", prompt.NewPromptCommandFactory(rulesService)},
		{"rules", rulescmd.NewRulesCommandFactory(rulesService)},
		{"config", config.NewConfigCommandFactory(rulesService, gitService)},
		{"completion", completion.NewCompletionCommandFactory()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, fmt.Errorf("registering command %q: %w", f.name, err)
		}
	}

	commands := registerCommand.CreateCommands()
	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd.Root())
		},
	}
	commands = append(commands, helpCommand)

	before := setupOutput(cfgApp)
	applyBefore(commands, before)

	return &cli.Command{
		Name:                  "matelint",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Flags:                 flags.Global(translations),
		Commands:              commands,
		EnableShellCompletion: true,
		Before:                before,
	}, nil
}

// setupOutput installs the logger and the colour mode before any command runs.
func setupOutput(cfgApp *cfg.Config) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd.Bool(flags.NoColor) || !cfgApp.UseColor {
			color.NoColor = true
		}

		log := logger.New(cmd.Root().ErrWriter, cmd.Bool(flags.Debug), cmd.Bool(flags.Verbose))
		slog.SetDefault(log)
		return logger.WithLogger(ctx, log), nil
	}
}

// applyBefore runs before on every command in the tree. Global flags given
// after a command name are only parsed by that command, so the deepest call
// sees their final values.
func applyBefore(commands []*cli.Command, before cli.BeforeFunc) {
	for _, cmd := range commands {
		if cmd.Before == nil {
			cmd.Before = before
		}
		applyBefore(cmd.Commands, before)
	}
}
