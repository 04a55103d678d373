package completion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/config"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_matelint_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # complete from the words typed so far, without the one under the cursor
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _matelint_bash_autocomplete matelint
`

const zshCompletionScript = `#compdef matelint

_matelint() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _matelint matelint
`

const installMarker = "# MateLint Shell Completion"

const installInfo = `
` + installMarker + `
if command -v matelint >/dev/null 2>&1; then
	source <(matelint completion %s)
fi
`

type CompletionCommandFactory struct {
	homeDir func() (string, error)
	shell   func() string
}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{
		homeDir: os.UserHomeDir,
		shell:   func() string { return os.Getenv("SHELL") },
	}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "completion",
		Usage:       t.GetMessage("completion.command_usage", 0, nil),
		Description: t.GetMessage("completion.command_description", 0, nil),
		Commands: []*cli.Command{
			{
				Name:   "bash",
				Usage:  t.GetMessage("completion.bash_usage", 0, nil),
				Action: printScript(bashCompletionScript),
			},
			{
				Name:   "zsh",
				Usage:  t.GetMessage("completion.zsh_usage", 0, nil),
				Action: printScript(zshCompletionScript),
			},
			{
				Name:   "install",
				Usage:  t.GetMessage("completion.install_usage", 0, nil),
				Action: f.installAction(t),
			},
		},
	}
}

func printScript(script string) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprint(cmd.Root().Writer, script)
		return err
	}
}

func (f *CompletionCommandFactory) installAction(t *i18n.Translations) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		w := cmd.Root().Writer
		shell := f.shell()
		home, err := f.homeDir()
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("completion.error_home_dir", 0, map[string]interface{}{"Error": err.Error()}))
		}

		var configFile, shellName string
		switch {
		case strings.Contains(shell, "zsh"):
			configFile = filepath.Join(home, ".zshrc")
			shellName = "zsh"
		case strings.Contains(shell, "bash"):
			configFile = filepath.Join(home, ".bashrc")
			shellName = "bash"
		default:
			return fmt.Errorf("%s", t.GetMessage("completion.error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
		}

		fileContent, err := os.ReadFile(configFile)
		if err == nil && strings.Contains(string(fileContent), installMarker) {
			ui.PrintInfo(w, t.GetMessage("completion.already_installed", 0, map[string]interface{}{"File": configFile}))
			printRestart(w, t, configFile)
			return nil
		}

		file, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("completion.error_open_config", 0, map[string]interface{}{"Error": err.Error()}))
		}
		defer func() { _ = file.Close() }()

		if _, err := fmt.Fprintf(file, installInfo, shellName); err != nil {
			return fmt.Errorf("%s", t.GetMessage("completion.error_write_config", 0, map[string]interface{}{"Error": err.Error()}))
		}

		ui.PrintSuccess(w, t.GetMessage("completion.installed_success", 0, map[string]interface{}{"File": configFile}))
		printRestart(w, t, configFile)
		return nil
	}
}

func printRestart(w io.Writer, t *i18n.Translations, configFile string) {
	_, _ = fmt.Fprintln(w, t.GetMessage("completion.restart_shell", 0, nil))
	_, _ = fmt.Fprintf(w, "  source %s\n", configFile)
}
