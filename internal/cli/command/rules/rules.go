package rules

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/MateLint/internal/cli/flags"
	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/ports"
	"github.com/Tomas-vilte/MateLint/internal/rules"
	"github.com/Tomas-vilte/MateLint/internal/ui"
	"github.com/urfave/cli/v3"
)

const formatText = "text"

type RulesCommandFactory struct {
	rulesService ports.RulesService
}

func NewRulesCommandFactory(rulesService ports.RulesService) *RulesCommandFactory {
	return &RulesCommandFactory{rulesService: rulesService}
}

func (f *RulesCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "rules",
		Aliases:       []string{"r"},
		Usage:         t.GetMessage("rules.command_usage", 0, nil),
		Description:   t.GetMessage("rules.command_description", 0, nil),
		Flags:         f.createFlags(t),
		Action:        f.createAction(t),
		ShellComplete: completion_helper.DefaultFlagComplete,
	}
}

func (f *RulesCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   formatText,
			Usage:   t.GetMessage("rules.format_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage: t.GetMessage("rules.preset_flag_usage", 0, map[string]interface{}{
				"Presets": strings.Join(rules.PresetNames(), ", "),
			}),
		},
	}
}

func (f *RulesCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		rs, source, err := f.resolve(ctx, command)
		if err != nil {
			return err
		}

		w := command.Root().Writer
		format := command.String("format")
		if format == formatText {
			printRuleSet(w, t, rs, source)
			return nil
		}

		fileFormat, err := rules.ParseFormat(format)
		if err != nil {
			return err
		}
		return rules.Encode(w, rs, fileFormat)
	}
}

func (f *RulesCommandFactory) resolve(ctx context.Context, command *cli.Command) (*rules.RuleSet, models.RuleSource, error) {
	if name := command.String("preset"); name != "" {
		rs, ok := rules.Preset(name)
		if !ok {
			return nil, models.RuleSource{}, domainErrors.ErrUnknownPreset.WithContext("preset", name)
		}
		return rs, models.RuleSource{Kind: models.SourcePreset, Location: rs.Name}, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return f.rulesService.Resolve(ctx, command.String(flags.Config), dir)
}

func printRuleSet(w io.Writer, t *i18n.Translations, rs *rules.RuleSet, source models.RuleSource) {
	msg := func(id string) string { return t.GetMessage(id, 0, nil) }

	ui.PrintSectionBanner(w, msg("rules.banner"))
	ui.PrintKeyValue(w, msg("rules.source"), source.String())
	ui.PrintKeyValue(w, msg("rules.header_pattern"), rs.Parser.HeaderPattern)
	ui.PrintKeyValue(w, msg("rules.fields"), strings.Join(rs.Parser.HeaderCorrespondence, ", "))

	if choices := rs.Choices(); len(choices) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", ui.Bold.Sprint(msg("rules.types")))
		for _, c := range choices {
			emoji := c.Emoji
			if emoji == "" {
				emoji = " "
			}
			_, _ = fmt.Fprintf(w, "   %s %-10s %s\n", emoji, c.Name, ui.Dim.Sprint(c.Title))
		}
	}

	if scopes := rs.Rules["scope-enum"]; scopes.Enabled() && len(scopes.Strings()) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", ui.Bold.Sprint(msg("rules.scopes")))
		_, _ = fmt.Fprintf(w, "   %s\n", strings.Join(scopes.Strings(), ", "))
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", ui.Bold.Sprint(msg("rules.enabled")))
	for _, name := range rules.KnownNames() {
		rc, ok := rs.Rules[name]
		if !ok || !rc.Enabled() {
			continue
		}
		line := fmt.Sprintf("   %-26s %-8s %-7s", name, rc.Level, rc.When)
		if v := formatValue(rc.Value); v != "" {
			line += " " + v
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	if len(rs.Ignores) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", ui.Bold.Sprint(msg("rules.ignores")))
		for _, ig := range rs.Ignores {
			_, _ = fmt.Fprintf(w, "   %s\n", formatIgnore(ig))
		}
	}
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case []string:
		return "[" + strings.Join(value, ", ") + "]"
	default:
		return fmt.Sprint(value)
	}
}

func formatIgnore(ig rules.IgnoreRule) string {
	switch {
	case ig.Contains != "":
		return fmt.Sprintf("contains %q", ig.Contains)
	case ig.Prefix != "":
		return fmt.Sprintf("prefix %q", ig.Prefix)
	default:
		return fmt.Sprintf("pattern %q", ig.Pattern)
	}
}
