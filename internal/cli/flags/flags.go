// Package flags holds the flags every matelint command accepts.
package flags

import (
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/urfave/cli/v3"
)

const (
	Debug   = "debug"
	Verbose = "verbose"
	Config  = "config"
	NoColor = "no-color"
)

// Global returns the root flags. urfave/cli applies them to every
// subcommand, so they can be given before or after the command name.
func Global(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  Debug,
			Usage: t.GetMessage("flags.debug_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    Verbose,
			Aliases: []string{"V"},
			Usage:   t.GetMessage("flags.verbose_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:      Config,
			Aliases:   []string{"c"},
			Usage:     t.GetMessage("flags.config_usage", 0, nil),
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  NoColor,
			Usage: t.GetMessage("flags.no_color_usage", 0, nil),
		},
	}
}
