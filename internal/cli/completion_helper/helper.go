package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints every flag of the current command, one per line,
// for the shell completion scripts.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}
