package completion_helper

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestDefaultFlagComplete(t *testing.T) {
	t.Run("should print short and long flag names", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		cmd := &cli.Command{
			Name:   "lint",
			Writer: &buf,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "edit", Aliases: []string{"e"}},
				&cli.BoolFlag{Name: "strict"},
			},
		}

		// Act
		DefaultFlagComplete(context.Background(), cmd)

		// Assert
		assert.Equal(t, "--edit\n-e\n--strict\n", buf.String())
	})
}
