package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullVersion(t *testing.T) {
	t.Run("should prefix the version with v", func(t *testing.T) {
		original := Version
		defer func() { Version = original }()
		Version = "1.2.3"

		assert.Equal(t, "v1.2.3", FullVersion())
	})
}
