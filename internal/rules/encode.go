package rules

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"gopkg.in/yaml.v3"
)

// Encode writes the rule set to w in the given format. The output loads back
// to an equivalent rule set.
func Encode(w io.Writer, rs *RuleSet, format Format) error {
	f := rs.ToFile()

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(f)
	default:
		return domainErrors.ErrUnsupportedFormat.WithContext("format", string(format))
	}
}
