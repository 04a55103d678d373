package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a rule set.
type File struct {
	Extends        []string         `toml:"extends,omitempty" yaml:"extends,omitempty" json:"extends,omitempty"`
	Parser         *ParserOptions   `toml:"parser,omitempty" yaml:"parser,omitempty" json:"parser,omitempty"`
	Rules          map[string][]any `toml:"rules,omitempty" yaml:"rules,omitempty" json:"rules,omitempty"`
	Ignores        []IgnoreRule     `toml:"ignores,omitempty" yaml:"ignores,omitempty" json:"ignores,omitempty"`
	DefaultIgnores *bool            `toml:"default_ignores,omitempty" yaml:"default_ignores,omitempty" json:"default_ignores,omitempty"`
	HelpURL        string           `toml:"help_url,omitempty" yaml:"help_url,omitempty" json:"help_url,omitempty"`
	Prompt         *Prompt          `toml:"prompt,omitempty" yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", domainErrors.ErrUnsupportedFormat.WithContext("format", s)
	}
}

// Extension is the file extension written for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// SearchNames are the files Discover looks for, in priority order.
var SearchNames = []string{
	".matelint.toml",
	".matelint.yaml",
	".matelint.yml",
	".matelint.json",
	".commitlintrc.toml",
	".commitlintrc.yaml",
	".commitlintrc.yml",
	".commitlintrc.json",
}

// Discover walks from dir up to the filesystem root and returns the first
// configuration file found.
func Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", domainErrors.ErrReadRules.WithError(err).WithContext("path", dir)
	}

	for {
		for _, name := range SearchNames {
			candidate := filepath.Join(abs, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", domainErrors.ErrRulesNotFound.WithContext("path", dir)
		}
		abs = parent
	}
}

// Load reads, resolves and validates the rule set stored at path.
func Load(path string) (*RuleSet, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.ErrReadRules.WithError(err).WithContext("path", path)
	}

	file, err := Decode(data, format)
	if err != nil {
		return nil, domainErrors.ErrDecodeRules.WithError(err).WithContext("path", path)
	}

	rs, err := file.Resolve()
	if err != nil {
		return nil, err
	}
	rs.Name = path

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// Decode parses a rule file without resolving presets.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	default:
		return nil, domainErrors.ErrUnsupportedFormat.WithContext("format", string(format))
	}
	return &f, nil
}

// Resolve applies the extended presets in order and then the file itself.
// A file without extends and without a parser section starts from the
// gitmoji preset's parser so the rules still have fields to look at.
func (f *File) Resolve() (*RuleSet, error) {
	rs := &RuleSet{}
	for _, name := range f.Extends {
		preset, ok := Preset(name)
		if !ok {
			return nil, domainErrors.ErrUnknownPreset.WithContext("preset", name)
		}
		rs.merge(preset)
	}

	own, err := f.toRuleSet()
	if err != nil {
		return nil, domainErrors.ErrInvalidRules.WithError(err)
	}
	rs.merge(own)

	if rs.Parser.HeaderPattern == "" {
		rs.Parser = Gitmoji().Parser
	}
	return rs, nil
}

func (f *File) toRuleSet() (*RuleSet, error) {
	rs := &RuleSet{
		Rules:          make(map[string]RuleConfig, len(f.Rules)),
		Ignores:        f.Ignores,
		DefaultIgnores: f.DefaultIgnores,
		HelpURL:        f.HelpURL,
	}
	if f.Parser != nil {
		rs.Parser = *f.Parser
	}
	if f.Prompt != nil {
		rs.Prompt = *f.Prompt
	}
	for name, raw := range f.Rules {
		rc, err := ParseRule(name, raw)
		if err != nil {
			return nil, err
		}
		rs.Rules[name] = rc
	}
	return rs, nil
}

// ToFile converts a resolved rule set back to its on-disk shape.
func (rs *RuleSet) ToFile() *File {
	f := &File{
		Rules:          make(map[string][]any, len(rs.Rules)),
		Ignores:        rs.Ignores,
		DefaultIgnores: rs.DefaultIgnores,
		HelpURL:        rs.HelpURL,
	}
	parser := rs.Parser
	f.Parser = &parser
	for name, rc := range rs.Rules {
		f.Rules[name] = rc.Raw()
	}
	if len(rs.Prompt.Questions) > 0 {
		prompt := rs.Prompt
		f.Prompt = &prompt
	}
	return f
}
