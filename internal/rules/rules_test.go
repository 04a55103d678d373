package rules

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitmojiPreset(t *testing.T) {
	rs := Gitmoji()

	t.Run("should be valid", func(t *testing.T) {
		assert.NoError(t, rs.Validate())
	})

	t.Run("should allow the eleven commit types in lower case", func(t *testing.T) {
		assert.Equal(t, []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert"},
			rs.Rules["type-enum"].Strings())
		assert.Equal(t, []string{"lower-case"}, rs.Rules["type-case"].Strings())
	})

	t.Run("should allow the nine scopes in pascal case", func(t *testing.T) {
		assert.Equal(t, []string{"Core", "Gateway", "Docker", "Config", "Logging", "CI/CD", "deps", "deps-dev", "release"},
			rs.Rules["scope-enum"].Strings())
		assert.Equal(t, []string{"pascal-case"}, rs.Rules["scope-case"].Strings())
	})

	t.Run("should disable type-empty and cap the header at 100", func(t *testing.T) {
		assert.False(t, rs.Rules["type-empty"].Enabled())
		assert.Equal(t, 100, rs.Rules["header-max-length"].Int())
	})

	t.Run("should extract the four named fields", func(t *testing.T) {
		c := MustCompile(rs)
		headers := map[string][]string{
			"✨ feat(Core): add new feature":    {"✨", "feat", "Core", "add new feature"},
			"🐛 fix(Gateway): fix auth bug":     {"🐛", "fix", "Gateway", "fix auth bug"},
			"💥 feat!: breaking change":         {"💥", "feat", "", "breaking change"},
			":sparkles: feat(Docker): add image": {":sparkles:", "feat", "Docker", "add image"},
			"♻️ refactor(Config): split loader": {"♻️", "refactor", "Config", "split loader"},
			"⏪ revert: undo release":           {"⏪", "revert", "", "undo release"},
		}
		for header, want := range headers {
			m := c.Header().FindStringSubmatch(header)
			require.NotNil(t, m, header)
			assert.Equal(t, want, m[1:5], header)
		}
	})

	t.Run("should not match headers without emoji", func(t *testing.T) {
		c := MustCompile(rs)
		assert.False(t, c.Header().MatchString("feat(Core): add new feature"))
	})

	t.Run("should offer every type in the prompt", func(t *testing.T) {
		choices := rs.Choices()
		require.Len(t, choices, 11)
		assert.Equal(t, "feat", choices[0].Name)
		assert.Equal(t, "✨", choices[0].Emoji)
		assert.Equal(t, "Features", choices[0].Title)
		assert.Equal(t, "revert", choices[10].Name)
		assert.Equal(t, "⏪ Revert a previous commit", choices[10].Description)
	})

	t.Run("should return independent copies", func(t *testing.T) {
		a := Gitmoji()
		a.Rules["header-max-length"] = Rule(LevelError, Always, 10)

		assert.Equal(t, 100, Gitmoji().Rules["header-max-length"].Int())
	})
}

func TestCompiled_Ignored(t *testing.T) {
	c := MustCompile(Gitmoji())

	tests := []struct {
		message string
		want    bool
	}{
		{"🔧 chore(release): 1.2.0 [skip ci]", true},
		{"chore(release): 1.2.0", true},
		{"Merge branch 'main' into feature", true},
		{"Initial commit", true},
		{"fixup! ✨ feat(Core): add", true},
		{"✨ feat(Core): add new feature", false},
		{"docs: mention Merge in readme", false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Ignored(tt.message))
		})
	}

	t.Run("should skip default ignores when disabled", func(t *testing.T) {
		rs := Gitmoji()
		off := false
		rs.DefaultIgnores = &off
		c := MustCompile(rs)

		assert.False(t, c.Ignored("squash! fix"))
		assert.True(t, c.Ignored("Initial commit"))
	})

	t.Run("should match pattern ignores", func(t *testing.T) {
		rs := Gitmoji()
		rs.Ignores = append(rs.Ignores, IgnoreRule{Pattern: `^WIP\b`})
		c := MustCompile(rs)

		assert.True(t, c.Ignored("WIP something"))
	})
}

func TestCompile_CopiesRuleSet(t *testing.T) {
	t.Run("should not see later changes to enums and prompt choices", func(t *testing.T) {
		// Arrange
		rs := Gitmoji()
		c := MustCompile(rs)

		// Act
		rs.Rules["scope-enum"].Value.([]string)[0] = "Mutated"
		rs.Prompt.Questions[QuestionType].Enum["feat"] = PromptChoice{Emoji: "🚀"}

		// Assert
		rule, ok := c.Rule("scope-enum")
		require.True(t, ok)
		assert.Equal(t, "Core", rule.Strings()[0])
		assert.Equal(t, "✨", c.Set().Prompt.Questions[QuestionType].Enum["feat"].Emoji)
	})
}

func TestCompiled_KnownEmoji(t *testing.T) {
	c := MustCompile(Gitmoji())

	assert.True(t, c.KnownEmoji("✨"))
	assert.True(t, c.KnownEmoji("♻"))
	assert.True(t, c.KnownEmoji("⚡️"))
	assert.False(t, c.KnownEmoji("🚀"))
}

func TestParseRule(t *testing.T) {
	t.Run("should parse the three element form", func(t *testing.T) {
		rc, err := ParseRule("header-max-length", []any{int64(2), "always", int64(72)})

		require.NoError(t, err)
		assert.Equal(t, Rule(LevelError, Always, 72), rc)
	})

	t.Run("should accept json numbers", func(t *testing.T) {
		rc, err := ParseRule("body-max-line-length", []any{float64(1), "always", float64(80)})

		require.NoError(t, err)
		assert.Equal(t, 80, rc.Int())
	})

	t.Run("should parse a single case string into a list", func(t *testing.T) {
		rc, err := ParseRule("type-case", []any{2, "always", "lower-case"})

		require.NoError(t, err)
		assert.Equal(t, []string{"lower-case"}, rc.Strings())
	})

	t.Run("should parse the disabled shorthand", func(t *testing.T) {
		rc, err := ParseRule("type-empty", []any{0})

		require.NoError(t, err)
		assert.False(t, rc.Enabled())
		assert.Equal(t, []any{0}, rc.Raw())
	})

	t.Run("should reject unknown rules", func(t *testing.T) {
		_, err := ParseRule("header-length", []any{2})

		assert.Error(t, err)
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		_, err := ParseRule("scope-enum", []any{2, "always", []any{"Core", 3}})

		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rs *RuleSet)
	}{
		{"level out of range", func(rs *RuleSet) { rs.Rules["subject-empty"] = Rule(3, Never) }},
		{"bad applicable", func(rs *RuleSet) { rs.Rules["subject-empty"] = Rule(LevelError, "sometimes") }},
		{"missing length", func(rs *RuleSet) { rs.Rules["header-max-length"] = Rule(LevelError, Always) }},
		{"unknown case", func(rs *RuleSet) { rs.Rules["type-case"] = Rule(LevelError, Always, []string{"title-case"}) }},
		{"unknown rule", func(rs *RuleSet) { rs.Rules["header-length"] = Rule(LevelError, Always, 1) }},
		{"broken header pattern", func(rs *RuleSet) { rs.Parser.HeaderPattern = `^(\w+` }},
		{"unknown field name", func(rs *RuleSet) { rs.Parser.HeaderCorrespondence = []string{"kind"} }},
		{"duplicated field name", func(rs *RuleSet) { rs.Parser.HeaderCorrespondence = []string{"type", "type"} }},
		{"too few groups", func(rs *RuleSet) { rs.Parser.HeaderPattern = `^(\w+): .*$` }},
		{"ignore with two predicates", func(rs *RuleSet) { rs.Ignores = []IgnoreRule{{Contains: "a", Prefix: "b"}} }},
		{"ignore with bad pattern", func(rs *RuleSet) { rs.Ignores = []IgnoreRule{{Pattern: "("}} }},
		{"bad help url", func(rs *RuleSet) { rs.HelpURL = "not a url" }},
		{"prompt choice without description", func(rs *RuleSet) {
			q := rs.Prompt.Questions[QuestionType]
			q.Enum["feat"] = PromptChoice{Emoji: "✨"}
		}},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			rs := Gitmoji()
			tt.mutate(rs)

			err := rs.Validate()

			assert.True(t, errors.Is(err, domainErrors.ErrInvalidRules), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("should load a toml file extending the gitmoji preset", func(t *testing.T) {
		path := writeFile(t, ".matelint.toml", `
extends = ["gitmoji"]

[rules]
header-max-length = [2, "always", 72]
body-leading-blank = [1, "always"]

[[ignores]]
prefix = "WIP"
`)

		rs, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 72, rs.Rules["header-max-length"].Int())
		assert.Equal(t, LevelWarning, rs.Rules["body-leading-blank"].Level)
		assert.Len(t, rs.Rules["scope-enum"].Strings(), 9)
		assert.Len(t, rs.Ignores, 5)
		assert.Equal(t, GitmojiHeaderPattern, rs.Parser.HeaderPattern)
	})

	t.Run("should load a yaml file", func(t *testing.T) {
		path := writeFile(t, ".commitlintrc.yml", `
extends: ["@commitlint/config-conventional"]
rules:
  scope-enum: [2, always, [api, web]]
default_ignores: false
`)

		rs, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"api", "web"}, rs.Rules["scope-enum"].Strings())
		assert.Equal(t, ConventionalHeaderPattern, rs.Parser.HeaderPattern)
		assert.False(t, rs.UseDefaultIgnores())
	})

	t.Run("should load a json file with its own parser", func(t *testing.T) {
		path := writeFile(t, ".matelint.json", `{
  "parser": {"header_pattern": "^(\\w+): (.+)$", "header_correspondence": ["type", "subject"]},
  "rules": {"type-enum": [2, "always", ["feat", "fix"]], "subject-empty": [2, "never"]}
}`)

		rs, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"type", "subject"}, rs.Parser.HeaderCorrespondence)
		assert.Equal(t, path, rs.Name)
	})

	t.Run("should fall back to the gitmoji parser", func(t *testing.T) {
		path := writeFile(t, ".matelint.toml", `
[rules]
subject-empty = [2, "never"]
`)

		rs, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, GitmojiHeaderPattern, rs.Parser.HeaderPattern)
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		path := writeFile(t, ".matelint.toml", `
extend = ["gitmoji"]
`)

		_, err := Load(path)

		assert.True(t, errors.Is(err, domainErrors.ErrDecodeRules))
	})

	t.Run("should reject unknown presets", func(t *testing.T) {
		path := writeFile(t, ".matelint.yaml", `extends: [angular]`)

		_, err := Load(path)

		assert.True(t, errors.Is(err, domainErrors.ErrUnknownPreset))
	})

	t.Run("should reject unsupported extensions", func(t *testing.T) {
		path := writeFile(t, "commitlint.config.js", `module.exports = {}`)

		_, err := Load(path)

		assert.True(t, errors.Is(err, domainErrors.ErrUnsupportedFormat))
	})

	t.Run("should report missing files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), ".matelint.toml"))

		assert.True(t, errors.Is(err, domainErrors.ErrReadRules))
	})
}

func TestDiscover(t *testing.T) {
	t.Run("should find a configuration in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".commitlintrc.json"), []byte(`{}`), 0644))
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		path, err := Discover(nested)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".commitlintrc.json"), path)
	})

	t.Run("should prefer matelint files over commitlintrc", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".commitlintrc.json"), []byte(`{}`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".matelint.yaml"), []byte(`{}`), 0644))

		path, err := Discover(root)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".matelint.yaml"), path)
	})
}

func TestEncode(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run("should round trip the gitmoji preset as "+string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, Gitmoji(), format))

			file, err := Decode(buf.Bytes(), format)
			require.NoError(t, err)
			rs, err := file.Resolve()
			require.NoError(t, err)
			require.NoError(t, rs.Validate())

			want := Gitmoji()
			assert.Equal(t, want.Parser, rs.Parser)
			assert.Equal(t, want.Ignores, rs.Ignores)
			assert.Equal(t, want.Prompt, rs.Prompt)
			assert.Equal(t, len(want.Rules), len(rs.Rules))
			for name, rc := range want.Rules {
				assert.Equal(t, rc.Raw(), rs.Rules[name].Raw(), name)
			}
		})
	}

	t.Run("should reject unknown formats", func(t *testing.T) {
		err := Encode(&bytes.Buffer{}, Gitmoji(), Format("xml"))

		assert.True(t, errors.Is(err, domainErrors.ErrUnsupportedFormat))
	})
}

func TestPreset(t *testing.T) {
	_, ok := Preset("commitlint-config-gitmoji")
	assert.True(t, ok)

	_, ok = Preset("angular")
	assert.False(t, ok)

	assert.Equal(t, []string{"conventional", "gitmoji"}, PresetNames())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
