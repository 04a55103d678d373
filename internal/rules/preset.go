package rules

import (
	"sort"
	"strings"
)

const (
	PresetGitmoji      = "gitmoji"
	PresetConventional = "conventional"
)

// GitmojiHeaderPattern matches "<emoji> <type>(<scope>)!: <subject>". The
// emoji is either a :shortcode: or a single pictograph, optionally followed by
// the U+FE0F variation selector.
const GitmojiHeaderPattern = `^(:[\w-]+:|[\x{1F300}-\x{1F64F}\x{1F680}-\x{1F6FF}\x{2300}-\x{23FF}\x{2600}-\x{2B55}]\x{FE0F}?)\s(\w+)(?:\(([^)]+)\))?!?:\s(.+)$`

// ConventionalHeaderPattern matches "<type>(<scope>)!: <subject>".
const ConventionalHeaderPattern = `^(\w*)(?:\((.*)\))?!?: (.*)$`

// DefaultHelpURL is printed under failing reports.
const DefaultHelpURL = "https://github.com/conventional-changelog/commitlint/#what-is-commitlint"

var presets = map[string]func() *RuleSet{
	PresetGitmoji:      Gitmoji,
	PresetConventional: Conventional,
}

var presetAliases = map[string]string{
	"commitlint-config-gitmoji":        PresetGitmoji,
	"@commitlint/config-conventional": PresetConventional,
	"config-conventional":             PresetConventional,
}

// Preset returns a fresh copy of the named preset.
func Preset(name string) (*RuleSet, bool) {
	if alias, ok := presetAliases[name]; ok {
		name = alias
	}
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var commitTypes = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"build",
	"ci",
	"chore",
	"revert",
}

var forbiddenSubjectCases = []string{"sentence-case", "start-case", "pascal-case", "upper-case"}

func typeChoices() map[string]PromptChoice {
	return map[string]PromptChoice{
		"feat":     {Description: "✨ A new feature", Title: "Features", Emoji: "✨"},
		"fix":      {Description: "🐛 A bug fix", Title: "Bug Fixes", Emoji: "🐛"},
		"docs":     {Description: "📝 Documentation only changes", Title: "Documentation", Emoji: "📝"},
		"style":    {Description: "🎨 Code style changes (formatting, etc)", Title: "Styles", Emoji: "🎨"},
		"refactor": {Description: "♻️ Code refactoring", Title: "Code Refactoring", Emoji: "♻️"},
		"perf":     {Description: "⚡ Performance improvements", Title: "Performance", Emoji: "⚡"},
		"test":     {Description: "✅ Adding or updating tests", Title: "Tests", Emoji: "✅"},
		"build":    {Description: "📦 Build system or dependencies", Title: "Builds", Emoji: "📦"},
		"ci":       {Description: "🔄 CI/CD configuration", Title: "CI/CD", Emoji: "🔄"},
		"chore":    {Description: "🔧 Other changes (maintenance)", Title: "Chores", Emoji: "🔧"},
		"revert":   {Description: "⏪ Revert a previous commit", Title: "Reverts", Emoji: "⏪"},
	}
}

func promptQuestions(scopeHint string) map[string]PromptQuestion {
	return map[string]PromptQuestion{
		QuestionType: {
			Description: "Select the type of change that you're committing",
			Enum:        typeChoices(),
		},
		QuestionScope:           {Description: scopeHint},
		QuestionSubject:         {Description: "Write a short, imperative tense description of the change"},
		QuestionBody:            {Description: "Provide a longer description of the change"},
		QuestionIsBreaking:      {Description: "Are there any breaking changes?"},
		QuestionBreakingBody:    {Description: "A BREAKING CHANGE commit requires a body. Please enter a longer description"},
		QuestionBreaking:        {Description: "Describe the breaking changes"},
		QuestionIsIssueAffected: {Description: "Does this change affect any open issues?"},
		QuestionIssuesBody:      {Description: "If issues are closed, the commit requires a body. Please enter a longer description"},
		QuestionIssues:          {Description: `Add issue references (e.g. "fix #123", "re #456")`},
	}
}

// Gitmoji is the emoji-prefixed conventional commit configuration:
//
//	✨ feat(Core): add new feature
//	🐛 fix(Gateway): fix authentication bug
//	💥 feat!: breaking change
func Gitmoji() *RuleSet {
	return &RuleSet{
		Name: PresetGitmoji,
		Parser: ParserOptions{
			HeaderPattern:        GitmojiHeaderPattern,
			HeaderCorrespondence: []string{"emoji", "type", "scope", "subject"},
		},
		Rules: map[string]RuleConfig{
			"header-max-length": Rule(LevelError, Always, 100),
			"type-empty":        Rule(LevelDisabled, ""),
			"subject-empty":     Rule(LevelError, Never),
			"subject-case":      Rule(LevelError, Never, append([]string(nil), forbiddenSubjectCases...)),
			"scope-enum": Rule(LevelError, Always, []string{
				"Core",
				"Gateway",
				"Docker",
				"Config",
				"Logging",
				"CI/CD",
				"deps",
				"deps-dev",
				"release",
			}),
			"scope-case": Rule(LevelError, Always, []string{"pascal-case"}),
			"type-enum":  Rule(LevelError, Always, append([]string(nil), commitTypes...)),
			"type-case":  Rule(LevelError, Always, []string{"lower-case"}),
		},
		Ignores: []IgnoreRule{
			{Contains: "[skip ci]"},
			{Contains: "chore(release)"},
			{Prefix: "Merge"},
			{Prefix: "Initial commit"},
		},
		HelpURL: DefaultHelpURL,
		Prompt: Prompt{
			Questions: promptQuestions("What is the scope of this change (e.g. Core, Gateway, Docker)"),
		},
	}
}

// Conventional is the plain conventional commit configuration.
func Conventional() *RuleSet {
	return &RuleSet{
		Name: PresetConventional,
		Parser: ParserOptions{
			HeaderPattern:        ConventionalHeaderPattern,
			HeaderCorrespondence: []string{"type", "scope", "subject"},
		},
		Rules: map[string]RuleConfig{
			"body-leading-blank":     Rule(LevelWarning, Always),
			"body-max-line-length":   Rule(LevelError, Always, 100),
			"footer-leading-blank":   Rule(LevelWarning, Always),
			"footer-max-line-length": Rule(LevelError, Always, 100),
			"header-max-length":      Rule(LevelError, Always, 100),
			"header-trim":            Rule(LevelError, Always),
			"subject-case":           Rule(LevelError, Never, append([]string(nil), forbiddenSubjectCases...)),
			"subject-empty":          Rule(LevelError, Never),
			"subject-full-stop":      Rule(LevelError, Never, "."),
			"type-case":              Rule(LevelError, Always, []string{"lower-case"}),
			"type-empty":             Rule(LevelError, Never),
			"type-enum":              Rule(LevelError, Always, append([]string(nil), commitTypes...)),
		},
		HelpURL: DefaultHelpURL,
		Prompt: Prompt{
			Questions: promptQuestions("What is the scope of this change (e.g. component or file name)"),
		},
	}
}
