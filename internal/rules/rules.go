// Package rules holds the declarative lint configuration: the header
// pattern, the rule table, ignore predicates and prompt metadata.
package rules

import (
	"fmt"
	"math"
	"sort"
)

// Level is the severity of a rule: 0 disables it, 1 warns, 2 fails.
type Level int

const (
	LevelDisabled Level = 0
	LevelWarning  Level = 1
	LevelError    Level = 2
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "disabled"
	}
}

// Applicable says whether the rule condition must hold or must not hold.
type Applicable string

const (
	Always Applicable = "always"
	Never  Applicable = "never"
)

// ValueKind is the shape of the value a rule takes.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindLength
	KindCase
	KindEnum
	KindChar
)

// Known maps every supported rule to the kind of value it takes.
var Known = map[string]ValueKind{
	"header-max-length":        KindLength,
	"header-min-length":        KindLength,
	"header-case":              KindCase,
	"header-full-stop":         KindChar,
	"header-trim":              KindNone,
	"type-empty":               KindNone,
	"type-enum":                KindEnum,
	"type-case":                KindCase,
	"type-max-length":          KindLength,
	"type-min-length":          KindLength,
	"scope-empty":              KindNone,
	"scope-enum":               KindEnum,
	"scope-case":               KindCase,
	"scope-max-length":         KindLength,
	"scope-min-length":         KindLength,
	"subject-empty":            KindNone,
	"subject-case":             KindCase,
	"subject-full-stop":        KindChar,
	"subject-max-length":       KindLength,
	"subject-min-length":       KindLength,
	"subject-exclamation-mark": KindNone,
	"body-leading-blank":       KindNone,
	"body-empty":               KindNone,
	"body-max-line-length":     KindLength,
	"body-max-length":          KindLength,
	"body-min-length":          KindLength,
	"footer-leading-blank":     KindNone,
	"footer-empty":             KindNone,
	"footer-max-line-length":   KindLength,
	"references-empty":         KindNone,
	"emoji-empty":              KindNone,
	"emoji-enum":               KindEnum,
}

// KnownNames returns the supported rule names sorted.
func KnownNames() []string {
	names := make([]string, 0, len(Known))
	for name := range Known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuleConfig is one entry of the rule table, written in files as
// [level, "always"|"never", value].
type RuleConfig struct {
	Level Level
	When  Applicable
	Value any
}

// Rule builds a RuleConfig, mostly for presets and tests.
func Rule(level Level, when Applicable, value ...any) RuleConfig {
	rc := RuleConfig{Level: level, When: when}
	if len(value) > 0 {
		rc.Value = value[0]
	}
	return rc
}

func (r RuleConfig) Enabled() bool { return r.Level > LevelDisabled }

// Negated reports whether the rule is configured with "never".
func (r RuleConfig) Negated() bool { return r.When == Never }

// Int returns the value of a length rule.
func (r RuleConfig) Int() int {
	n, _ := r.Value.(int)
	return n
}

// Strings returns the value of an enum or case rule.
func (r RuleConfig) Strings() []string {
	switch v := r.Value.(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Char returns the value of a full-stop rule, "." by default.
func (r RuleConfig) Char() string {
	if s, ok := r.Value.(string); ok && s != "" {
		return s
	}
	return "."
}

// Raw renders the rule back to its array form.
func (r RuleConfig) Raw() []any {
	out := []any{int(r.Level)}
	if r.When == "" && r.Value == nil {
		return out
	}
	when := r.When
	if when == "" {
		when = Always
	}
	out = append(out, string(when))
	if r.Value != nil {
		out = append(out, r.Value)
	}
	return out
}

// ParseRule converts the array form decoded from TOML, YAML or JSON.
func ParseRule(name string, raw []any) (RuleConfig, error) {
	kind, ok := Known[name]
	if !ok {
		return RuleConfig{}, fmt.Errorf("unknown rule %q", name)
	}
	if len(raw) == 0 || len(raw) > 3 {
		return RuleConfig{}, fmt.Errorf("rule %q: expected [level, when, value], got %d elements", name, len(raw))
	}

	level, err := toInt(raw[0])
	if err != nil {
		return RuleConfig{}, fmt.Errorf("rule %q: level: %w", name, err)
	}
	rc := RuleConfig{Level: Level(level)}

	if len(raw) > 1 {
		when, ok := raw[1].(string)
		if !ok {
			return RuleConfig{}, fmt.Errorf("rule %q: applicable must be a string", name)
		}
		rc.When = Applicable(when)
	}

	if len(raw) > 2 {
		v, err := parseValue(kind, raw[2])
		if err != nil {
			return RuleConfig{}, fmt.Errorf("rule %q: value: %w", name, err)
		}
		rc.Value = v
	}

	return rc, nil
}

func parseValue(kind ValueKind, raw any) (any, error) {
	switch kind {
	case KindLength:
		return toInt(raw)
	case KindChar:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}
		return s, nil
	case KindCase, KindEnum:
		if s, ok := raw.(string); ok {
			return []string{s}, nil
		}
		return toStrings(raw)
	default:
		return raw, nil
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func toStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a list of strings, found %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", v)
	}
}

// IgnoreRule is a predicate over the whole commit message. Exactly one
// field is set.
type IgnoreRule struct {
	Contains string `toml:"contains,omitempty" yaml:"contains,omitempty" json:"contains,omitempty"`
	Prefix   string `toml:"prefix,omitempty" yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Pattern  string `toml:"pattern,omitempty" yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// ParserOptions tells the parser how to split a header into named fields.
type ParserOptions struct {
	HeaderPattern        string   `toml:"header_pattern" yaml:"header_pattern" json:"header_pattern" validate:"required"`
	HeaderCorrespondence []string `toml:"header_correspondence" yaml:"header_correspondence" json:"header_correspondence" validate:"required,min=1,max=4,unique,dive,oneof=emoji type scope subject"`
}

type (
	PromptChoice struct {
		Description string `toml:"description" yaml:"description" json:"description" validate:"required"`
		Title       string `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
		Emoji       string `toml:"emoji,omitempty" yaml:"emoji,omitempty" json:"emoji,omitempty"`
	}

	PromptQuestion struct {
		Description string                  `toml:"description" yaml:"description" json:"description" validate:"required"`
		Enum        map[string]PromptChoice `toml:"enum,omitempty" yaml:"enum,omitempty" json:"enum,omitempty" validate:"dive"`
	}

	Prompt struct {
		Questions map[string]PromptQuestion `toml:"questions,omitempty" yaml:"questions,omitempty" json:"questions,omitempty" validate:"dive"`
	}
)

// Question keys understood by the interactive prompt.
const (
	QuestionType            = "type"
	QuestionScope           = "scope"
	QuestionSubject         = "subject"
	QuestionBody            = "body"
	QuestionIsBreaking      = "isBreaking"
	QuestionBreakingBody    = "breakingBody"
	QuestionBreaking        = "breaking"
	QuestionIsIssueAffected = "isIssueAffected"
	QuestionIssuesBody      = "issuesBody"
	QuestionIssues          = "issues"
)

// RuleSet is a fully resolved configuration.
type RuleSet struct {
	Name           string
	Parser         ParserOptions
	Rules          map[string]RuleConfig
	Ignores        []IgnoreRule
	DefaultIgnores *bool
	HelpURL        string
	Prompt         Prompt
}

// UseDefaultIgnores reports whether the built-in ignores for merges,
// reverts and fixups apply. They do unless explicitly turned off.
func (rs *RuleSet) UseDefaultIgnores() bool {
	return rs.DefaultIgnores == nil || *rs.DefaultIgnores
}

// Choices returns the prompt choices for the type question ordered like
// the type-enum rule, then alphabetically for the rest.
func (rs *RuleSet) Choices() []NamedChoice {
	q := rs.Prompt.Questions[QuestionType]
	order := rs.Rules["type-enum"].Strings()

	seen := make(map[string]bool, len(q.Enum))
	out := make([]NamedChoice, 0, len(q.Enum))
	for _, name := range order {
		if c, ok := q.Enum[name]; ok {
			out = append(out, NamedChoice{Name: name, PromptChoice: c})
			seen[name] = true
		}
	}

	rest := make([]string, 0)
	for name := range q.Enum {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, NamedChoice{Name: name, PromptChoice: q.Enum[name]})
	}
	return out
}

type NamedChoice struct {
	Name string
	PromptChoice
}

func (rs *RuleSet) clone() *RuleSet {
	out := &RuleSet{
		Name:    rs.Name,
		Parser:  rs.Parser,
		Rules:   make(map[string]RuleConfig, len(rs.Rules)),
		Ignores: append([]IgnoreRule(nil), rs.Ignores...),
		HelpURL: rs.HelpURL,
		Prompt:  Prompt{Questions: make(map[string]PromptQuestion, len(rs.Prompt.Questions))},
	}
	out.Parser.HeaderCorrespondence = append([]string(nil), rs.Parser.HeaderCorrespondence...)
	if rs.DefaultIgnores != nil {
		v := *rs.DefaultIgnores
		out.DefaultIgnores = &v
	}
	for k, v := range rs.Rules {
		if list, ok := v.Value.([]string); ok {
			v.Value = append([]string(nil), list...)
		}
		out.Rules[k] = v
	}
	for k, q := range rs.Prompt.Questions {
		if q.Enum != nil {
			enum := make(map[string]PromptChoice, len(q.Enum))
			for name, choice := range q.Enum {
				enum[name] = choice
			}
			q.Enum = enum
		}
		out.Prompt.Questions[k] = q
	}
	return out
}

// merge layers o on top of rs: rules and prompt questions override key by
// key, ignores accumulate, parser and help URL are replaced when set.
func (rs *RuleSet) merge(o *RuleSet) {
	if o.Parser.HeaderPattern != "" {
		rs.Parser = o.Parser
	}
	if rs.Rules == nil {
		rs.Rules = make(map[string]RuleConfig)
	}
	for k, v := range o.Rules {
		rs.Rules[k] = v
	}
	rs.Ignores = append(rs.Ignores, o.Ignores...)
	if o.DefaultIgnores != nil {
		rs.DefaultIgnores = o.DefaultIgnores
	}
	if o.HelpURL != "" {
		rs.HelpURL = o.HelpURL
	}
	if rs.Prompt.Questions == nil {
		rs.Prompt.Questions = make(map[string]PromptQuestion)
	}
	for k, v := range o.Prompt.Questions {
		rs.Prompt.Questions[k] = v
	}
}
