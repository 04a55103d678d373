package lint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomas-vilte/MateLint/internal/casing"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/regex"
	"github.com/Tomas-vilte/MateLint/internal/rules"
)

// checkFunc reports whether the commit satisfies the rule, with the message
// shown when it does not.
type checkFunc func(l *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error)

type field func(c models.Commit) string

var (
	headerOf  field = func(c models.Commit) string { return c.Header }
	typeOf    field = func(c models.Commit) string { return c.Type }
	scopeOf   field = func(c models.Commit) string { return c.Scope }
	subjectOf field = func(c models.Commit) string { return c.Subject }
	bodyOf    field = func(c models.Commit) string { return c.Body }
	footerOf  field = func(c models.Commit) string { return c.Footer }
	emojiOf   field = func(c models.Commit) string { return c.Emoji }
)

var checks = map[string]checkFunc{
	"header-max-length":        maxLength("header", headerOf),
	"header-min-length":        minLength("header", headerOf),
	"header-case":              caseOf("header", headerOf, false),
	"header-full-stop":         fullStop("header", headerOf),
	"header-trim":              headerTrim,
	"type-empty":               empty("type", typeOf),
	"type-enum":                enum("type", typeOf, false),
	"type-case":                caseOf("type", typeOf, false),
	"type-max-length":          maxLength("type", typeOf),
	"type-min-length":          minLength("type", typeOf),
	"scope-empty":              empty("scope", scopeOf),
	"scope-enum":               enum("scope", scopeOf, true),
	"scope-case":               caseOf("scope", scopeOf, true),
	"scope-max-length":         maxLength("scope", scopeOf),
	"scope-min-length":         minLength("scope", scopeOf),
	"subject-empty":            empty("subject", subjectOf),
	"subject-case":             caseOf("subject", subjectOf, false),
	"subject-full-stop":        fullStop("subject", subjectOf),
	"subject-max-length":       maxLength("subject", subjectOf),
	"subject-min-length":       minLength("subject", subjectOf),
	"subject-exclamation-mark": exclamationMark,
	"body-leading-blank":       leadingBlank("body", bodyOf),
	"body-empty":               empty("body", bodyOf),
	"body-max-line-length":     maxLineLength("body", bodyOf),
	"body-max-length":          maxLength("body", bodyOf),
	"body-min-length":          minLength("body", bodyOf),
	"footer-leading-blank":     leadingBlank("footer", footerOf),
	"footer-empty":             empty("footer", footerOf),
	"footer-max-line-length":   maxLineLength("footer", footerOf),
	"references-empty":         referencesEmpty,
	"emoji-empty":              empty("emoji", emojiOf),
	"emoji-enum":               emojiEnum,
}

const variationSelector = "\ufe0f"

// negation renders "be" as "not be" for rules applied with never.
func negation(rc rules.RuleConfig, word string) string {
	if rc.Negated() {
		return "not " + word
	}
	return word
}

func empty(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		isEmpty := strings.TrimSpace(get(c)) == ""
		if rc.Negated() {
			return !isEmpty, name + " may not be empty", nil
		}
		return isEmpty, name + " must be empty", nil
	}
}

func enum(name string, get field, splitScopes bool) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		value := get(c)
		msg := fmt.Sprintf("%s must %s one of [%s]", name, negation(rc, "be"), strings.Join(rc.Strings(), ", "))
		if value == "" {
			return true, msg, nil
		}

		allowed := rc.Strings()
		segments := []string{value}
		if splitScopes {
			segments = regex.ScopeDelims.Split(value, -1)
		}

		if rc.Negated() {
			if contains(allowed, value) {
				return false, msg, nil
			}
			for _, s := range segments {
				if contains(allowed, s) {
					return false, msg, nil
				}
			}
			return true, msg, nil
		}

		if contains(allowed, value) {
			return true, msg, nil
		}
		for _, s := range segments {
			if !contains(allowed, s) {
				return false, msg, nil
			}
		}
		return true, msg, nil
	}
}

func caseOf(name string, get field, splitScopes bool) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		value := get(c)
		names := rc.Strings()
		msg := fmt.Sprintf("%s must %s %s", name, negation(rc, "be"), strings.Join(names, ", "))
		if value == "" {
			return true, msg, nil
		}
		// Subjects that open with a digit or punctuation have no case.
		if name == "subject" && !startsWithLetter(value) {
			return true, msg, nil
		}

		cs := make([]casing.Case, 0, len(names))
		for _, n := range names {
			cs = append(cs, casing.Case(n))
		}

		segments := []string{value}
		if splitScopes {
			segments = regex.ScopeDelims.Split(value, -1)
		}

		for _, segment := range segments {
			if segment == "" {
				continue
			}
			matches, err := casing.IsAny(segment, cs)
			if err != nil {
				return false, "", err
			}
			if matches == rc.Negated() {
				return false, msg, nil
			}
		}
		return true, msg, nil
	}
}

func maxLength(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		n := utf8.RuneCountInString(get(c))
		return n <= rc.Int(),
			fmt.Sprintf("%s must not be longer than %d characters, current length is %d", name, rc.Int(), n), nil
	}
}

func minLength(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		value := get(c)
		if value == "" {
			return true, "", nil
		}
		n := utf8.RuneCountInString(value)
		return n >= rc.Int(),
			fmt.Sprintf("%s must not be shorter than %d characters, current length is %d", name, rc.Int(), n), nil
	}
}

func maxLineLength(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		msg := fmt.Sprintf("%s's lines must not be longer than %d characters", name, rc.Int())
		for _, line := range strings.Split(get(c), "\n") {
			if utf8.RuneCountInString(line) > rc.Int() {
				return false, msg, nil
			}
		}
		return true, msg, nil
	}
}

func fullStop(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		value := get(c)
		if value == "" {
			return true, "", nil
		}
		ends := strings.HasSuffix(value, rc.Char())
		if rc.Negated() {
			return !ends, name + " may not end with full stop", nil
		}
		return ends, name + " must end with full stop", nil
	}
}

func headerTrim(_ *Linter, c models.Commit, _ rules.RuleConfig) (bool, string, error) {
	h := c.Header
	left := strings.TrimLeft(h, " \t") != h
	right := strings.TrimRight(h, " \t") != h
	switch {
	case left && right:
		return false, "header must not be surrounded by whitespace", nil
	case left:
		return false, "header must not start with whitespace", nil
	case right:
		return false, "header must not end with whitespace", nil
	default:
		return true, "", nil
	}
}

func exclamationMark(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
	has := strings.Contains(c.Header, "!:")
	if rc.Negated() {
		return !has, "subject must not have an exclamation mark in the subject to identify a breaking change", nil
	}
	return has, "subject must have an exclamation mark in the subject to identify a breaking change", nil
}

// leadingBlank checks the raw line right above the section is blank.
func leadingBlank(name string, get field) checkFunc {
	return func(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
		section := get(c)
		if section == "" {
			return true, "", nil
		}

		lines := strings.Split(c.Raw, "\n")
		first := strings.SplitN(section, "\n", 2)[0]
		idx := -1
		for i := 1; i < len(lines); i++ {
			if lines[i] == first {
				idx = i
				break
			}
		}

		blank := idx > 1 && strings.TrimSpace(lines[idx-1]) == ""
		if rc.Negated() {
			return !blank, name + " may not have leading blank line", nil
		}
		return blank, name + " must have leading blank line", nil
	}
}

func referencesEmpty(_ *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
	isEmpty := len(c.References) == 0
	if rc.Negated() {
		return !isEmpty, "references may not be empty", nil
	}
	return isEmpty, "references must be empty", nil
}

// emojiEnum accepts the configured emojis, or when none are configured the
// ones offered by the type prompt and any :shortcode:.
func emojiEnum(l *Linter, c models.Commit, rc rules.RuleConfig) (bool, string, error) {
	if c.Emoji == "" {
		return true, "", nil
	}

	allowed := append([]string(nil), rc.Strings()...)
	var in bool
	if len(allowed) > 0 {
		bare := strings.TrimSuffix(c.Emoji, variationSelector)
		in = contains(allowed, bare) || contains(allowed, bare+variationSelector)
	} else {
		in = l.rules.KnownEmoji(c.Emoji) || regex.Shortcode.MatchString(c.Emoji)
		for _, choice := range l.rules.Set().Choices() {
			if choice.Emoji != "" {
				allowed = append(allowed, choice.Emoji)
			}
		}
	}

	if rc.Negated() {
		return !in, fmt.Sprintf("emoji must not be one of [%s]", strings.Join(allowed, ", ")), nil
	}
	return in, fmt.Sprintf("emoji must be one of [%s]", strings.Join(allowed, ", ")), nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
