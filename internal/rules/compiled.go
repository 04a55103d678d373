package rules

import (
	"regexp"
	"sort"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	internalRegex "github.com/Tomas-vilte/MateLint/internal/regex"
)

// Compiled is a validated rule set with its patterns compiled. It is never
// modified after Compile returns and is safe to share.
type Compiled struct {
	set      *RuleSet
	header   *regexp.Regexp
	ignores  []func(string) bool
	enabled  []string
	prompted map[string]bool
}

// Compile validates rs and prepares it for linting. rs is copied, so later
// changes to it are not seen by the result.
func Compile(rs *RuleSet) (*Compiled, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	set := rs.clone()

	header, err := regexp.Compile(set.Parser.HeaderPattern)
	if err != nil {
		return nil, domainErrors.ErrInvalidRules.WithError(err)
	}

	c := &Compiled{
		set:      set,
		header:   header,
		prompted: make(map[string]bool),
	}

	for _, ig := range set.Ignores {
		c.ignores = append(c.ignores, ignorePredicate(ig))
	}
	if set.UseDefaultIgnores() {
		for _, re := range internalRegex.DefaultIgnores {
			c.ignores = append(c.ignores, re.MatchString)
		}
	}

	for name, rc := range set.Rules {
		if rc.Enabled() {
			c.enabled = append(c.enabled, name)
		}
	}
	sort.Strings(c.enabled)

	for _, choice := range set.Prompt.Questions[QuestionType].Enum {
		if choice.Emoji != "" {
			c.prompted[choice.Emoji] = true
		}
	}

	return c, nil
}

// MustCompile is Compile for presets known to be valid.
func MustCompile(rs *RuleSet) *Compiled {
	c, err := Compile(rs)
	if err != nil {
		panic(err)
	}
	return c
}

func ignorePredicate(ig IgnoreRule) func(string) bool {
	switch {
	case ig.Contains != "":
		return func(msg string) bool { return strings.Contains(msg, ig.Contains) }
	case ig.Prefix != "":
		return func(msg string) bool { return strings.HasPrefix(msg, ig.Prefix) }
	default:
		return regexp.MustCompile(ig.Pattern).MatchString
	}
}

// Set returns the rule set. Callers must not modify it.
func (c *Compiled) Set() *RuleSet { return c.set }

func (c *Compiled) Header() *regexp.Regexp { return c.header }

func (c *Compiled) Correspondence() []string { return c.set.Parser.HeaderCorrespondence }

// Ignored reports whether message matches any ignore predicate.
func (c *Compiled) Ignored(message string) bool {
	for _, match := range c.ignores {
		if match(message) {
			return true
		}
	}
	return false
}

// Enabled returns the names of rules with a level above 0, sorted.
func (c *Compiled) Enabled() []string { return c.enabled }

// Rule returns the configuration of the named rule.
func (c *Compiled) Rule(name string) (RuleConfig, bool) {
	rc, ok := c.set.Rules[name]
	return rc, ok
}

// Active reports whether the named rule is enabled.
func (c *Compiled) Active(name string) bool {
	rc, ok := c.set.Rules[name]
	return ok && rc.Enabled()
}

const variationSelector = "\ufe0f"

// KnownEmoji reports whether emoji is offered by the type prompt, ignoring
// a trailing variation selector.
func (c *Compiled) KnownEmoji(emoji string) bool {
	if c.prompted[emoji] {
		return true
	}
	bare := strings.TrimSuffix(emoji, variationSelector)
	return c.prompted[bare] || c.prompted[bare+variationSelector]
}
