package rules

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Tomas-vilte/MateLint/internal/casing"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the rule set is internally consistent.
func (rs *RuleSet) Validate() error {
	if err := rs.validate(); err != nil {
		return domainErrors.ErrInvalidRules.WithError(err).WithContext("path", rs.Name)
	}
	return nil
}

func (rs *RuleSet) validate() error {
	if err := validate.Struct(rs.Parser); err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	header, err := regexp.Compile(rs.Parser.HeaderPattern)
	if err != nil {
		return fmt.Errorf("parser: header_pattern: %w", err)
	}
	if groups := header.NumSubexp(); groups < len(rs.Parser.HeaderCorrespondence) {
		return fmt.Errorf("parser: header_pattern has %d groups but %d correspondence names",
			groups, len(rs.Parser.HeaderCorrespondence))
	}

	if rs.HelpURL != "" {
		if err := validate.Var(rs.HelpURL, "url"); err != nil {
			return fmt.Errorf("help_url: %w", err)
		}
	}

	for _, name := range KnownNames() {
		rc, ok := rs.Rules[name]
		if !ok {
			continue
		}
		if err := validateRule(name, rc); err != nil {
			return err
		}
	}
	for name := range rs.Rules {
		if _, ok := Known[name]; !ok {
			return fmt.Errorf("unknown rule %q", name)
		}
	}

	for i, ig := range rs.Ignores {
		if err := validateIgnore(ig); err != nil {
			return fmt.Errorf("ignores[%d]: %w", i, err)
		}
	}

	if err := validate.Struct(rs.Prompt); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

func validateRule(name string, rc RuleConfig) error {
	if rc.Level < LevelDisabled || rc.Level > LevelError {
		return fmt.Errorf("rule %q: level must be 0, 1 or 2, got %d", name, rc.Level)
	}
	if rc.When != "" && rc.When != Always && rc.When != Never {
		return fmt.Errorf("rule %q: applicable must be %q or %q, got %q", name, Always, Never, rc.When)
	}
	if !rc.Enabled() {
		return nil
	}

	switch Known[name] {
	case KindLength:
		if _, ok := rc.Value.(int); !ok {
			return fmt.Errorf("rule %q: a length is required", name)
		}
		if rc.Int() < 0 {
			return fmt.Errorf("rule %q: length cannot be negative", name)
		}
	case KindCase:
		cs := rc.Strings()
		if len(cs) == 0 {
			return fmt.Errorf("rule %q: at least one case is required", name)
		}
		for _, c := range cs {
			if !casing.Valid(c) {
				return fmt.Errorf("rule %q: unknown case %q", name, c)
			}
		}
	case KindEnum:
		if rc.Value == nil {
			return fmt.Errorf("rule %q: a list of values is required", name)
		}
	}
	return nil
}

func validateIgnore(ig IgnoreRule) error {
	set := 0
	for _, v := range []string{ig.Contains, ig.Prefix, ig.Pattern} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return errors.New("exactly one of contains, prefix or pattern must be set")
	}
	if ig.Pattern != "" {
		if _, err := regexp.Compile(ig.Pattern); err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
	}
	return nil
}
