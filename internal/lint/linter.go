// Package lint checks commit messages against a compiled rule set.
package lint

import (
	"context"
	"fmt"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/parser"
	"github.com/Tomas-vilte/MateLint/internal/rules"
)

type Linter struct {
	rules  *rules.Compiled
	parser *parser.Parser
}

func NewLinter(c *rules.Compiled) *Linter {
	return &Linter{
		rules:  c,
		parser: parser.New(c),
	}
}

// Rules returns the compiled rule set the linter checks against.
func (l *Linter) Rules() *rules.Compiled { return l.rules }

// Lint parses message and evaluates every enabled rule in name order.
// Ignored messages produce a valid report without problems.
func (l *Linter) Lint(ctx context.Context, message string) (*models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	cleaned := parser.Clean(message)
	if cleaned != "" && l.rules.Ignored(cleaned) {
		log.Debug("message ignored", "source", firstLine(cleaned))
		return &models.Report{
			Input:    cleaned,
			Valid:    true,
			Ignored:  true,
			Errors:   []models.Problem{},
			Warnings: []models.Problem{},
		}, nil
	}
	if cleaned == "" {
		return nil, domainErrors.ErrEmptyMessage
	}

	commit := l.parser.Parse(cleaned)
	log.Debug("parsed commit",
		"type", commit.Type,
		"scope", commit.Scope,
		"emoji", commit.Emoji,
		"breaking", commit.Breaking)

	report := &models.Report{
		Input:    commit.Raw,
		Errors:   []models.Problem{},
		Warnings: []models.Problem{},
	}

	for _, name := range l.rules.Enabled() {
		rc, _ := l.rules.Rule(name)
		check, ok := checks[name]
		if !ok {
			return nil, domainErrors.ErrInvalidRules.WithError(fmt.Errorf("no check for rule %q", name))
		}

		valid, msg, err := check(l, commit, rc)
		if err != nil {
			return nil, err
		}
		if valid {
			continue
		}

		problem := models.Problem{
			Level:   models.Severity(rc.Level),
			Name:    name,
			Message: msg,
		}
		if rc.Level == rules.LevelError {
			report.Errors = append(report.Errors, problem)
		} else {
			report.Warnings = append(report.Warnings, problem)
		}
	}

	report.Valid = len(report.Errors) == 0
	return report, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
