// Package prompt builds a commit message interactively from the prompt
// metadata of a rule set.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/lint"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/rules"
	"github.com/Tomas-vilte/MateLint/internal/ui"
)

// Answers holds everything the questionnaire collected.
type Answers struct {
	Type           string
	Emoji          string
	Scope          string
	Subject        string
	Body           string
	IsBreaking     bool
	Breaking       string
	IssuesAffected bool
	Issues         string
}

type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	t      *i18n.Translations
	rules  *rules.Compiled
	linter *lint.Linter
}

func NewPrompter(in io.Reader, out io.Writer, t *i18n.Translations, linter *lint.Linter) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		t:      t,
		rules:  linter.Rules(),
		linter: linter,
	}
}

// Run asks every question, composes the message and lints it. The message
// is returned together with ErrPromptInvalid when it breaks an error-level rule.
func (p *Prompter) Run(ctx context.Context) (string, error) {
	answers, err := p.Ask(ctx)
	if err != nil {
		return "", err
	}

	message := Compose(p.rules, answers)
	logger.Debug(ctx, "composed commit message", "type", answers.Type, "scope", answers.Scope)

	report, err := p.linter.Lint(ctx, message)
	if err != nil {
		return "", err
	}
	if !report.Valid || len(report.Warnings) > 0 {
		_, _ = fmt.Fprintln(p.out)
		if err := ui.FormatReport(p.out, report, ui.ReportOptions{
			HelpURL:      p.rules.Set().HelpURL,
			Translations: p.t,
		}); err != nil {
			return "", err
		}
	}
	if !report.Valid {
		return message, domainErrors.ErrPromptInvalid.WithContext("problems", len(report.Errors))
	}
	return message, nil
}

// Ask walks the questions in order: type, scope, subject, body, breaking
// change and affected issues.
func (p *Prompter) Ask(ctx context.Context) (Answers, error) {
	var a Answers
	steps := []func(context.Context, *Answers) error{
		p.askType,
		p.askScope,
		p.askSubject,
		p.askBody,
		p.askBreaking,
		p.askIssues,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return Answers{}, err
		}
		if err := step(ctx, &a); err != nil {
			return Answers{}, err
		}
	}
	return a, nil
}

func (p *Prompter) askType(_ context.Context, a *Answers) error {
	choices := p.rules.Set().Choices()
	allowed := p.enumValues("type-enum")

	if len(choices) == 0 {
		value, err := p.askUntil(question{key: rules.QuestionType, check: func(v string) (string, bool) {
			if v == "" {
				return p.msg("prompt.required"), false
			}
			if len(allowed) > 0 && !contains(allowed, v) {
				return p.msg("prompt.invalid_choice"), false
			}
			return "", true
		}})
		a.Type = value
		return err
	}

	p.printQuestion(rules.QuestionType, "")
	for i, c := range choices {
		_, _ = fmt.Fprintf(p.out, "  %2d) %-10s %s\n", i+1, c.Name, c.Description)
	}

	for {
		p.printInput(p.msg("prompt.choose"))
		line, err := p.readLine()
		if err != nil {
			return err
		}
		choice, ok := pick(line, choices)
		if ok && (len(allowed) == 0 || contains(allowed, choice.Name)) {
			a.Type = choice.Name
			if p.hasField("emoji") {
				a.Emoji = choice.Emoji
			}
			return nil
		}
		ui.PrintWarning(p.out, p.msg("prompt.invalid_choice"))
	}
}

func (p *Prompter) askScope(_ context.Context, a *Answers) error {
	if !p.hasField("scope") {
		return nil
	}
	required := p.required("scope-empty")
	scopes := p.enumValues("scope-enum")

	if len(scopes) > 0 {
		p.printQuestion(rules.QuestionScope, p.optionalHint(required))
		for i, s := range scopes {
			_, _ = fmt.Fprintf(p.out, "  %2d) %s\n", i+1, s)
		}
	}

	q := question{
		key:    rules.QuestionScope,
		hint:   p.optionalHint(required),
		listed: len(scopes) > 0,
		check: func(v string) (string, bool) {
			if v == "" {
				if required {
					return p.msg("prompt.required"), false
				}
				return "", true
			}
			if len(scopes) > 0 && !contains(scopes, v) {
				return p.msg("prompt.invalid_choice"), false
			}
			return "", true
		},
		normalize: func(v string) string {
			if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(scopes) {
				return scopes[n-1]
			}
			return v
		},
	}
	value, err := p.askUntil(q)
	a.Scope = value
	return err
}

func (p *Prompter) askSubject(_ context.Context, a *Answers) error {
	value, err := p.askUntil(question{key: rules.QuestionSubject, check: func(v string) (string, bool) {
		if v == "" {
			return p.msg("prompt.required"), false
		}
		if limit, ok := p.maxHeader(); ok {
			draft := *a
			draft.Subject = v
			if n := utf8.RuneCountInString(header(p.rules, draft)); n > limit {
				return p.t.GetMessage("prompt.header_too_long", 0, map[string]interface{}{
					"Max":    limit,
					"Length": n,
				}), false
			}
		}
		return "", true
	}})
	a.Subject = value
	return err
}

func (p *Prompter) askBody(_ context.Context, a *Answers) error {
	value, err := p.askUntil(question{key: rules.QuestionBody, hint: p.optionalHint(false), check: accept})
	a.Body = multiline(value)
	return err
}

func (p *Prompter) askBreaking(_ context.Context, a *Answers) error {
	yes, err := p.confirm(rules.QuestionIsBreaking)
	if err != nil || !yes {
		return err
	}
	a.IsBreaking = true

	if a.Body == "" {
		body, err := p.askUntil(question{key: rules.QuestionBreakingBody, check: p.nonEmpty})
		if err != nil {
			return err
		}
		a.Body = multiline(body)
	}

	value, err := p.askUntil(question{key: rules.QuestionBreaking, hint: p.optionalHint(false), check: accept})
	a.Breaking = value
	return err
}

func (p *Prompter) askIssues(_ context.Context, a *Answers) error {
	yes, err := p.confirm(rules.QuestionIsIssueAffected)
	if err != nil || !yes {
		return err
	}
	a.IssuesAffected = true

	if a.Body == "" && !a.IsBreaking {
		body, err := p.askUntil(question{key: rules.QuestionIssuesBody, check: p.nonEmpty})
		if err != nil {
			return err
		}
		a.Body = multiline(body)
	}

	value, err := p.askUntil(question{key: rules.QuestionIssues, check: p.nonEmpty})
	a.Issues = value
	return err
}

type question struct {
	key  string
	hint string
	// listed means the choices were already printed under the question.
	listed    bool
	normalize func(string) string
	// check returns the warning shown when the answer is rejected.
	check func(string) (string, bool)
}

// askUntil repeats q until its check accepts the trimmed answer.
func (p *Prompter) askUntil(q question) (string, error) {
	for {
		if q.listed {
			p.printInput(p.msg("prompt.choose"))
		} else {
			p.printQuestion(q.key, q.hint)
			p.printInput("")
		}
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if q.normalize != nil {
			value = q.normalize(value)
		}
		reason, ok := q.check(value)
		if ok {
			return value, nil
		}
		ui.PrintWarning(p.out, reason)
	}
}

func (p *Prompter) confirm(key string) (bool, error) {
	p.printQuestion(key, p.msg("prompt.yes_no"))
	p.printInput("")
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) nonEmpty(v string) (string, bool) {
	if v == "" {
		return p.msg("prompt.required"), false
	}
	return "", true
}

func accept(string) (string, bool) { return "", true }

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", domainErrors.ErrPromptAborted
		}
		return "", domainErrors.ErrPromptAborted.WithError(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) printQuestion(key, hint string) {
	q := p.rules.Set().Prompt.Questions[key]
	text := q.Description
	if text == "" {
		text = key
	}
	if hint != "" {
		text += " " + ui.Dim.Sprint(hint)
	}
	_, _ = fmt.Fprintf(p.out, "%s %s\n", ui.Info.Sprint("?"), ui.Bold.Sprint(text))
}

func (p *Prompter) printInput(label string) {
	if label != "" {
		_, _ = fmt.Fprintf(p.out, "%s ", ui.Dim.Sprint(label))
	}
	_, _ = fmt.Fprint(p.out, ui.Accent.Sprint("› "))
}

func (p *Prompter) optionalHint(required bool) string {
	if required {
		return ""
	}
	return p.msg("prompt.optional")
}

func (p *Prompter) msg(id string) string { return p.t.GetMessage(id, 0, nil) }

func (p *Prompter) hasField(name string) bool {
	return contains(p.rules.Correspondence(), name)
}

// enumValues returns the allowed values of an enum rule, or nil when the
// rule is off or applied with never.
func (p *Prompter) enumValues(name string) []string {
	rc, ok := p.rules.Rule(name)
	if !ok || !rc.Enabled() || rc.Negated() {
		return nil
	}
	return rc.Strings()
}

// required reports whether an error-level "<field>-empty never" rule is set.
func (p *Prompter) required(name string) bool {
	rc, ok := p.rules.Rule(name)
	return ok && rc.Level == rules.LevelError && rc.Negated()
}

func (p *Prompter) maxHeader() (int, bool) {
	rc, ok := p.rules.Rule("header-max-length")
	if !ok || !rc.Enabled() {
		return 0, false
	}
	return rc.Int(), true
}

func pick(line string, choices []rules.NamedChoice) (rules.NamedChoice, bool) {
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return rules.NamedChoice{}, false
	}
	for _, c := range choices {
		if strings.EqualFold(c.Name, line) {
			return c, true
		}
	}
	return rules.NamedChoice{}, false
}

func multiline(s string) string {
	parts := strings.Split(s, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
