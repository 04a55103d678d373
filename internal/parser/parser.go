// Package parser splits raw commit messages into header fields, body,
// footer, notes and issue references.
package parser

import (
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/regex"
	"github.com/Tomas-vilte/MateLint/internal/rules"
)

const breakingTitle = "BREAKING CHANGE"

type Parser struct {
	header *regexp.Regexp
	fields []string
}

func New(c *rules.Compiled) *Parser {
	return &Parser{
		header: c.Header(),
		fields: c.Correspondence(),
	}
}

// Clean drops git comment lines and everything below the scissors line, and
// trims trailing whitespace.
func Clean(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")

	lines := strings.Split(message, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if regex.Scissors.MatchString(line) {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimRight(strings.Join(kept, "\n"), " \t\n")
}

func (p *Parser) Parse(message string) models.Commit {
	raw := Clean(message)
	commit := models.Commit{Raw: raw}
	if raw == "" {
		return commit
	}

	lines := strings.Split(raw, "\n")
	commit.Header = lines[0]
	commit.Merge = regex.MergeHeader.MatchString(commit.Header)
	commit.Revert = regex.RevertHeader.MatchString(commit.Header)
	p.parseHeader(&commit)

	rest := lines[1:]
	footerStart := len(rest)
	for i, line := range rest {
		if isFooterLine(line) {
			footerStart = i
			break
		}
	}

	commit.Body = trimBlankLines(rest[:footerStart])
	commit.Footer = trimBlankLines(rest[footerStart:])
	commit.Notes = parseNotes(rest[footerStart:])
	commit.References = parseReferences(raw)

	for _, note := range commit.Notes {
		if note.Title == breakingTitle {
			commit.Breaking = true
		}
	}

	return commit
}

func (p *Parser) parseHeader(commit *models.Commit) {
	loc := p.header.FindStringSubmatchIndex(commit.Header)
	if loc == nil {
		return
	}

	subjectStart := -1
	for i, name := range p.fields {
		start, end := loc[2*(i+1)], loc[2*(i+1)+1]
		if start < 0 {
			continue
		}
		value := commit.Header[start:end]
		switch name {
		case "emoji":
			commit.Emoji = value
		case "type":
			commit.Type = value
		case "scope":
			commit.Scope = value
		case "subject":
			commit.Subject = value
			subjectStart = start
		}
	}

	if subjectStart >= 0 {
		prefix := strings.TrimRight(commit.Header[:subjectStart], " \t")
		prefix = strings.TrimSuffix(prefix, ":")
		commit.Breaking = strings.HasSuffix(prefix, "!")
	} else {
		commit.Breaking = strings.Contains(commit.Header, "!:")
	}
}

func isFooterLine(line string) bool {
	return regex.BreakingChange.MatchString(line) || regex.ActionLine.MatchString(line)
}

func parseNotes(lines []string) []models.Note {
	var notes []models.Note
	current := -1

	for _, line := range lines {
		if m := regex.BreakingChange.FindStringSubmatch(line); m != nil {
			notes = append(notes, models.Note{Title: breakingTitle, Text: m[2]})
			current = len(notes) - 1
			continue
		}
		if regex.ActionLine.MatchString(line) {
			current = -1
			continue
		}
		if current >= 0 {
			notes[current].Text += "\n" + line
		}
	}

	for i := range notes {
		notes[i].Text = strings.TrimSpace(notes[i].Text)
	}
	return notes
}

func parseReferences(raw string) []models.Reference {
	var refs []models.Reference
	seen := make(map[string]bool)

	for _, m := range regex.IssueReference.FindAllStringSubmatch(raw, -1) {
		key := strings.ToLower(m[1]) + "#" + m[2]
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, models.Reference{
			Action: strings.ToLower(m[1]),
			Issue:  m[2],
			Raw:    m[0],
		})
	}
	return refs
}

func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
