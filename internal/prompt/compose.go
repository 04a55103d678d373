package prompt

import (
	"strings"

	"github.com/Tomas-vilte/MateLint/internal/rules"
)

// Compose renders answers as a commit message:
//
//	<emoji> <type>(<scope>)!: <subject>
//
//	<body>
//
//	BREAKING CHANGE: <breaking>
//
//	<issues>
func Compose(c *rules.Compiled, a Answers) string {
	sections := []string{header(c, a)}
	if a.Body != "" {
		sections = append(sections, a.Body)
	}
	if a.IsBreaking && a.Breaking != "" {
		sections = append(sections, "BREAKING CHANGE: "+a.Breaking)
	}
	if a.IssuesAffected && a.Issues != "" {
		sections = append(sections, a.Issues)
	}
	return strings.Join(sections, "\n\n")
}

func header(c *rules.Compiled, a Answers) string {
	var b strings.Builder
	if a.Emoji != "" && contains(c.Correspondence(), "emoji") {
		b.WriteString(a.Emoji)
		b.WriteByte(' ')
	}
	b.WriteString(a.Type)
	if a.Scope != "" {
		b.WriteString("(" + a.Scope + ")")
	}
	if a.IsBreaking {
		b.WriteByte('!')
	}
	b.WriteString(": ")
	b.WriteString(a.Subject)
	return b.String()
}
