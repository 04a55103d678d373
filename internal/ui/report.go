package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/fatih/color"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReportFormats lists the accepted values of lint --format.
var ReportFormats = []string{FormatText, FormatJSON}

type ReportOptions struct {
	Format  string
	Verbose bool
	HelpURL string
	// Translations localises the summary line; nil prints English.
	Translations *i18n.Translations
}

var grey = color.New(color.FgHiBlack)

// FormatReport writes r to w. Text output follows the commitlint layout and
// prints nothing for a clean report unless opts.Verbose is set.
func FormatReport(w io.Writer, r *models.Report, opts ReportOptions) error {
	switch opts.Format {
	case "", FormatText:
		formatText(w, r, opts)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	default:
		return domainErrors.ErrUnsupportedOutput.WithContext("format", opts.Format)
	}
}

func formatText(w io.Writer, r *models.Report, opts ReportOptions) {
	problems := len(r.Errors) + len(r.Warnings)
	if problems == 0 && !opts.Verbose {
		return
	}

	header := strings.SplitN(r.Input, "\n", 2)[0]
	_, _ = fmt.Fprintf(w, "%s   input: %s\n", grey.Sprint("⧗"), Bold.Sprint(header))

	for _, p := range r.Errors {
		_, _ = fmt.Fprintf(w, "%s   %s %s\n", Error.Sprint("✖"), p.Message, grey.Sprintf("[%s]", p.Name))
	}
	for _, p := range r.Warnings {
		_, _ = fmt.Fprintf(w, "%s   %s %s\n", Warning.Sprint("⚠"), p.Message, grey.Sprintf("[%s]", p.Name))
	}

	if problems > 0 {
		_, _ = fmt.Fprintln(w)
	}

	sign := Success.Sprint("✔")
	switch {
	case len(r.Errors) > 0:
		sign = Error.Sprint("✖")
	case len(r.Warnings) > 0:
		sign = Warning.Sprint("⚠")
	}
	_, _ = fmt.Fprintf(w, "%s   %s\n", sign, summary(r, opts.Translations))

	if problems > 0 && opts.HelpURL != "" {
		_, _ = fmt.Fprintf(w, "%s   Get help: %s\n", grey.Sprint("ⓘ"), opts.HelpURL)
	}
	_, _ = fmt.Fprintln(w)
}

func summary(r *models.Report, t *i18n.Translations) string {
	if t == nil {
		return fmt.Sprintf("found %d problems, %d warnings", len(r.Errors), len(r.Warnings))
	}
	return t.GetMessage("lint.summary", 0, map[string]interface{}{
		"Problems": len(r.Errors),
		"Warnings": len(r.Warnings),
	})
}
