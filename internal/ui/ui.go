package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/i18n"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
	Bold    = color.New(color.Bold)
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Success.Sprint("✔"), Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✖"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Warning.Sprint("⚠"), Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Info.Sprint("ⓘ"), Info.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "\n%s\n", separator)
	_, _ = fmt.Fprintf(w, "%s\n", Accent.Sprint(title))
	_, _ = fmt.Fprintf(w, "%s\n\n", separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// HandleAppError writes err to w in a friendly way.
// If t is nil, English defaults are used.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	suggestionColor := color.New(color.FgCyan)

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "✖ %s: %s\n", appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}
	if path, ok := appErr.Context["path"].(string); ok && path != "" {
		_, _ = Dim.Fprintf(w, "   Path: %s\n", path)
	}
	if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
		_, _ = Dim.Fprintf(w, "   %s\n", stderr)
	}

	if appErr.Suggestion != "" {
		_, _ = fmt.Fprintln(w)
		tryPrefix := "Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = suggestionColor.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "     %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
