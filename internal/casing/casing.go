// Package casing checks whether text is written in a given letter case.
//
// A value is in a case when converting it to that case leaves it unchanged.
// Quoted or backticked fragments are ignored, as they usually hold proper
// names, and empty or digit-led values are in every case.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/regex"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Case string

const (
	Lower    Case = "lower-case"
	Upper    Case = "upper-case"
	Camel    Case = "camel-case"
	Kebab    Case = "kebab-case"
	Pascal   Case = "pascal-case"
	Sentence Case = "sentence-case"
	Snake    Case = "snake-case"
	Start    Case = "start-case"
)

// All lists every supported case, in documentation order.
var All = []Case{Lower, Upper, Camel, Kebab, Pascal, Sentence, Snake, Start}

// Casers keep state between calls, so each conversion gets its own.
func toLower(s string) string { return cases.Lower(language.Und).String(s) }

func toUpper(s string) string { return cases.Upper(language.Und).String(s) }

// Valid reports whether name is a supported case.
func Valid(name string) bool {
	for _, c := range All {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Is reports whether value is written in case c.
func Is(value string, c Case) (bool, error) {
	input := strings.TrimSpace(regex.Quoted.ReplaceAllString(value, ""))

	transformed, err := To(input, c)
	if err != nil {
		return false, err
	}
	if transformed == "" {
		return true, nil
	}
	if r, _ := utf8.DecodeRuneInString(transformed); unicode.IsDigit(r) {
		return true, nil
	}
	return transformed == input, nil
}

// IsAny reports whether value is in at least one of the given cases.
func IsAny(value string, cs []Case) (bool, error) {
	for _, c := range cs {
		ok, err := Is(value, c)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// To converts value to case c.
func To(value string, c Case) (string, error) {
	switch c {
	case Lower:
		return toLower(value), nil
	case Upper:
		return toUpper(value), nil
	case Sentence:
		return upperFirst(value), nil
	case Camel:
		return joinWords(Words(value), false), nil
	case Pascal:
		return joinWords(Words(value), true), nil
	case Kebab:
		return lowerJoin(Words(value), "-"), nil
	case Snake:
		return lowerJoin(Words(value), "_"), nil
	case Start:
		words := Words(value)
		for i, w := range words {
			words[i] = upperFirst(w)
		}
		return strings.Join(words, " "), nil
	default:
		return "", domainErrors.ErrUnknownCase.WithContext("case", string(c))
	}
}

// Words splits value on anything that is not a letter or digit and on
// lower-to-upper transitions. Runs of capitals stay together, so "parseHTTPHeader"
// yields parse, HTTP, Header.
func Words(value string) []string {
	runes := []rune(value)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// joinWords concatenates words keeping acronyms intact. A word that is
// already all capitals stays as is; others are lowered and then capitalised
// unless they lead a camel-case value.
func joinWords(words []string, pascal bool) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 && !pascal {
			b.WriteString(toLower(w))
			continue
		}
		if toUpper(w) == w {
			b.WriteString(w)
			continue
		}
		b.WriteString(upperFirst(toLower(w)))
	}
	return b.String()
}

func lowerJoin(words []string, sep string) string {
	for i, w := range words {
		words[i] = toLower(w)
	}
	return strings.Join(words, sep)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return toUpper(string(r)) + s[size:]
}
