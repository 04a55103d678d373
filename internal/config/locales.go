package config

import "log/slog"

const (
	LangEN = "en"
	LangES = "es"
)

// SupportedLanguages lists the UI languages with bundled translations.
var SupportedLanguages = []string{LangEN, LangES}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func GetLocaleConfig(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	slog.Warn("language not supported, falling back to English", "language", lang)
	return LangEN
}
