// Package models defines core data structures for languages, occupations, and canvas requests.
package models

import (
	"errors"
	"fmt"
)

// Language is one of the supported catalog/prompt languages.
type Language string

const (
	LangEnglish Language = "en"
	LangGerman  Language = "de"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
	LangItalian Language = "it"
	LangDutch   Language = "nl"
)

// ErrUnsupportedLanguage is returned for language codes outside the supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// SupportedLanguages lists all supported language codes in a fixed order.
func SupportedLanguages() []Language {
	return []Language{LangEnglish, LangGerman, LangSpanish, LangFrench, LangItalian, LangDutch}
}

// ParseLanguage validates a raw language code. Returns ErrUnsupportedLanguage
// (wrapped with the offending code and the supported set) for anything else.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case LangEnglish, LangGerman, LangSpanish, LangFrench, LangItalian, LangDutch:
		return Language(code), nil
	}
	return "", fmt.Errorf("%w: %q (supported: en, de, es, fr, it, nl)", ErrUnsupportedLanguage, code)
}

// Valid reports whether l is one of the supported codes.
func (l Language) Valid() bool {
	_, err := ParseLanguage(string(l))
	return err == nil
}
