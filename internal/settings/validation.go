package settings

import (
	"errors"
	"strings"
)

// ErrInvalid marks a settings value or document the caller got wrong.
var ErrInvalid = errors.New("invalid settings")

// IsSupportedLanguage reports whether the shell UI ships a translation for lang.
func IsSupportedLanguage(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LanguageEnglish, LanguageRussian:
		return true
	default:
		return false
	}
}
