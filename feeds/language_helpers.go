package feeds

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

func newLanguageDetector() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.AllLanguages()...).
		WithMinimumRelativeDistance(0.25).
		Build()
}

// Map ISO 639-1 codes to lingua languages
func isoToLingua(code string, languages map[lingua.Language]string) (lingua.Language, bool) {
	for lang, isoCode := range languages {
		if isoCode == code {
			return lang, true
		}
	}
	return lingua.Unknown, false
}

func getSupportedLanguages() map[lingua.Language]string {
	languages := make(map[lingua.Language]string)

	// Map all lingua languages to their ISO 639-1 codes
	for _, lang := range lingua.AllLanguages() {
		isoCode := strings.ToLower(lang.IsoCode639_1().String())
		languages[lang] = isoCode
	}

	return languages
}

func targetLanguagesToLingua(languages []string) []lingua.Language {
	linguaLanguages := []lingua.Language{}

	for _, lang := range languages {
		linguaLang, ok := isoToLingua(lang, getSupportedLanguages())
		if ok {
			linguaLanguages = append(linguaLanguages, linguaLang)
		}
	}

	return linguaLanguages
}
