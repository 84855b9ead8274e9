package absa

// DetectLanguage classifies text as Arabic or English by script ratio: the
// share of Arabic-block code points among all Arabic and Latin letters.
// Majority Arabic script wins; everything else, including empty input and
// text with no letters at all, falls back to English.
//
// This is a two-class heuristic, not language identification. Transliterated
// Arabic or heavily mixed-script text can be misclassified; the drift monitor
// cross-checks the call sites that care.
func DetectLanguage(text string) Language {
	var arabicChars, totalChars int
	for _, r := range text {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			arabicChars++
			totalChars++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			totalChars++
		}
	}

	if totalChars == 0 {
		return LanguageEnglish
	}
	if float64(arabicChars)/float64(totalChars) > 0.5 {
		return LanguageArabic
	}
	return LanguageEnglish
}

// resolveLanguage validates the tag and collapses LanguageAuto against the
// text. Every public entry point resolves exactly once and passes the
// concrete language down, so one review never mixes language assignments.
func resolveLanguage(text string, lang Language) (Language, error) {
	lang, err := normalizeLanguage(lang)
	if err != nil {
		return "", err
	}
	if lang == LanguageAuto {
		return DetectLanguage(text), nil
	}
	return lang, nil
}
