package absa

import "strings"

// ExtractAspects returns the aspects whose keywords occur in text, in the
// canonical aspect order. Blank text yields an empty set. The scan
// short-circuits per aspect: one matching keyword flags the aspect and the
// rest of its list is skipped.
func (a *Analyzer) ExtractAspects(text string, lang Language) ([]Aspect, error) {
	lang, err := resolveLanguage(text, lang)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	lowered := strings.ToLower(text)

	var detected []Aspect
	for _, aspect := range AllAspects {
		keywords, err := a.lexicon.Keywords(aspect, lang)
		if err != nil {
			return nil, err
		}
		for _, keyword := range keywords {
			if a.lexicon.Matches(lowered, keyword) {
				detected = append(detected, aspect)
				break
			}
		}
	}

	return detected, nil
}
