// Package absa implements rule-based aspect-based sentiment analysis for
// bilingual (Arabic/English) tourism reviews.
//
// The engine detects which review aspects (location, service, price, ...) a
// text mentions by keyword containment, scores each aspect from sentiment
// indicator words found near the keyword occurrences, and derives an overall
// per-review verdict from an explicit rating when one exists, otherwise from
// the mean of the aspect scores.
//
// All analysis is deterministic given a fixed Lexicon. The Lexicon is
// immutable after construction, so a single Analyzer is safe for concurrent
// use by any number of goroutines.
package absa

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Language tags accepted by the engine. LanguageAuto resolves to a concrete
// language via DetectLanguage before any lookup happens.
type Language string

const (
	LanguageArabic  Language = "arabic"
	LanguageEnglish Language = "english"
	LanguageAuto    Language = "auto"
)

// Sentiment is a three-way polarity label.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Aspect names the fixed facets a tourism review can be scored on.
type Aspect string

const (
	AspectLocation    Aspect = "location"
	AspectCleanliness Aspect = "cleanliness"
	AspectService     Aspect = "service"
	AspectPrice       Aspect = "price"
	AspectFood        Aspect = "food"
	AspectFacility    Aspect = "facility"
	AspectAmbiance    Aspect = "ambiance"
	AspectActivity    Aspect = "activity"
)

// AllAspects lists every supported aspect in its canonical order.
var AllAspects = []Aspect{
	AspectLocation,
	AspectCleanliness,
	AspectService,
	AspectPrice,
	AspectFood,
	AspectFacility,
	AspectAmbiance,
	AspectActivity,
}

// Caller-misuse errors. Bad review text is never an error anywhere in this
// package; these fire only for aspect names or language tags outside the
// supported sets.
var (
	ErrUnknownAspect   = errors.New("[Lexicon] unknown aspect")
	ErrUnknownLanguage = errors.New("[Lexicon] unknown language tag")
)

// MatchStrategy names how keywords are matched against review text.
type MatchStrategy string

// MatchSubstring is case-insensitive substring containment: no tokenization,
// no stemming, no word boundaries. A keyword may match inside a larger word,
// which keeps inflected Arabic forms matchable at the cost of occasional
// false positives.
const MatchSubstring MatchStrategy = "substring"

// LexiconDef is the serializable form of a lexicon, the shape stored in the
// versioned lexicon files the retraining workflow produces.
type LexiconDef struct {
	Aspects  map[Aspect]map[Language][]string `json:"aspects"`
	Positive map[Language][]string            `json:"positive"`
	Negative map[Language][]string            `json:"negative"`
	Strategy MatchStrategy                    `json:"strategy,omitempty"`
}

// Lexicon is the immutable keyword/indicator table set shared by every
// analysis call. Build one with NewLexicon or LoadLexicon; never mutate it.
type Lexicon struct {
	aspects  map[Aspect]map[Language][]string
	positive map[Language][]string
	negative map[Language][]string
	strategy MatchStrategy
}

var supportedLanguages = []Language{LanguageArabic, LanguageEnglish}

// NewLexicon validates def and builds an immutable Lexicon from it. Every
// aspect must carry at least one keyword per supported language and both
// polarities need at least one indicator per language; keywords and
// indicators are lowercased once here so matching never re-folds them.
func NewLexicon(def LexiconDef) (*Lexicon, error) {
	strategy := def.Strategy
	if strategy == "" {
		strategy = MatchSubstring
	}
	if strategy != MatchSubstring {
		return nil, fmt.Errorf("[Lexicon] unsupported match strategy %q", strategy)
	}

	aspects := make(map[Aspect]map[Language][]string, len(AllAspects))
	for _, aspect := range AllAspects {
		byLang, ok := def.Aspects[aspect]
		if !ok {
			return nil, fmt.Errorf("[Lexicon] aspect %q missing from definition", aspect)
		}
		aspects[aspect] = make(map[Language][]string, len(supportedLanguages))
		for _, lang := range supportedLanguages {
			words := lowerAll(byLang[lang])
			if len(words) == 0 {
				return nil, fmt.Errorf("[Lexicon] aspect %q has no %s keywords", aspect, lang)
			}
			aspects[aspect][lang] = words
		}
	}
	for name := range def.Aspects {
		if _, ok := aspects[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAspect, name)
		}
	}

	positive, err := buildIndicators("positive", def.Positive)
	if err != nil {
		return nil, err
	}
	negative, err := buildIndicators("negative", def.Negative)
	if err != nil {
		return nil, err
	}

	return &Lexicon{
		aspects:  aspects,
		positive: positive,
		negative: negative,
		strategy: strategy,
	}, nil
}

// LoadLexicon reads a LexiconDef JSON file, supporting lexicon version swaps
// without a rebuild.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to read %s: %w", path, err)
	}

	var def LexiconDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to parse %s: %w", path, err)
	}

	return NewLexicon(def)
}

// DefaultLexicon returns the compiled-in lexicon. The same instance is
// handed out on every call.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

var defaultLexicon = func() *Lexicon {
	lex, err := NewLexicon(defaultLexiconDef)
	if err != nil {
		panic(fmt.Errorf("[Lexicon] default lexicon is invalid: %w", err))
	}
	return lex
}()

// Strategy reports the matching strategy this lexicon was built with.
func (l *Lexicon) Strategy() MatchStrategy { return l.strategy }

// Keywords returns the keyword list for one aspect in one concrete language.
// The returned slice is shared; callers must not modify it.
func (l *Lexicon) Keywords(aspect Aspect, lang Language) ([]string, error) {
	byLang, ok := l.aspects[aspect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAspect, aspect)
	}
	words, ok := byLang[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return words, nil
}

// Indicators returns the positive or negative indicator words for a concrete
// language. Polarity must be SentimentPositive or SentimentNegative.
func (l *Lexicon) Indicators(polarity Sentiment, lang Language) ([]string, error) {
	var byLang map[Language][]string
	switch polarity {
	case SentimentPositive:
		byLang = l.positive
	case SentimentNegative:
		byLang = l.negative
	default:
		return nil, fmt.Errorf("[Lexicon] no indicator list for polarity %q", polarity)
	}
	words, ok := byLang[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return words, nil
}

// Matches tests one lowercased keyword against lowercased text under the
// lexicon's strategy.
func (l *Lexicon) Matches(loweredText, keyword string) bool {
	// Only MatchSubstring exists today; the switch keeps call sites strategy
	// agnostic when a word-boundary strategy lands.
	switch l.strategy {
	default:
		return strings.Contains(loweredText, keyword)
	}
}

func buildIndicators(polarity string, byLang map[Language][]string) (map[Language][]string, error) {
	out := make(map[Language][]string, len(supportedLanguages))
	for _, lang := range supportedLanguages {
		words := lowerAll(byLang[lang])
		if len(words) == 0 {
			return nil, fmt.Errorf("[Lexicon] no %s indicators for %s", polarity, lang)
		}
		out[lang] = words
	}
	return out, nil
}

func lowerAll(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// normalizeLanguage validates a caller-supplied tag. LanguageAuto passes
// through; resolution against text happens at the call sites that have text.
func normalizeLanguage(lang Language) (Language, error) {
	switch lang {
	case LanguageArabic, LanguageEnglish, LanguageAuto:
		return lang, nil
	case "":
		return LanguageAuto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
}
