package absa

import (
	"strings"
	"unicode/utf8"
)

// contextRadius is how many characters of context are kept on each side of a
// keyword occurrence. Each window is the unit of polarity evidence.
const contextRadius = 50

// confidenceSaturation is the indicator-hit count at which confidence
// reaches 1.0.
const confidenceSaturation = 3.0

// AspectSentiment is the per-aspect verdict for one review text.
// Score is in [-1, 1], confidence in [0, 1].
type AspectSentiment struct {
	Aspect     Aspect    `json:"aspect"`
	Sentiment  Sentiment `json:"sentiment"`
	Score      float64   `json:"score"`
	Confidence float64   `json:"confidence"`
}

func neutralAspectSentiment(aspect Aspect) AspectSentiment {
	return AspectSentiment{Aspect: aspect, Sentiment: SentimentNeutral}
}

// ScoreAspect derives the sentiment carried by text toward one aspect.
//
// Every occurrence of every aspect keyword contributes a context window of
// up to contextRadius characters on each side; windows from repeated or
// nearby keywords may overlap and all of them are kept. Positive and
// negative indicator words are then counted once per window they appear in,
// cumulatively across windows.
//
// With p positive and n negative hits the score is min(1, p/(p+n+1)) for a
// positive majority, the negated mirror for a negative one, and 0 on a tie.
// The +1 keeps sparse evidence conservative: a single unopposed hit scores
// 0.5, never 1.0. Confidence is min(1, (p+n)/3), zero when nothing was
// found.
//
// Blank text and texts with no keyword occurrence both return the neutral
// zero-confidence result; only an unknown aspect or language tag errors.
func (a *Analyzer) ScoreAspect(text string, aspect Aspect, lang Language) (AspectSentiment, error) {
	lang, err := resolveLanguage(text, lang)
	if err != nil {
		return AspectSentiment{}, err
	}
	keywords, err := a.lexicon.Keywords(aspect, lang)
	if err != nil {
		return AspectSentiment{}, err
	}
	if strings.TrimSpace(text) == "" {
		return neutralAspectSentiment(aspect), nil
	}

	lowered := strings.ToLower(text)

	var contexts []string
	for _, keyword := range keywords {
		contexts = append(contexts, contextWindows(lowered, keyword)...)
	}
	if len(contexts) == 0 {
		return neutralAspectSentiment(aspect), nil
	}

	positive, _ := a.lexicon.Indicators(SentimentPositive, lang)
	negative, _ := a.lexicon.Indicators(SentimentNegative, lang)

	var positiveCount, negativeCount int
	for _, context := range contexts {
		for _, word := range positive {
			if a.lexicon.Matches(context, word) {
				positiveCount++
			}
		}
		for _, word := range negative {
			if a.lexicon.Matches(context, word) {
				negativeCount++
			}
		}
	}

	result := AspectSentiment{Aspect: aspect}
	total := float64(positiveCount + negativeCount)
	switch {
	case positiveCount > negativeCount:
		result.Sentiment = SentimentPositive
		result.Score = min(1.0, float64(positiveCount)/(total+1))
	case negativeCount > positiveCount:
		result.Sentiment = SentimentNegative
		result.Score = -min(1.0, float64(negativeCount)/(total+1))
	default:
		result.Sentiment = SentimentNeutral
	}
	if total > 0 {
		result.Confidence = min(1.0, total/confidenceSaturation)
	}
	return result, nil
}

// contextWindows finds every non-overlapping occurrence of keyword in the
// already-lowercased text and cuts a window of contextRadius characters
// around each. Windows are clamped to the text bounds and counted in runes,
// not bytes, so Arabic context is not half-width.
func contextWindows(lowered, keyword string) []string {
	var windows []string
	for offset := 0; ; {
		idx := strings.Index(lowered[offset:], keyword)
		if idx < 0 {
			return windows
		}
		begin := offset + idx
		end := begin + len(keyword)
		windows = append(windows, window(lowered, begin, end))
		offset = end
	}
}

func window(s string, begin, end int) string {
	for i := 0; i < contextRadius && begin > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:begin])
		begin -= size
	}
	for i := 0; i < contextRadius && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[begin:end]
}
