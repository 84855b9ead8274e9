package absa

import "strings"

// displayTextLimit caps the text echoed back in results. Scoring always runs
// on the full text; only the stored copy is truncated.
const displayTextLimit = 100

// ReviewAnalysisResult is the full verdict for one review. It is built fresh
// per Analyze call, never mutated afterwards, and holds no reference back to
// the lexicon.
type ReviewAnalysisResult struct {
	Text             string            `json:"text"`
	Language         Language          `json:"language"`
	OverallSentiment Sentiment         `json:"overall_sentiment"`
	OverallScore     float64           `json:"overall_score"`
	NumAspects       int               `json:"num_aspects"`
	Aspects          []Aspect          `json:"aspects"`
	AspectSentiments []AspectSentiment `json:"aspect_sentiments"`
}

// Analyzer composes language detection, aspect extraction, and aspect
// scoring over one shared immutable Lexicon. Safe for concurrent use.
type Analyzer struct {
	lexicon *Lexicon
}

// NewAnalyzer builds an Analyzer over lex. A nil lex selects the compiled-in
// default lexicon.
func NewAnalyzer(lex *Lexicon) *Analyzer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Analyzer{lexicon: lex}
}

// Lexicon exposes the lexicon this analyzer was built with.
func (a *Analyzer) Lexicon() *Lexicon { return a.lexicon }

// Analyze produces the complete per-review result: detected aspects, one
// AspectSentiment per aspect, and the overall verdict.
//
// The language is resolved once up front and reused for every aspect, so a
// single review can never mix language assignments. Blank text yields a
// neutral result with no aspects.
//
// The overall verdict prefers an explicit rating when the caller has one:
// rating >= 4 is positive, [3,4) neutral, < 3 negative, with score
// (rating-3)/2. Ratings are assumed to be on the 1-5 scale and are NOT
// clamped; out-of-scale ratings produce out-of-range scores, preserved for
// comparability with historical pipeline output. Without a rating the
// overall score is the mean of the aspect scores (> 0.2 positive, < -0.2
// negative, neutral between); with neither, the result is neutral zero.
func (a *Analyzer) Analyze(text string, rating *float64, lang Language) (ReviewAnalysisResult, error) {
	lang, err := resolveLanguage(text, lang)
	if err != nil {
		return ReviewAnalysisResult{}, err
	}

	if strings.TrimSpace(text) == "" {
		return ReviewAnalysisResult{
			Text:             text,
			Language:         lang,
			OverallSentiment: SentimentNeutral,
		}, nil
	}

	aspects, err := a.ExtractAspects(text, lang)
	if err != nil {
		return ReviewAnalysisResult{}, err
	}

	aspectSentiments := make([]AspectSentiment, 0, len(aspects))
	for _, aspect := range aspects {
		sentiment, err := a.ScoreAspect(text, aspect, lang)
		if err != nil {
			return ReviewAnalysisResult{}, err
		}
		aspectSentiments = append(aspectSentiments, sentiment)
	}

	overallSentiment, overallScore := overallVerdict(rating, aspectSentiments)

	return ReviewAnalysisResult{
		Text:             displayText(text),
		Language:         lang,
		OverallSentiment: overallSentiment,
		OverallScore:     overallScore,
		NumAspects:       len(aspects),
		Aspects:          aspects,
		AspectSentiments: aspectSentiments,
	}, nil
}

func overallVerdict(rating *float64, aspectSentiments []AspectSentiment) (Sentiment, float64) {
	if rating != nil {
		score := (*rating - 3) / 2
		switch {
		case *rating >= 4:
			return SentimentPositive, score
		case *rating >= 3:
			return SentimentNeutral, 0.0
		default:
			return SentimentNegative, score
		}
	}

	if len(aspectSentiments) > 0 {
		var sum float64
		for _, s := range aspectSentiments {
			sum += s.Score
		}
		mean := sum / float64(len(aspectSentiments))
		switch {
		case mean > 0.2:
			return SentimentPositive, mean
		case mean < -0.2:
			return SentimentNegative, mean
		default:
			return SentimentNeutral, mean
		}
	}

	return SentimentNeutral, 0.0
}

func displayText(text string) string {
	runes := []rune(text)
	if len(runes) <= displayTextLimit {
		return text
	}
	return string(runes[:displayTextLimit]) + "..."
}
