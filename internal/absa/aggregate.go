package absa

import "sync"

// AspectSummary tallies per-aspect polarity counts across many reviews.
type AspectSummary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Total    int `json:"total"`
}

func (s *AspectSummary) add(sentiment Sentiment) {
	switch sentiment {
	case SentimentPositive:
		s.Positive++
	case SentimentNegative:
		s.Negative++
	default:
		s.Neutral++
	}
	s.Total++
}

// Summarize folds a batch of results into per-aspect polarity tallies.
// Purely additive and order-invariant; aspects never seen are absent from
// the map.
func Summarize(results []ReviewAnalysisResult) map[Aspect]AspectSummary {
	stats := make(map[Aspect]AspectSummary)
	for _, result := range results {
		for _, as := range result.AspectSentiments {
			summary := stats[as.Aspect]
			summary.add(as.Sentiment)
			stats[as.Aspect] = summary
		}
	}
	return stats
}

// SummaryAccumulator is the concurrent form of Summarize: many analysis
// goroutines feed Add while one reader snapshots. Per-review analysis needs
// no coordination, so this mutex is the only lock in the package.
type SummaryAccumulator struct {
	mu    sync.Mutex
	stats map[Aspect]AspectSummary
}

func NewSummaryAccumulator() *SummaryAccumulator {
	return &SummaryAccumulator{stats: make(map[Aspect]AspectSummary)}
}

// Add folds one result into the running tally.
func (acc *SummaryAccumulator) Add(result ReviewAnalysisResult) {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	for _, as := range result.AspectSentiments {
		summary := acc.stats[as.Aspect]
		summary.add(as.Sentiment)
		acc.stats[as.Aspect] = summary
	}
}

// Snapshot returns a copy of the current tallies.
func (acc *SummaryAccumulator) Snapshot() map[Aspect]AspectSummary {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	out := make(map[Aspect]AspectSummary, len(acc.stats))
	for aspect, summary := range acc.stats {
		out[aspect] = summary
	}
	return out
}

// Reset clears the tallies for a new aggregation run.
func (acc *SummaryAccumulator) Reset() {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	acc.stats = make(map[Aspect]AspectSummary)
}
