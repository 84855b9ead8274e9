package absa

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []ReviewAnalysisResult {
	return []ReviewAnalysisResult{
		{AspectSentiments: []AspectSentiment{
			{Aspect: AspectService, Sentiment: SentimentPositive},
			{Aspect: AspectPrice, Sentiment: SentimentNegative},
		}},
		{AspectSentiments: []AspectSentiment{
			{Aspect: AspectService, Sentiment: SentimentNegative},
			{Aspect: AspectFood, Sentiment: SentimentNeutral},
		}},
		{AspectSentiments: []AspectSentiment{
			{Aspect: AspectService, Sentiment: SentimentPositive},
		}},
		{}, // no aspects detected
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleResults())

	assert.Equal(t, AspectSummary{Positive: 2, Negative: 1, Total: 3}, stats[AspectService])
	assert.Equal(t, AspectSummary{Negative: 1, Total: 1}, stats[AspectPrice])
	assert.Equal(t, AspectSummary{Neutral: 1, Total: 1}, stats[AspectFood])

	// Aspects never seen are absent, not zero-valued.
	_, ok := stats[AspectLocation]
	assert.False(t, ok)
	assert.Len(t, stats, 3)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
	assert.Empty(t, Summarize([]ReviewAnalysisResult{}))
}

func TestSummarizeOrderInvariant(t *testing.T) {
	results := sampleResults()
	want := Summarize(results)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]ReviewAnalysisResult(nil), results...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Summarize(shuffled))
	}
}

func TestSummaryAccumulatorMatchesSummarize(t *testing.T) {
	results := sampleResults()

	acc := NewSummaryAccumulator()
	for _, r := range results {
		acc.Add(r)
	}

	assert.Equal(t, Summarize(results), acc.Snapshot())
}

func TestSummaryAccumulatorConcurrentAdds(t *testing.T) {
	result := ReviewAnalysisResult{AspectSentiments: []AspectSentiment{
		{Aspect: AspectService, Sentiment: SentimentPositive},
		{Aspect: AspectPrice, Sentiment: SentimentNegative},
	}}

	acc := NewSummaryAccumulator()

	const workers = 16
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				acc.Add(result)
			}
		}()
	}
	wg.Wait()

	stats := acc.Snapshot()
	require.Equal(t, workers*perWorker, stats[AspectService].Positive)
	require.Equal(t, workers*perWorker, stats[AspectService].Total)
	require.Equal(t, workers*perWorker, stats[AspectPrice].Negative)
}

func TestSummaryAccumulatorReset(t *testing.T) {
	acc := NewSummaryAccumulator()
	for _, r := range sampleResults() {
		acc.Add(r)
	}
	require.NotEmpty(t, acc.Snapshot())

	acc.Reset()
	assert.Empty(t, acc.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	acc := NewSummaryAccumulator()
	acc.Add(ReviewAnalysisResult{AspectSentiments: []AspectSentiment{
		{Aspect: AspectService, Sentiment: SentimentPositive},
	}})

	snap := acc.Snapshot()
	snap[AspectService] = AspectSummary{Positive: 99, Total: 99}

	assert.Equal(t, AspectSummary{Positive: 1, Total: 1}, acc.Snapshot()[AspectService])
}
