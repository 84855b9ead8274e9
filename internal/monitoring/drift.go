// Package monitoring watches the quality of the rule-based engine in
// production by cross-checking its verdicts against independent references:
// VADER for English sentiment and a trigram language identifier for the
// script-ratio language detector. Sustained disagreement flips a health flag,
// which the surrounding system treats as the signal to kick off lexicon
// retraining.
package monitoring

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/jonreiter/govader"
	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/models"
)

const (
	DRIFT_CHECK_TIMER   = 60 // seconds
	SAMPLE_WINDOW       = 200
	MIN_SAMPLES         = 20
	AGREEMENT_THRESHOLD = 0.6
)

var (
	sampleMu sync.Mutex
	samples  []models.ReviewAnalysisRecord

	vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()
)

// RecordSample feeds one analysis record into the rolling sample window.
// Called by the review consumer for every record it produces.
func RecordSample(record models.ReviewAnalysisRecord) {
	sampleMu.Lock()
	defer sampleMu.Unlock()

	samples = append(samples, record)
	if len(samples) > SAMPLE_WINDOW {
		samples = samples[len(samples)-SAMPLE_WINDOW:]
	}
}

func snapshotSamples() []models.ReviewAnalysisRecord {
	sampleMu.Lock()
	defer sampleMu.Unlock()

	return append([]models.ReviewAnalysisRecord(nil), samples...)
}

// MonitorSentimentDrift periodically compares the engine's overall verdicts
// on English reviews against VADER. VADER knows nothing about the lexicon,
// so a collapsing agreement ratio means the indicator lists have drifted from
// how reviewers actually write.
func MonitorSentimentDrift(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * DRIFT_CHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ratio, n := sentimentAgreement(snapshotSamples())
			if n < MIN_SAMPLES {
				continue
			}
			isHealthy := ratio >= AGREEMENT_THRESHOLD
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[DriftMonitor] Sentiment agreement with VADER is low",
					slog.Float64("agreement", ratio),
					slog.Int("samples", n))
			}
		}
	}
}

// MonitorLanguageDrift cross-checks the script-ratio detector against
// whatlanggo's trigram model. Disagreement spikes when transliterated or
// mixed-script reviews start dominating a source.
func MonitorLanguageDrift(ctx context.Context, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * DRIFT_CHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ratio, n := languageAgreement(snapshotSamples())
			if n < MIN_SAMPLES {
				continue
			}
			isHealthy := ratio >= AGREEMENT_THRESHOLD
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[DriftMonitor] Language detection agreement is low",
					slog.Float64("agreement", ratio),
					slog.Int("samples", n))
			}
		}
	}
}

// sentimentAgreement scores rating-free English samples against VADER.
// Rated reviews are excluded: their overall verdict comes from the rating,
// not the lexicon, so they say nothing about lexicon drift.
func sentimentAgreement(records []models.ReviewAnalysisRecord) (float64, int) {
	var agreed, total int
	for _, record := range records {
		if record.Result.Language != absa.LanguageEnglish || record.Rating != nil {
			continue
		}
		total++
		if vaderLabel(record.Text) == record.Result.OverallSentiment {
			agreed++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return float64(agreed) / float64(total), total
}

func languageAgreement(records []models.ReviewAnalysisRecord) (float64, int) {
	var agreed, total int
	for _, record := range records {
		if record.Text == "" {
			continue
		}
		total++

		info := whatlanggo.Detect(record.Text)
		reference := absa.LanguageEnglish
		if info.Lang == whatlanggo.Arb {
			reference = absa.LanguageArabic
		}
		if reference == record.Result.Language {
			agreed++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return float64(agreed) / float64(total), total
}

// vaderLabel maps VADER's compound score to the engine's label space using
// the same +/-0.2 neutral band the engine applies to aspect means.
func vaderLabel(text string) absa.Sentiment {
	compound := vaderAnalyzer.PolarityScores(text).Compound
	switch {
	case compound >= 0.2:
		return absa.SentimentPositive
	case compound <= -0.2:
		return absa.SentimentNegative
	default:
		return absa.SentimentNeutral
	}
}
