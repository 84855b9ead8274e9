package monitoring

import (
	"fmt"
	"testing"

	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishRecord(text string, sentiment absa.Sentiment) models.ReviewAnalysisRecord {
	return models.ReviewAnalysisRecord{
		ReviewAnalysisInput: models.ReviewAnalysisInput{Text: text},
		Result: absa.ReviewAnalysisResult{
			Language:         absa.LanguageEnglish,
			OverallSentiment: sentiment,
		},
	}
}

func TestVaderLabel(t *testing.T) {
	assert.Equal(t, absa.SentimentPositive, vaderLabel("this place is absolutely wonderful and amazing"))
	assert.Equal(t, absa.SentimentNegative, vaderLabel("terrible, awful, the worst experience ever"))
	assert.Equal(t, absa.SentimentNeutral, vaderLabel("the building is on the corner"))
}

func TestSentimentAgreement(t *testing.T) {
	records := []models.ReviewAnalysisRecord{
		englishRecord("wonderful amazing perfect stay, loved it", absa.SentimentPositive),
		englishRecord("terrible awful horrible experience, hated it", absa.SentimentNegative),
		// Engine disagrees with VADER here.
		englishRecord("wonderful amazing perfect stay, loved it", absa.SentimentNegative),
	}

	ratio, n := sentimentAgreement(records)
	assert.Equal(t, 3, n)
	assert.InDelta(t, 2.0/3.0, ratio, 1e-9)
}

func TestSentimentAgreementSkipsRatedAndArabic(t *testing.T) {
	rating := 5.0
	rated := englishRecord("wonderful stay", absa.SentimentPositive)
	rated.Rating = &rating

	arabic := models.ReviewAnalysisRecord{
		ReviewAnalysisInput: models.ReviewAnalysisInput{Text: "الخدمة ممتازة"},
		Result: absa.ReviewAnalysisResult{
			Language:         absa.LanguageArabic,
			OverallSentiment: absa.SentimentPositive,
		},
	}

	_, n := sentimentAgreement([]models.ReviewAnalysisRecord{rated, arabic})
	assert.Zero(t, n)
}

func TestLanguageAgreement(t *testing.T) {
	records := []models.ReviewAnalysisRecord{
		{
			ReviewAnalysisInput: models.ReviewAnalysisInput{
				Text: "The hotel location was excellent and the staff were friendly and helpful throughout our stay",
			},
			Result: absa.ReviewAnalysisResult{Language: absa.LanguageEnglish},
		},
		{
			ReviewAnalysisInput: models.ReviewAnalysisInput{
				Text: "الفندق جميل جداً والخدمة ممتازة والموقع رائع وقريب من كل الأماكن السياحية المهمة",
			},
			Result: absa.ReviewAnalysisResult{Language: absa.LanguageArabic},
		},
	}

	ratio, n := languageAgreement(records)
	assert.Equal(t, 2, n)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestRecordSampleWindowIsBounded(t *testing.T) {
	sampleMu.Lock()
	samples = nil
	sampleMu.Unlock()

	for i := 0; i < SAMPLE_WINDOW+50; i++ {
		RecordSample(englishRecord(fmt.Sprintf("review %d", i), absa.SentimentNeutral))
	}

	got := snapshotSamples()
	require.Len(t, got, SAMPLE_WINDOW)
	// Oldest entries were dropped, newest kept.
	assert.Equal(t, fmt.Sprintf("review %d", SAMPLE_WINDOW+49), got[len(got)-1].Text)
}
