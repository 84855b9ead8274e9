package absa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAspects(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	tests := []struct {
		name string
		text string
		lang Language
		want []Aspect
	}{
		{
			name: "english multi aspect",
			text: "Perfect! Clean rooms, friendly staff, good food, reasonable prices",
			lang: LanguageEnglish,
			want: []Aspect{AspectCleanliness, AspectService, AspectPrice, AspectFood, AspectFacility},
		},
		{
			name: "arabic multi aspect",
			text: "المكان جميل جداً والموقع ممتاز لكن الخدمة سيئة والأسعار غالية",
			lang: LanguageArabic,
			want: []Aspect{AspectLocation, AspectService, AspectPrice, AspectAmbiance},
		},
		{
			name: "auto resolves before matching",
			// "close" also hits inside "closed", flagging location: the
			// documented substring false-positive tradeoff.
			text: "The pool and the gym were closed",
			lang: LanguageAuto,
			want: []Aspect{AspectLocation, AspectFacility},
		},
		{
			name: "keyword inside a larger word still matches",
			text: "cleanliness was outstanding",
			lang: LanguageEnglish,
			want: []Aspect{AspectCleanliness},
		},
		{
			name: "no aspect keywords",
			text: "we arrived on tuesday evening",
			lang: LanguageEnglish,
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			lang: LanguageAuto,
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			lang: LanguageAuto,
			want: nil,
		},
		{
			name: "case insensitive",
			text: "GREAT LOCATION AND EXCELLENT SERVICE",
			lang: LanguageEnglish,
			want: []Aspect{AspectLocation, AspectService, AspectAmbiance},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzer.ExtractAspects(tt.text, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAspectsNoDuplicates(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// Several price keywords occur; the aspect is still reported once.
	got, err := analyzer.ExtractAspects("the price was expensive, not cheap, poor value for money", LanguageEnglish)
	require.NoError(t, err)

	seen := map[Aspect]int{}
	for _, a := range got {
		seen[a]++
	}
	assert.Equal(t, 1, seen[AspectPrice])
}

func TestExtractAspectsUnknownLanguage(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	_, err := analyzer.ExtractAspects("some text", "spanish")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestExtractAspectsLanguageScopesKeywords(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	// English keywords do not fire when the text is treated as Arabic.
	got, err := analyzer.ExtractAspects("great location", LanguageArabic)
	require.NoError(t, err)
	assert.Empty(t, got)
}
