package absa

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexiconCoversEveryAspect(t *testing.T) {
	lex := DefaultLexicon()

	for _, aspect := range AllAspects {
		for _, lang := range []Language{LanguageArabic, LanguageEnglish} {
			words, err := lex.Keywords(aspect, lang)
			require.NoError(t, err)
			assert.NotEmpty(t, words, "aspect %s has no %s keywords", aspect, lang)
		}
	}

	for _, polarity := range []Sentiment{SentimentPositive, SentimentNegative} {
		for _, lang := range []Language{LanguageArabic, LanguageEnglish} {
			words, err := lex.Indicators(polarity, lang)
			require.NoError(t, err)
			assert.NotEmpty(t, words)
		}
	}
}

func TestLexiconUnknownLookups(t *testing.T) {
	lex := DefaultLexicon()

	_, err := lex.Keywords("wifi-speed", LanguageEnglish)
	assert.ErrorIs(t, err, ErrUnknownAspect)

	_, err = lex.Keywords(AspectPrice, "german")
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	// Auto is a request-time tag, not a lexicon language.
	_, err = lex.Keywords(AspectPrice, LanguageAuto)
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	_, err = lex.Indicators(SentimentNeutral, LanguageEnglish)
	assert.Error(t, err)
}

func TestNewLexiconValidation(t *testing.T) {
	def := defaultLexiconDef

	t.Run("missing aspect", func(t *testing.T) {
		broken := def
		broken.Aspects = map[Aspect]map[Language][]string{}
		for k, v := range def.Aspects {
			broken.Aspects[k] = v
		}
		delete(broken.Aspects, AspectFood)

		_, err := NewLexicon(broken)
		assert.ErrorContains(t, err, "food")
	})

	t.Run("aspect outside the fixed set", func(t *testing.T) {
		broken := def
		broken.Aspects = map[Aspect]map[Language][]string{}
		for k, v := range def.Aspects {
			broken.Aspects[k] = v
		}
		broken.Aspects["parking-lot"] = map[Language][]string{
			LanguageArabic:  {"موقف"},
			LanguageEnglish: {"parking"},
		}

		_, err := NewLexicon(broken)
		assert.ErrorIs(t, err, ErrUnknownAspect)
	})

	t.Run("empty keyword list", func(t *testing.T) {
		broken := def
		broken.Aspects = map[Aspect]map[Language][]string{}
		for k, v := range def.Aspects {
			broken.Aspects[k] = v
		}
		broken.Aspects[AspectFood] = map[Language][]string{
			LanguageArabic:  {"اكل"},
			LanguageEnglish: nil,
		}

		_, err := NewLexicon(broken)
		assert.ErrorContains(t, err, "no english keywords")
	})

	t.Run("unsupported strategy", func(t *testing.T) {
		broken := def
		broken.Strategy = "word-boundary"

		_, err := NewLexicon(broken)
		assert.ErrorContains(t, err, "match strategy")
	})
}

func TestLexiconLowercasesKeywords(t *testing.T) {
	def := defaultLexiconDef
	def.Aspects = map[Aspect]map[Language][]string{}
	for k, v := range defaultLexiconDef.Aspects {
		def.Aspects[k] = v
	}
	def.Aspects[AspectFacility] = map[Language][]string{
		LanguageArabic:  {"غرفه"},
		LanguageEnglish: {"WiFi", "Room"},
	}

	lex, err := NewLexicon(def)
	require.NoError(t, err)

	words, err := lex.Keywords(AspectFacility, LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "room"}, words)
}

func TestLoadLexiconRoundTrip(t *testing.T) {
	data, err := json.Marshal(defaultLexiconDef)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lexicon.v2.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	words, err := lex.Keywords(AspectPrice, LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, words, "expensive")
	assert.Equal(t, MatchSubstring, lex.Strategy())
}

func TestLoadLexiconErrors(t *testing.T) {
	_, err := LoadLexicon(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read")

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadLexicon(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestMatchesSubstring(t *testing.T) {
	lex := DefaultLexicon()

	// Substring containment is intentional: keywords match inside larger
	// words so inflected forms still hit.
	assert.True(t, lex.Matches("the rooms were spotless", "room"))
	assert.True(t, lex.Matches("والأسعار غالية جداً", "غالي"))
	assert.False(t, lex.Matches("the view was lovely", "room"))
}
