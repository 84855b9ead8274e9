package absa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "see the rooms here",
		RemoveLinks("see the rooms [here](https://example.com/photos)"))
	assert.Equal(t, "booked via ",
		RemoveLinks("booked via https://example.com/deal"))
	assert.Equal(t, "no links at all", RemoveLinks("no links at all"))
}

func TestCleanReviewText(t *testing.T) {
	got := CleanReviewText("**Great** hotel!\n\n- clean rooms\n- [menu](https://example.com/menu) was good")
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, "https://")
	assert.Contains(t, got, "Great hotel!")
	assert.Contains(t, got, "clean rooms")
	assert.Contains(t, got, "menu")
}

func TestCleanReviewTextKeepsArabic(t *testing.T) {
	got := CleanReviewText("الخدمة ممتازة والموقع رائع")
	assert.Contains(t, got, "الخدمة ممتازة")
}
