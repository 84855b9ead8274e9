package absa

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links (keeping the link text) and bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	input = urlPattern.ReplaceAllString(input, "")
	return input
}

// CleanReviewText flattens markdown-formatted review text to plain text and
// drops links. Review sources paste in markdown and raw URLs; both are noise
// to keyword matching. The pipeline cleans BEFORE Analyze so the engine
// scores the same text it reports on.
func CleanReviewText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	plain = strings.Join(strings.Fields(plain), " ")
	return RemoveLinks(plain)
}
