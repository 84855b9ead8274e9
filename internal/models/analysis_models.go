package models

import "github.com/nuzhalabs/aspectflow/internal/absa"

// ReviewAnalysisInput is a review after preprocessing, carrying the cleaned
// text the engine actually scores next to the original.
type ReviewAnalysisInput struct {
	Review
	Text         string `json:"text"`
	WasCleaned   bool   `json:"was_cleaned"`
	OriginalText string `json:"original_text,omitempty"`
}

// ReviewAnalysisRecord pairs the analysis input with the engine verdict; this
// is what flows on the results topic and lands in DynamoDB.
type ReviewAnalysisRecord struct {
	ReviewAnalysisInput
	Result absa.ReviewAnalysisResult `json:"result"`
}

// InputFromReview builds the analysis input for a review, cleaning the text
// when cleaning changes it.
func InputFromReview(r Review) ReviewAnalysisInput {
	cleaned := absa.CleanReviewText(r.Text)
	input := ReviewAnalysisInput{
		Review: r,
		Text:   cleaned,
	}
	if cleaned != r.Text {
		input.WasCleaned = true
		input.OriginalText = r.Text
	}
	return input
}
