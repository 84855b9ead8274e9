package models

import "time"

// Review is one tourism review as it arrives on the ingest topic. Rating is
// optional; when present it is expected on the 1-5 scale and decides the
// overall sentiment ahead of aspect averaging.
type Review struct {
	ReviewID string         `json:"review_id"`
	Source   string         `json:"source"`
	Property string         `json:"property,omitempty" dynamodbav:"property,omitempty"`
	Text     string         `json:"text"`
	Rating   *float64       `json:"rating,omitempty"`
	Metadata ReviewMetadata `json:"metadata"`
}

type ReviewMetadata struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author,omitempty"`
	City      string    `json:"city,omitempty"`
	URL       string    `json:"url,omitempty"`
}
