package kafka_client

import "time"

const (
	KAFKA_TOPIC_REVIEW_INGEST = "review-ingest" // raw reviews from the scraping/export jobs
	KAFKA_TOPIC_ABSA_RESULTS  = "absa-results"  // per-review analysis records
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
