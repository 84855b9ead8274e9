package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/clients"
	"github.com/nuzhalabs/aspectflow/internal/clients/kafka_client"
	"github.com/nuzhalabs/aspectflow/internal/models"
	"github.com/nuzhalabs/aspectflow/internal/monitoring"
	"github.com/nuzhalabs/aspectflow/internal/utils"
)

var analyzer = absa.NewAnalyzer(nil)

// UseAnalyzer swaps the engine, e.g. after loading a versioned lexicon file.
// Call before the consumer starts.
func UseAnalyzer(a *absa.Analyzer) {
	analyzer = a
}

var recordBuffer = utils.NewBatchBuffer[models.ReviewAnalysisRecord]()

// StartReviewConsumer reads review batches from the ingest topic, runs the
// ABSA engine over each unseen review, and publishes the analysis records to
// the results topic. Offsets are committed only after the batch carrying a
// review has been published.
func StartReviewConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReviewConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var reviews []models.Review
			if err := utils.DeserializeFromJSON(msg.Value, &reviews); err != nil {
				utils.HandleConsumerError(err)
				continue
			}
			if len(reviews) == 0 {
				continue
			}

			for _, review := range reviews {
				if clients.GetValkeyClient().IsReviewAnalyzed(ctx, review.Source, review.ReviewID) {
					slog.Debug("[ReviewConsumer] Skipping already analyzed review",
						slog.String("review_id", review.ReviewID))
					continue
				}

				record, ok := analyzeReview(review)
				if !ok {
					continue
				}

				utils.TrackMessage(review.ReviewID, msg)
				recordBuffer.Add(record)
				monitoring.RecordSample(record)

				if err := clients.GetValkeyClient().MarkAnalyzed(ctx, review.Source, review.ReviewID); err != nil {
					slog.Warn("[ReviewConsumer] Failed to mark review as analyzed",
						slog.String("review_id", review.ReviewID),
						slog.String("error", err.Error()))
				}
			}

			publishRecords(committer)
		}
	}
}

// analyzeReview cleans the text and runs the engine. Blank reviews still
// produce a neutral record; the engine treats them as valid input.
func analyzeReview(review models.Review) (models.ReviewAnalysisRecord, bool) {
	input := models.InputFromReview(review)

	result, err := analyzer.Analyze(input.Text, review.Rating, absa.LanguageAuto)
	if err != nil {
		// Only caller misuse errors exist, and the auto tag rules them out;
		// log defensively anyway rather than dropping silently.
		slog.Error("[ReviewConsumer] Analysis failed",
			slog.String("review_id", review.ReviewID),
			slog.String("error", err.Error()))
		return models.ReviewAnalysisRecord{}, false
	}

	return models.ReviewAnalysisRecord{
		ReviewAnalysisInput: input,
		Result:              result,
	}, true
}

func publishRecords(committer *kafka_client.KafkaCommitHandler) {
	batch := recordBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var err error
	for i := 0; i < 3; i++ {
		err = kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ABSA_RESULTS, batch[0].ReviewID, batch)
		if err == nil {
			break
		}
		slog.Warn("[ReviewConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		slog.Error("[ReviewConsumer] Dropping batch after publish retries",
			slog.Int("batch_size", len(batch)))
		return
	}

	for _, record := range batch {
		trackedMsg, found := utils.GetMessageForReview(record.ReviewID)
		if found {
			if err := committer.Commit(trackedMsg); err != nil {
				slog.Warn("[ReviewConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
