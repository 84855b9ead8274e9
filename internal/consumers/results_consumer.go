package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/clients/kafka_client"
	"github.com/nuzhalabs/aspectflow/internal/db"
	"github.com/nuzhalabs/aspectflow/internal/models"
	"github.com/nuzhalabs/aspectflow/internal/utils"
)

var (
	insertBuffer = utils.NewBatchBuffer[models.ReviewAnalysisRecord]()
	summaryAcc   = absa.NewSummaryAccumulator()
)

// StartResultsConsumer persists analysis records to DynamoDB and folds their
// aspect verdicts into the running per-aspect summary table.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ResultsConsumer] Consumer shutting down...")
			return
		case <-ticker.C:
			processResults(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var records []models.ReviewAnalysisRecord
			if err := utils.DeserializeFromJSON(msg.Value, &records); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			for _, record := range records {
				utils.TrackMessage(record.ReviewID, msg)
				insertBuffer.Add(record)
				if insertBuffer.Size() >= utils.DYNAMODB_BATCH_SIZE {
					processResults(ctx, committer)
				}
			}
		}
	}
}

func processResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := insertBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var insertErr error
	for i := 0; i < 3; i++ {
		insertErr = db.BatchInsertAnalysisRecords(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[ResultsConsumer] Failed to write records to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	for _, record := range batch {
		summaryAcc.Add(record.Result)
	}
	flushSummaries(ctx)

	for _, record := range batch {
		msg, found := utils.GetMessageForReview(record.ReviewID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[ResultsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

// flushSummaries pushes the accumulated tally delta to DynamoDB. The ADD
// update is additive, so the accumulator is reset after a successful flush
// and kept on failure to retry with the next batch.
func flushSummaries(ctx context.Context) {
	stats := summaryAcc.Snapshot()
	if len(stats) == 0 {
		return
	}

	if err := db.AddToAspectSummaries(ctx, stats); err != nil {
		slog.Error("[ResultsConsumer] Failed to update aspect summaries",
			slog.String("error", err.Error()))
		return
	}
	summaryAcc.Reset()
}
