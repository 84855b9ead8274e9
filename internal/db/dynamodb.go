package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/clients"
	"github.com/nuzhalabs/aspectflow/internal/models"
)

const (
	REVIEW_ANALYSIS_TABLE_NAME = "ReviewAnalysis"
	ASPECT_SUMMARY_TABLE_NAME  = "AspectSummaries"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertAnalysisRecords writes analysis records in DynamoDB-sized
// chunks, retrying unprocessed items with exponential backoff.
func BatchInsertAnalysisRecords(ctx context.Context, records []models.ReviewAnalysisRecord) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(records); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
			end := i + maxBatchSize
			if end > len(records) {
				end = len(records)
			}

			writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
			for _, record := range records[i:end] {
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: RecordToDynamoDBItem(record),
					},
				})
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					REVIEW_ANALYSIS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write analysis records: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2

				slog.Warn("[DynamoDB] Retrying unprocessed analysis records...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ANALYSIS_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Retry error: %w", err)
				}
				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some analysis records failed after retries",
					slog.Int("remaining", len(out.UnprocessedItems[REVIEW_ANALYSIS_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully stored analysis records",
		slog.Int("count", len(records)))
	return nil
}

// RecordToDynamoDBItem flattens a record into the table schema. Keys stay
// snake_case to match the historical pipeline exports.
func RecordToDynamoDBItem(record models.ReviewAnalysisRecord) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["review_id"] = &types.AttributeValueMemberS{Value: record.ReviewID}
	item["source"] = &types.AttributeValueMemberS{Value: record.Source}
	item["language"] = &types.AttributeValueMemberS{Value: string(record.Result.Language)}
	item["overall_sentiment"] = &types.AttributeValueMemberS{Value: string(record.Result.OverallSentiment)}
	item["overall_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", record.Result.OverallScore)}
	item["num_aspects"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", record.Result.NumAspects)}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	if record.Property != "" {
		item["property"] = &types.AttributeValueMemberS{Value: record.Property}
	}
	if record.Rating != nil {
		item["rating"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", *record.Rating)}
	}
	if record.Result.Text != "" {
		item["text"] = &types.AttributeValueMemberS{Value: record.Result.Text}
	}
	if record.WasCleaned && record.OriginalText != "" {
		item["original_text"] = &types.AttributeValueMemberS{Value: record.OriginalText}
	}

	if len(record.Result.Aspects) > 0 {
		aspects := make([]types.AttributeValue, 0, len(record.Result.Aspects))
		for _, aspect := range record.Result.Aspects {
			aspects = append(aspects, &types.AttributeValueMemberS{Value: string(aspect)})
		}
		item["aspects"] = &types.AttributeValueMemberL{Value: aspects}
	}

	if len(record.Result.AspectSentiments) > 0 {
		sentiments := make([]types.AttributeValue, 0, len(record.Result.AspectSentiments))
		for _, as := range record.Result.AspectSentiments {
			sentiments = append(sentiments, &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"aspect":     &types.AttributeValueMemberS{Value: string(as.Aspect)},
				"sentiment":  &types.AttributeValueMemberS{Value: string(as.Sentiment)},
				"score":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", as.Score)},
				"confidence": &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", as.Confidence)},
			}})
		}
		item["aspect_sentiments"] = &types.AttributeValueMemberL{Value: sentiments}
	}

	metadata := make(map[string]types.AttributeValue)
	if record.Metadata.Author != "" {
		metadata["author"] = &types.AttributeValueMemberS{Value: record.Metadata.Author}
	}
	if record.Metadata.City != "" {
		metadata["city"] = &types.AttributeValueMemberS{Value: record.Metadata.City}
	}
	if record.Metadata.URL != "" {
		metadata["url"] = &types.AttributeValueMemberS{Value: record.Metadata.URL}
	}
	if !record.Metadata.Timestamp.IsZero() {
		metadata["timestamp"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", record.Metadata.Timestamp.Unix())}
	}
	if len(metadata) > 0 {
		item["metadata"] = &types.AttributeValueMemberM{Value: metadata}
	}

	return item
}

// AddToAspectSummaries folds a tally delta into the summary table using ADD
// updates, so concurrent result consumers never lose counts.
func AddToAspectSummaries(ctx context.Context, stats map[absa.Aspect]absa.AspectSummary) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	for aspect, summary := range stats {
		_, err := dbClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(ASPECT_SUMMARY_TABLE_NAME),
			Key: map[string]types.AttributeValue{
				"aspect": &types.AttributeValueMemberS{Value: string(aspect)},
			},
			UpdateExpression: aws.String("ADD positive :p, neutral :u, negative :n, #t :t"),
			ExpressionAttributeNames: map[string]string{
				"#t": "total",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":p": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", summary.Positive)},
				":u": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", summary.Neutral)},
				":n": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", summary.Negative)},
				":t": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", summary.Total)},
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to update summary for aspect %s: %w", aspect, err)
		}
	}

	slog.Info("[DynamoDB] Updated aspect summaries",
		slog.Int("aspects", len(stats)))
	return nil
}

type aspectSummaryRow struct {
	Aspect   string `dynamodbav:"aspect"`
	Positive int    `dynamodbav:"positive"`
	Neutral  int    `dynamodbav:"neutral"`
	Negative int    `dynamodbav:"negative"`
	Total    int    `dynamodbav:"total"`
}

// GetAspectSummaries reads the whole summary table back as engine types.
func GetAspectSummaries(ctx context.Context) (map[absa.Aspect]absa.AspectSummary, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	stats := make(map[absa.Aspect]absa.AspectSummary)
	paginator := dynamodb.NewScanPaginator(dbClient, &dynamodb.ScanInput{
		TableName: aws.String(ASPECT_SUMMARY_TABLE_NAME),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for aspect summaries failed: %w", err)
		}

		var rows []aspectSummaryRow
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &rows); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal summary page", slog.String("error", err.Error()))
			return nil, err
		}
		for _, row := range rows {
			stats[absa.Aspect(row.Aspect)] = absa.AspectSummary{
				Positive: row.Positive,
				Neutral:  row.Neutral,
				Negative: row.Negative,
				Total:    row.Total,
			}
		}
	}

	slog.Info("[DynamoDB] Successfully retrieved aspect summaries",
		slog.Int("aspects", len(stats)))
	return stats, nil
}
