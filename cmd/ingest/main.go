package main

import (
	"bufio"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/nuzhalabs/aspectflow/config"
	"github.com/nuzhalabs/aspectflow/internal/clients/kafka_client"
	"github.com/nuzhalabs/aspectflow/internal/logging"
	"github.com/nuzhalabs/aspectflow/internal/models"
	"github.com/nuzhalabs/aspectflow/internal/utils"
)

// Publishes NDJSON review exports to the ingest topic, one JSON review per
// line, batched per Kafka message.
func main() {
	filePath := flag.String("file", "", "NDJSON file of reviews; stdin when empty")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var in io.Reader = os.Stdin
	if *filePath != "" {
		f, err := os.Open(*filePath)
		if err != nil {
			slog.Error("[Ingest] Failed to open input file",
				slog.String("path", *filePath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}
		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	var batch []models.Review
	var published, skipped int

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_REVIEW_INGEST, batch[0].ReviewID, batch); err != nil {
			slog.Error("[Ingest] Failed to publish batch",
				slog.Int("batch_size", len(batch)),
				slog.String("error", err.Error()))
		} else {
			published += len(batch)
		}
		batch = batch[:0]
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var review models.Review
		if err := utils.DeserializeFromJSON([]byte(line), &review); err != nil {
			skipped++
			continue
		}
		if review.ReviewID == "" {
			slog.Warn("[Ingest] Skipping review without an ID")
			skipped++
			continue
		}

		batch = append(batch, review)
		if len(batch) >= kafka_client.BATCH_SIZE {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("[Ingest] Failed reading input", slog.String("error", err.Error()))
	}
	flush()

	slog.Info("[Ingest] Done",
		slog.Int("published", published),
		slog.Int("skipped", skipped))
}
