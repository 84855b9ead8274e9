package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/nuzhalabs/aspectflow/config"
	"github.com/nuzhalabs/aspectflow/internal/absa"
	"github.com/nuzhalabs/aspectflow/internal/clients"
	"github.com/nuzhalabs/aspectflow/internal/clients/kafka_client"
	"github.com/nuzhalabs/aspectflow/internal/consumers"
	"github.com/nuzhalabs/aspectflow/internal/db"
	"github.com/nuzhalabs/aspectflow/internal/logging"
	"github.com/nuzhalabs/aspectflow/internal/monitoring"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopChan
		slog.Warn("[Main] Shutdown signal received")
		cancel()
	}()

	// A lexicon file overrides the compiled-in tables; this is how retrained
	// lexicon versions roll out without a rebuild.
	if lexPath := os.Getenv("ABSA_LEXICON_PATH"); lexPath != "" {
		lex, err := absa.LoadLexicon(lexPath)
		if err != nil {
			slog.Error("[Main] Failed to load lexicon",
				slog.String("path", lexPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		consumers.UseAnalyzer(absa.NewAnalyzer(lex))
		slog.Info("[Main] Loaded lexicon", slog.String("path", lexPath))
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

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	sentimentHealthy := &atomic.Bool{}
	languageHealthy := &atomic.Bool{}
	sentimentHealthy.Store(true)
	languageHealthy.Store(true)

	go monitoring.MonitorSentimentDrift(ctx, sentimentHealthy)
	go monitoring.MonitorLanguageDrift(ctx, languageHealthy)

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_REVIEW_INGEST, consumers.StartReviewConsumer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_ABSA_RESULTS, consumers.StartResultsConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
