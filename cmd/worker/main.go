package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/adapters/event"
	"github.com/nhattranq/profilehub/adapters/persistence"
	searchUC "github.com/nhattranq/profilehub/internal/application/usecase/search"
	"github.com/nhattranq/profilehub/internal/config"
	"github.com/nhattranq/profilehub/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("starting profilehub worker")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)

	syncUseCase := searchUC.NewSyncDirectoryUseCase(userRepo, profileRepo, searchRepo, appLogger)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "directory-sync-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("worker listening", zap.String("topic", event.TopicProfileEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read Kafka message", err)
			continue
		}

		var payload event.SectionUpdated
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("failed to unmarshal event, skipping", err,
				zap.String("key", string(msg.Key)))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		appLogger.Info("processing section update",
			zap.String("user_id", payload.UserID.String()),
			zap.String("section", payload.Section))

		if err := syncUseCase.Execute(ctx, payload.UserID); err != nil {
			appLogger.Error("failed to sync directory entry", err,
				zap.String("user_id", payload.UserID.String()))
			continue
		}

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, appLogger logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("failed to commit message", err)
	}
}
