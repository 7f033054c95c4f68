package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"autobus-caisse/config"
	httpapi "autobus-caisse/tally-svc/internal/api/http"
	"autobus-caisse/tally-svc/internal/service"
	"autobus-caisse/tally-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const tallyTTL = 7 * 24 * time.Hour

func main() {
	cfg := config.Load("8082")
	logger := config.NewLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	store := newStore(rdb, cfg.Location())

	if cfg.KafkaEnabled() {
		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		logger.Info("tally consumer enabled",
			zap.String("broker", cfg.Kafka.Broker),
			zap.String("topic", cfg.Kafka.Topic),
			zap.String("group", cfg.Kafka.GroupID))
		consumer := service.NewConsumer(reader, store, logger)
		go consumer.Start(ctx)
	} else {
		logger.Warn("KAFKA_BROKER is not set, tally will not receive ledger events")
	}

	httpapi.StartServer(":"+cfg.Port, newRouter(store, cfg.Location()), logger)
}

func newStore(rdb *redis.Client, loc *time.Location) *storage.Store {
	return storage.NewStore(rdb, tallyTTL, loc)
}

func newRouter(store *storage.Store, loc *time.Location) http.Handler {
	handler := httpapi.NewHandler(service.NewTallyService(store, loc))
	return httpapi.NewRouter(handler)
}
