package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Config struct {
	Port          string
	Env           string
	CatalogSource string
	LedgerPolicy  string
	Timezone      string

	DB    Postgres
	Redis Redis
	Kafka Kafka

	RegisterSvcURL string
	TallySvcURL    string

	// FrontendDir holds a built register UI for the gateway. Empty means
	// the gateway serves the API only.
	FrontendDir string
}

type Postgres struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Redis struct {
	Host string
	Port string
}

type Kafka struct {
	Broker  string
	Topic   string
	GroupID string
}

// Load reads configuration from the environment with defaults.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over it.
func Load(defaultPort string) Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", defaultPort),
		Env:           getEnv("APP_ENV", "development"),
		CatalogSource: getEnv("CATALOG_SOURCE", "static"),
		LedgerPolicy:  getEnv("LEDGER_POLICY", "soft_cancel"),
		Timezone:      getEnv("TIMEZONE", "Europe/Paris"),
		DB: Postgres{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "caisse"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
		},
		Redis: Redis{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Kafka: Kafka{
			Broker:  os.Getenv("KAFKA_BROKER"),
			Topic:   getEnv("KAFKA_TOPIC", "ledger-events"),
			GroupID: getEnv("KAFKA_GROUP_ID", "tally-svc-consumer"),
		},
		RegisterSvcURL: getEnv("REGISTER_SVC_URL", "http://localhost:8081"),
		TallySvcURL:    getEnv("TALLY_SVC_URL", "http://localhost:8082"),
		FrontendDir:    os.Getenv("FRONTEND_DIR"),
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) KafkaEnabled() bool {
	return c.Kafka.Broker != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func NewLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func MustInitPostgres(cfg Postgres, logger *zap.Logger) *sql.DB {
	connStr := "host=" + cfg.Host + " port=" + cfg.Port + " user=" + cfg.User +
		" password=" + cfg.Password + " dbname=" + cfg.Name + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}
