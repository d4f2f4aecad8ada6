package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	AppEnv   string
	LogLevel string

	SiteAddr    string
	StatsAddr   string
	GatewayAddr string

	SiteSvcURL  string
	StatsSvcURL string
	FrontendDir string

	PublicBaseURL string
	CatalogSource string
	CORSOrigins   []string

	KafkaBroker  string
	KafkaTopic   string
	KafkaGroupID string

	SessionIdleTimeout time.Duration
	SessionSweepEvery  time.Duration
}

// Load reads the environment, after loading a .env file outside production.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	return Config{
		AppEnv:   GetEnv("APP_ENV", "dev"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),

		SiteAddr:    GetEnv("SITE_ADDR", ":8081"),
		StatsAddr:   GetEnv("STATS_ADDR", ":8083"),
		GatewayAddr: GetEnv("GATEWAY_ADDR", ":8080"),

		SiteSvcURL:  GetEnv("SITE_SVC_URL", "http://localhost:8081"),
		StatsSvcURL: GetEnv("STATS_SVC_URL", "http://localhost:8083"),
		FrontendDir: GetEnv("FRONTEND_DIR", "./frontend"),

		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		CatalogSource: GetEnv("CATALOG_SOURCE", "static"),
		CORSOrigins:   GetEnvList("CORS_ALLOWED_ORIGINS"),

		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   GetEnv("KAFKA_TOPIC", "site-events"),
		KafkaGroupID: GetEnv("KAFKA_GROUP_ID", "stats-svc"),

		SessionIdleTimeout: GetEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionSweepEvery:  GetEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvList splits a comma-separated variable, dropping empty entries.
func GetEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func GetEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	db.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
		DB:   GetEnvInt("REDIS_DB", 0),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(broker, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
