package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type PostgresConfig struct {
	DSN           string
	MigrationsDir string
}

type ShopAPIConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv          string
	AppPort         string
	RedisConfig     RedisConfig
	PostgresConfig  PostgresConfig
	ShopAPIConfig   ShopAPIConfig
	Observability   ObservabilityConfig
	CacheTTLMinutes int
	SnowflakeNodeID int64
}

func Load() (*Config, error) {
	var errs []error

	// Not fatal when missing: deployed environments set vars directly.
	_ = godotenv.Load()

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	postgresDSN := mustEnv("DATABASE_URL", &errs)
	migrationsDir := envOr("MIGRATIONS_DIR", "migrations")

	shopBaseURL := mustEnv("SHOP_API_BASE_URL", &errs)
	shopClientID := mustEnv("SHOP_API_CLIENT_ID", &errs)
	shopClientSecret := mustEnv("SHOP_API_CLIENT_SECRET", &errs)

	otlpEndpoint := envOr("OTLP_ENDPOINT", "localhost:4317")

	cacheTTLMinutes := mustEnv("CACHE_TTL_MINUTES", &errs)
	cacheTTLMinutesInt, err := strconv.Atoi(cacheTTLMinutes)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: CACHE_TTL_MINUTES"))
	}

	nodeID, err := strconv.ParseInt(envOr("SNOWFLAKE_NODE_ID", "1"), 10, 64)
	if err != nil {
		errs = append(errs, errors.New("conversion failed env: SNOWFLAKE_NODE_ID"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		PostgresConfig: PostgresConfig{
			DSN:           postgresDSN,
			MigrationsDir: migrationsDir,
		},
		ShopAPIConfig: ShopAPIConfig{
			BaseURL:      shopBaseURL,
			ClientID:     shopClientID,
			ClientSecret: shopClientSecret,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: otlpEndpoint,
			ServiceName:  "farescout",
			Environment:  appEnv,
		},
		CacheTTLMinutes: cacheTTLMinutesInt,
		SnowflakeNodeID: nodeID,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
