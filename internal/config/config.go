package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	Storage    StorageConfig
	DB         PostgresConfig
	Mongo      MongoConfig
	Kafka      KafkaConfig
	Storefront StorefrontConfig
	Tracking   TrackingConfig
	POS        POSConfig
	Inventory  InventoryConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
)

type StorageConfig struct {
	Orders    string
	Inventory string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

type MongoConfig struct {
	URI      string
	Database string
}

const (
	EncodingJSON = "json"
	EncodingAvro = "avro"
)

type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	OrderTopic    string
	ConsumerGroup string
	Encoding      string
}

type StorefrontConfig struct {
	APIKey    string
	APISecret string
	Latency   time.Duration
	Seed      int64
}

const (
	SchedulerTicker = "ticker"
	SchedulerCron   = "cron"
)

type TrackingConfig struct {
	Interval  time.Duration
	Scheduler string
}

type POSConfig struct {
	StrictStock     bool
	DefaultCustomer string
}

type InventoryConfig struct {
	LowStockThreshold int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "backoffice"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host:           getEnv("HTTP_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("HTTP_PORT", 8030),
			AllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Storage: StorageConfig{
			Orders:    getEnv("ORDER_STORE", StoreMemory),
			Inventory: getEnv("INVENTORY_STORE", StoreMemory),
		},
		DB: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			DBName:   getEnv("POSTGRES_DB", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "backoffice"),
		},
		Kafka: KafkaConfig{
			Enabled:       getEnvAsBool("KAFKA_ENABLED", false),
			Brokers:       splitAndTrim(getEnv("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")),
			OrderTopic:    getEnv("KAFKA_ORDER_TOPIC", "sales_orders"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "backoffice"),
			Encoding:      getEnv("KAFKA_ENCODING", EncodingJSON),
		},
		Storefront: StorefrontConfig{
			APIKey:    getEnv("STOREFRONT_API_KEY", ""),
			APISecret: getEnv("STOREFRONT_API_SECRET", ""),
			Latency:   getEnvAsMillis("STOREFRONT_LATENCY_MS", time.Second),
			Seed:      int64(getEnvAsInt("STOREFRONT_SEED", 0)),
		},
		Tracking: TrackingConfig{
			Interval:  getEnvAsMillis("TRACKING_INTERVAL_MS", 5*time.Second),
			Scheduler: getEnv("TRACKING_SCHEDULER", SchedulerTicker),
		},
		POS: POSConfig{
			StrictStock:     getEnvAsBool("POS_STRICT_STOCK", false),
			DefaultCustomer: getEnv("POS_DEFAULT_CUSTOMER", "عميل نقدي"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: getEnvAsInt("INVENTORY_LOW_STOCK_THRESHOLD", 30),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// MaskedAPIKey keeps the key's prefix and last four characters.
func (s StorefrontConfig) MaskedAPIKey() string {
	return mask(s.APIKey)
}

// HasSecret reports whether an API secret is configured without exposing it.
func (s StorefrontConfig) HasSecret() bool {
	return s.APISecret != ""
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	prefix := ""
	if i := strings.Index(v, "_"); i >= 0 && i < len(v)-1 {
		prefix, v = v[:i+1], v[i+1:]
	}
	if len(v) <= 4 {
		return prefix + strings.Repeat("*", len(v))
	}
	return prefix + strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	switch c.Storage.Orders {
	case StoreMemory:
	case StorePostgres:
		if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("database config is incomplete")
		}
	default:
		return fmt.Errorf("ORDER_STORE %q is not supported", c.Storage.Orders)
	}
	switch c.Storage.Inventory {
	case StoreMemory:
	case StoreMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("mongo config is incomplete")
		}
	default:
		return fmt.Errorf("INVENTORY_STORE %q is not supported", c.Storage.Inventory)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers is empty")
	}
	if c.Kafka.Encoding != EncodingJSON && c.Kafka.Encoding != EncodingAvro {
		return fmt.Errorf("KAFKA_ENCODING %q is not supported", c.Kafka.Encoding)
	}
	if c.Tracking.Interval <= 0 {
		return fmt.Errorf("TRACKING_INTERVAL_MS must be positive")
	}
	if c.Tracking.Scheduler != SchedulerTicker && c.Tracking.Scheduler != SchedulerCron {
		return fmt.Errorf("TRACKING_SCHEDULER %q is not supported", c.Tracking.Scheduler)
	}
	if c.Storefront.Latency < 0 {
		return fmt.Errorf("STOREFRONT_LATENCY_MS must not be negative")
	}
	if c.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("INVENTORY_LOW_STOCK_THRESHOLD must not be negative")
	}
	// storefront credentials are optional: the storefront is simulated
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsMillis(key string, defaultVal time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return time.Duration(i) * time.Millisecond
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
