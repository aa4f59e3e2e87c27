package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      string `envconfig:"APP_ENV"   default:"development"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST"     default:"localhost"`
	DBPort     string `envconfig:"DB_PORT"     default:"5432"`
	DBUser     string `envconfig:"DB_USER"     default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"     default:"logistics"`
	DBSslMode  string `envconfig:"DB_SSLMODE"  default:"disable"`

	// RedisAddr enables the tracking cache when set.
	RedisAddr        string        `envconfig:"REDIS_ADDR"`
	TrackingCacheTTL time.Duration `envconfig:"TRACKING_CACHE_TTL" default:"5m"`

	// KafkaBrokers enables event publishing when set; otherwise events are logged.
	KafkaBrokers           []string `envconfig:"KAFKA_BROKERS"`
	KafkaNotificationTopic string   `envconfig:"KAFKA_NOTIFICATION_TOPIC" default:"logistics.notifications"`
	KafkaAuditTopic        string   `envconfig:"KAFKA_AUDIT_TOPIC"        default:"logistics.audit"`
	// KafkaQueueSize bounds the events waiting for the broker; extra events are dropped and logged.
	KafkaQueueSize int `envconfig:"KAFKA_QUEUE_SIZE" default:"1024"`

	TrackingRatePerMinute int    `envconfig:"TRACKING_RATE_PER_MINUTE" default:"60"`
	OverdueSchedule       string `envconfig:"OVERDUE_SCHEDULE"         default:"0 0 * * * *"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.TrackingRatePerMinute <= 0 {
		return Config{}, errors.New("tracking rate per minute must be positive")
	}
	if cfg.TrackingCacheTTL <= 0 {
		return Config{}, errors.New("tracking cache ttl must be positive")
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
