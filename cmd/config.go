package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/pkg/errs"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma-separated broker list. Empty disables Kafka and
	// notifications are only logged.
	KafkaHost               string
	KafkaNotificationsTopic string
	NotificationQueueSize   int

	SweepSchedule       string
	SweepOnRead         bool
	SweepStaleAfterDays int
}

// Defaults applied by LoadConfig for unset variables.
const (
	DefaultHTTPPort                = "8080"
	DefaultDBHost                  = "localhost"
	DefaultDBPort                  = "5432"
	DefaultDBSslMode               = "disable"
	DefaultKafkaNotificationsTopic = "notifications"
	DefaultNotificationQueueSize   = 256
	DefaultSweepSchedule           = "@every 1h"
	DefaultSweepOnRead             = true
	DefaultSweepStaleAfterDays     = 15
)

// LoadConfig builds a Config from lookup, normally os.LookupEnv.
// DB_USER, DB_PASSWORD and DB_NAME are required.
func LoadConfig(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:                get("HTTP_PORT", DefaultHTTPPort),
		DBHost:                  get("DB_HOST", DefaultDBHost),
		DBPort:                  get("DB_PORT", DefaultDBPort),
		DBUser:                  get("DB_USER", ""),
		DBPassword:              get("DB_PASSWORD", ""),
		DBName:                  get("DB_NAME", ""),
		DBSslMode:               get("DB_SSLMODE", DefaultDBSslMode),
		KafkaHost:               get("KAFKA_HOST", ""),
		KafkaNotificationsTopic: get("KAFKA_NOTIFICATIONS_TOPIC", DefaultKafkaNotificationsTopic),
		SweepSchedule:           get("SWEEP_SCHEDULE", DefaultSweepSchedule),
	}

	var problems []error
	for _, required := range []struct{ key, value string }{
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
	} {
		if required.value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(required.key))
		}
	}

	var err error
	if cfg.NotificationQueueSize, err = positiveInt(get("NOTIFICATION_QUEUE_SIZE", ""), DefaultNotificationQueueSize); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("NOTIFICATION_QUEUE_SIZE", err))
	}
	if cfg.SweepStaleAfterDays, err = positiveInt(get("SWEEP_STALE_AFTER_DAYS", ""), DefaultSweepStaleAfterDays); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SWEEP_STALE_AFTER_DAYS", err))
	}
	cfg.SweepOnRead = DefaultSweepOnRead
	if raw := get("SWEEP_ON_READ", ""); raw != "" {
		if cfg.SweepOnRead, err = strconv.ParseBool(raw); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("SWEEP_ON_READ", err))
		}
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func positiveInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}
