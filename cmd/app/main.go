package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/cmd"
	api "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/notifier"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := run(configs); err != nil {
		log.Fatalf("storefront stopped: %v", err)
	}
}

// run blocks until a shutdown signal arrives or the HTTP server fails. Deferred
// cleanup runs in reverse order: the HTTP server is drained first, then the
// jobs stop, then queued notifications are flushed.
func run(configs cmd.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	notify, closeNotifier := newNotifier(configs, logger, m)
	defer closeNotifier()

	app := cmd.NewCompositionRoot(configs, gormDB, notify, logger, m)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveHTTP(ctx, &app, configs, m, registry, logger)
}

// newNotifier publishes to Kafka when KAFKA_HOST is set and logs otherwise.
func newNotifier(
	configs cmd.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) (ports.Notifier, func()) {
	brokers := notifier.ParseBrokers(configs.KafkaHost)
	if len(brokers) == 0 {
		logger.Warn("KAFKA_HOST is not set, notifications are only logged")
		return notifier.NewLogNotifier(logger), func() {}
	}

	writer := notifier.NewKafkaWriter(brokers, configs.KafkaNotificationsTopic)
	queue := notifier.NewQueueNotifier(writer, configs.NotificationQueueSize, logger, m)
	queue.Start()
	return queue, func() {
		if err := queue.Close(); err != nil {
			logger.Error("failed to close notifier", "error", err)
		}
	}
}

func serveHTTP(
	ctx context.Context,
	app *cmd.CompositionRoot,
	configs cmd.Config,
	m *metrics.Metrics,
	registry *prometheus.Registry,
	logger *slog.Logger,
) error {
	server := api.NewServer(app.HTTPHandlers(), configs.SweepOnRead, logger)
	e, err := api.NewEcho(server, m, registry)
	if err != nil {
		return fmt.Errorf("failed to build http server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
