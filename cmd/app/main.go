package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"installation/api"
	"installation/cmd"
	httpin "installation/internal/adapters/in/http"
	"installation/internal/adapters/out/postgres"
	"installation/internal/adapters/out/rabbitmq"
	"installation/internal/core/ports"
	"installation/internal/generated/servers"
	"installation/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := logging.New(os.Stdout, configs.LogLevel, configs.LogFormat)

	gormDB, err := gorm.Open(gormpostgres.Open(makeConnectionString(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	publisher, closeBroker := connectBroker(configs, logger)
	defer closeBroker()

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, prometheus.DefaultRegisterer, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:          goDotEnvVariable("RABBITMQ_URL"),
		RabbitMQExchange:     goDotEnvVariable("RABBITMQ_EXCHANGE"),
		LogLevel:             goDotEnvVariable("LOG_LEVEL"),
		LogFormat:            goDotEnvVariable("LOG_FORMAT"),
		CascadeRetrySchedule: goDotEnvVariable("CASCADE_RETRY_SCHEDULE"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.DBSslMode == "" {
		config.DBSslMode = "disable"
	}
	if config.RabbitMQExchange == "" {
		config.RabbitMQExchange = rabbitmq.DefaultExchange
	}
	return config
}

// loadDotEnv reads .env when present; the process environment always wins.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func makeConnectionString(c cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// connectBroker returns a nil publisher when RABBITMQ_URL is unset, in which case
// status changes are only recorded in the order history.
func connectBroker(c cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if c.RabbitMQURL == "" {
		logger.Warn("RABBITMQ_URL is not set, status change events will not be published")
		return nil, func() {}
	}

	conn, err := rabbitmq.NewConnection(c.RabbitMQURL, logger)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	if err := rabbitmq.SetupTopology(conn, c.RabbitMQExchange); err != nil {
		log.Fatalf("failed to declare rabbitmq topology: %v", err)
	}

	closeBroker := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := conn.Close(ctx); err != nil {
			logger.Error("failed to close rabbitmq connection", "error", err)
		}
	}
	return rabbitmq.NewPublisher(conn, c.RabbitMQExchange, logger), closeBroker
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("failed to load openapi document: %v", err)
	}
	validator, err := httpin.NewRequestValidator(swagger)
	if err != nil {
		log.Fatalf("failed to build request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(httpin.NewRequestMetrics(prometheus.DefaultRegisterer).Middleware())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.yaml")))

	servers.RegisterHandlers(e, app.CreateServer())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
