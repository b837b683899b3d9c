package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	openai "github.com/sashabaranov/go-openai"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nexweb-studio/agency-api/internal/api/router"
	"github.com/nexweb-studio/agency-api/internal/audit"
	appconfig "github.com/nexweb-studio/agency-api/internal/config"
	"github.com/nexweb-studio/agency-api/internal/leads"
	"github.com/nexweb-studio/agency-api/internal/observability/metrics"
	"github.com/nexweb-studio/agency-api/internal/roi"
	"github.com/nexweb-studio/agency-api/pkg/logging"
)

func main() {
	// Best effort; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agency-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	m := metrics.New(nil)

	// Lead store: hosted document store when configured, in-memory otherwise
	// (local development without a database).
	var leadsRepo leads.Repository
	var mongoClient *mongo.Client
	if cfg.MongoURI == "" {
		logger.Warn("MONGO_URI not set, captured leads will not be persisted")
		leadsRepo = leads.NewMemoryRepository()
	} else {
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Error("failed to create mongo client", "error", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := client.Ping(ctx, nil); err != nil {
			cancel()
			logger.Error("failed to reach document store", "error", err)
			os.Exit(1)
		}

		repo := leads.NewMongoRepository(client)
		if err := repo.EnsureIndexes(ctx); err != nil {
			cancel()
			logger.Error("failed to ensure lead indexes", "error", err)
			os.Exit(1)
		}
		cancel()

		mongoClient = client
		leadsRepo = repo
	}

	// Inference client for the website audit tool.
	clientCfg := openai.DefaultConfig(cfg.InferenceAPIKey)
	clientCfg.BaseURL = cfg.InferenceBaseURL
	chatClient := openai.NewClientWithConfig(clientCfg)
	auditService := audit.NewService(chatClient, cfg.InferenceModelID, cfg.InferenceTimeout, logger, m)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(leadsRepo, logger, m),
		AuditHandler:       audit.NewHandler(auditService, logger, m),
		ROIHandler:         roi.NewHandler(logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("failed to disconnect document store", "error", err)
		}
	}

	logger.Info("server stopped")
}
