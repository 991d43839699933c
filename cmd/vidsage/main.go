// Vidsage server — runs the HTTP API, the queue worker pools, and the
// scheduler that drives channel discovery and quota cleanup.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vidsage/vidsage/pkg/ai"
	"github.com/vidsage/vidsage/pkg/api"
	"github.com/vidsage/vidsage/pkg/config"
	"github.com/vidsage/vidsage/pkg/database"
	"github.com/vidsage/vidsage/pkg/pipeline"
	"github.com/vidsage/vidsage/pkg/queue"
	"github.com/vidsage/vidsage/pkg/quota"
	"github.com/vidsage/vidsage/pkg/services"
	"github.com/vidsage/vidsage/pkg/source"
	"github.com/vidsage/vidsage/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupLogging installs the process-wide slog handler. LOG_LEVEL accepts
// the slog level names (DEBUG, INFO, WARN, ERROR); default is INFO.
func setupLogging() {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	listenAddr := flag.String("listen", "",
		"HTTP listen address (overrides config)")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	setupLogging()

	podID := resolvePodID()
	slog.Info("Starting vidsage",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.API.ListenAddr = *listenAddr
	}

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. State-store services and queue service
	channels := services.NewChannelService(dbClient.Client)
	contents := services.NewContentService(dbClient.Client)
	segments := services.NewSegmentService(dbClient.Client)
	prompts := services.NewPromptService(dbClient.Client)
	quotas := services.NewQuotaService(dbClient.Client)

	queueService := queue.NewService(dbClient.Client)
	channels.SetScheduler(pipeline.NewScheduleAdapter(queueService))
	slog.Info("Services initialized")

	if err := prompts.EnsureDefaults(ctx); err != nil {
		slog.Error("Failed to seed default prompts", "error", err)
		os.Exit(1)
	}

	// 5. Quota ledger, model selector, rate-limit coordinator.
	// The store makes usage survive restarts; warm-load happens inside
	// NewLedger.
	ledger := quota.NewLedger(ctx, cfg.Quota.Tier,
		quota.WithStore(quotas),
		quota.WithOverloadCooldown(time.Duration(cfg.Quota.OverloadCooldownSec)*time.Second))
	selector := quota.NewSelector(ledger)
	coordinator := quota.NewCoordinator(ledger, cfg.Queue)
	slog.Info("Quota ledger initialized", "tier", cfg.Quota.Tier)

	// 6. Outbound providers
	ytProvider, err := source.NewYouTube(ctx, cfg.Providers.YouTubeAPIKey())
	if err != nil {
		slog.Error("Failed to initialize YouTube provider",
			"env", cfg.Providers.YouTubeAPIKeyEnv, "error", err)
		os.Exit(1)
	}

	aiProvider, err := ai.NewGemini(ctx, cfg.Providers.GeminiAPIKey())
	if err != nil {
		slog.Error("Failed to initialize Gemini provider",
			"env", cfg.Providers.GeminiAPIKeyEnv, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := aiProvider.Close(); err != nil {
			slog.Error("Error closing Gemini provider", "error", err)
		}
	}()
	slog.Info("Providers initialized")

	// 7. Pipeline handlers, one per queue
	stores := pipeline.Stores{
		Channels: channels,
		Contents: contents,
		Segments: segments,
		Prompts:  prompts,
		Quotas:   quotas,
	}
	fanin := pipeline.NewFanin(contents, segments, queueService, cfg.Pipeline)

	handlers := map[string]queue.Handler{
		config.QueueChannelDiscovery:  pipeline.NewDiscoveryHandler(stores, ytProvider, queueService, cfg.Pipeline),
		config.QueueContentMetadata:   pipeline.NewMetadataHandler(stores, ytProvider, queueService, cfg.Pipeline),
		config.QueueContentProcessing: pipeline.NewPlanningHandler(stores, queueService, cfg.Pipeline),
		config.QueueSegmentAnalysis:   pipeline.NewAnalysisHandler(stores, aiProvider, fanin, ledger, selector, coordinator, cfg.Pipeline, cfg.Quota),
		config.QueueCombination:       pipeline.NewCombinationHandler(stores, aiProvider, fanin, ledger, selector, coordinator, cfg.Pipeline, cfg.Quota),
		config.QueueStats:             pipeline.NewStatsHandler(stores, ytProvider, cfg.Pipeline),
		config.QueueQuotaCleanup:      pipeline.NewCleanupHandler(stores, cfg.Retention, cfg.Pipeline),
	}

	// The AI-bound queues track the primary model's minute budget; the
	// coordinator tightens their dispatch throttle as it fills.
	throttleModels := map[string]string{
		config.QueueSegmentAnalysis: quota.ModelGeminiPro,
		config.QueueCombination:     quota.ModelGeminiPro,
	}

	// 8. Worker pools (before the HTTP server, so health reflects them)
	pools := make([]*queue.WorkerPool, 0, len(handlers))
	for _, queueName := range config.AllQueues() {
		handler := handlers[queueName]
		var opts []queue.PoolOption
		if model := throttleModels[queueName]; model != "" {
			name := queueName
			opts = append(opts, queue.WithThrottleFunc(
				func(q string, base config.Throttle) config.Throttle {
					return coordinator.QueueRateLimit(name, base, model)
				}))
		}
		pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, queueName, handler, opts...)
		if err := pool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "queue", queueName, "error", err)
			os.Exit(1)
		}
		pools = append(pools, pool)
	}

	// 9. Repeatable schedules: per-channel discovery plus quota cleanup
	if err := channels.ReconcileSchedules(ctx); err != nil {
		slog.Error("Failed to reconcile channel schedules", "error", err)
		// Non-fatal — individual channels re-sync on their next update
	}
	if err := pipeline.SeedCleanupSchedule(ctx, queueService, cfg.Retention); err != nil {
		slog.Error("Failed to seed quota cleanup schedule", "error", err)
		os.Exit(1)
	}

	scheduler := queue.NewScheduler(dbClient.Client, cfg.Queue, queueService)
	scheduler.Start(ctx)

	// 10. HTTP server
	server := api.NewServer(api.Deps{
		DB:       dbClient,
		Channels: channels,
		Contents: contents,
		Segments: segments,
		Prompts:  prompts,
		Quotas:   quotas,
		Queue:    queueService,
		Fanin:    fanin,
		Ledger:   ledger,
		Pipeline: cfg.Pipeline,
		Pools:    pools,
	})

	httpServer := &http.Server{
		Addr:    cfg.API.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Vidsage started successfully",
		"pod_id", podID,
		"queues", len(pools))

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. The HTTP surface closes first so nothing new
	// is enqueued, then the scheduler, then the pools drain their active
	// jobs.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	scheduler.Stop()

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer poolCancel()

	done := make(chan struct{})
	go func() {
		for _, pool := range pools {
			pool.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be orphan-recovered")
	}

	slog.Info("Shutdown complete")
}
