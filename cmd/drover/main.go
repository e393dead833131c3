// Drover daemon: webhook ingestion, the task queue and worker pool, the
// headless CLI executor, and the HTTP/WebSocket API.
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

	"github.com/droverhq/drover/pkg/api"
	"github.com/droverhq/drover/pkg/cleanup"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/credentials"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/outbound"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/runner"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/slack"
	"github.com/droverhq/drover/pkg/version"
	"github.com/droverhq/drover/pkg/webhook"
)

// machineHeartbeatInterval advances this instance's liveness row. The cleanup
// sweep flags machines that fall behind.
const machineHeartbeatInterval = time.Minute

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveMachineID determines the instance identifier for multi-instance
// coordination. Priority: MACHINE_ID env > HOSTNAME env > "local".
func resolveMachineID() string {
	if id := os.Getenv("MACHINE_ID"); id != "" {
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
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	machineID := resolveMachineID()

	slog.Info("Starting drover",
		"version", version.Full(),
		"http_port", httpPort,
		"machine_id", machineID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
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

	// 3. Domain services
	tasks := services.NewTaskService(dbClient.Client)
	conversations := services.NewConversationService(dbClient.Client)
	sessions := services.NewSessionService(dbClient.Client)
	webhooks := services.NewWebhookService(dbClient.Client, cfg.Webhooks)
	webhookEvents := services.NewWebhookEventService(dbClient.Client)
	analytics := services.NewAnalyticsService(dbClient.Client, dbClient.DB())
	machines := services.NewMachineService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Machine registration and heartbeat
	hostname, _ := os.Hostname()
	if _, err := machines.RegisterMachine(ctx, machineID, hostname); err != nil {
		slog.Error("Failed to register machine", "error", err)
		os.Exit(1)
	}
	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go func() {
		ticker := time.NewTicker(machineHeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-heartbeatCtx.Done():
				return
			case <-ticker.C:
				if err := machines.Heartbeat(heartbeatCtx, machineID); err != nil {
					slog.Warn("Machine heartbeat failed", "error", err)
				}
			}
		}
	}()

	// 5. Event hub and WebSocket fan-out
	hub := events.NewHub(events.DefaultRingSize)
	connManager := events.NewConnectionManager(hub, 10*time.Second)
	hub.SetBroadcaster(connManager)
	publisher := events.NewTaskPublisher(hub)
	slog.Info("Event hub initialized")

	// 6. One-time startup orphan cleanup: running tasks from a previous
	// incarnation are failed, stranded queued tasks are requeued by the pool.
	if err := queue.FailStartupOrphans(ctx, tasks, publisher); err != nil {
		slog.Error("Failed to clean up startup orphans", "error", err)
		// Non-fatal, the worker-loss sweep covers stragglers
	}

	// 7. Outbound provider clients and completion notifier
	dispatcher := outbound.NewDispatcher(outbound.Config{
		GitHubToken: os.Getenv(cfg.System.GitHubTokenEnv),
		JiraBaseURL: cfg.System.JiraBaseURL,
		JiraEmail:   os.Getenv("JIRA_EMAIL"),
		JiraToken:   os.Getenv(cfg.System.JiraTokenEnv),
		SlackToken:  os.Getenv(cfg.System.SlackTokenEnv),
		SentryToken: os.Getenv(cfg.System.SentryTokenEnv),
	})

	// Optional Slack channel announcements for terminal tasks.
	var announcer queue.CompletionNotifier
	if sc := cfg.System.Slack; sc != nil && sc.Enabled {
		if svc := slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(sc.TokenEnv),
			Channel:      sc.Channel,
			DashboardURL: cfg.System.DashboardURL,
		}); svc != nil {
			announcer = svc
			slog.Info("Slack task announcements enabled", "channel", sc.Channel)
		}
	}

	// 8. CLI runner, executor, worker pool
	cliRunner := runner.NewCLIRunner(cfg.CLI)
	executor := queue.NewExecutor(cliRunner, cfg.Models, cfg.Tools, cfg.Queue, tasks, conversations, publisher)

	customPatterns := make(map[string]masking.Pattern, len(cfg.System.MaskingPatterns))
	for name, p := range cfg.System.MaskingPatterns {
		customPatterns[name] = masking.Pattern{Pattern: p.Pattern, Replacement: p.Replacement}
	}
	executor.SetMasker(masking.NewService(customPatterns))

	taskQueue := queue.NewQueue(cfg.Queue.Capacity)
	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, taskQueue, executor, queue.Deps{
		Tasks:         tasks,
		Conversations: conversations,
		Sessions:      sessions,
		Publisher:     publisher,
		Notifier:      queue.CombineNotifiers(outbound.NewNotifier(dispatcher), announcer),
	})
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Webhook engine
	engine := webhook.NewEngine(webhook.Deps{
		Webhooks:      webhooks,
		Audit:         webhookEvents,
		Tasks:         tasks,
		Conversations: conversations,
		Sessions:      sessions,
		Queue:         taskQueue,
		Publisher:     publisher,
		Outbound:      dispatcher,
	}, nil)

	// 10. Retention sweeps
	cleanupService := cleanup.NewService(cfg.Retention, sessions, tasks, machines)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 11. HTTP server
	server := api.NewServer(api.Deps{
		Config:        cfg,
		DB:            dbClient,
		Tasks:         tasks,
		Conversations: conversations,
		Sessions:      sessions,
		Webhooks:      webhooks,
		WebhookEvents: webhookEvents,
		Analytics:     analytics,
		Queue:         taskQueue,
		Pool:          workerPool,
		Publisher:     publisher,
		ConnManager:   connManager,
		Engine:        engine,
		Credentials:   credentials.NewStore(cfg.System.CredentialsPath),
	})
	httpServer := server.HTTPServer(":" + httpPort)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Drover started successfully",
		"machine_id", machineID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop accepting HTTP first, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, startup orphan cleanup will settle incomplete tasks")
	}

	slog.Info("Shutdown complete")
}
