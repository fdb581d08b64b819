package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/adapters/cache"
	"github.com/Amund211/battlemetrics/internal/app"
	"github.com/Amund211/battlemetrics/internal/config"
	"github.com/Amund211/battlemetrics/internal/dispatch"
	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/Amund211/battlemetrics/internal/ports"
	"github.com/Amund211/battlemetrics/internal/reporting"
	"github.com/Amund211/battlemetrics/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const LOOKUP_TIMEOUT = 20 * time.Second

// Token used against the mocked API in development
const DEVELOPMENT_TOKEN = "development"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(logging.NewTracingLogHandler(slog.NewJSONHandler(os.Stdout, nil))).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	if config.OTelEnabled() {
		shutdown, err := telemetry.SetupOTelSDK(context.Background(), "battlemetrics")
		if err != nil {
			fail("Failed to set up OpenTelemetry", "error", err.Error())
		}
		defer func() {
			err := shutdown(context.Background())
			if err != nil {
				logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized OpenTelemetry")
	}

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}
	battleMetricsAPI, err := battlemetrics.NewBattleMetricsAPIOrMock(config, httpClient, time.Now)
	if err != nil {
		fail("Failed to initialize BattleMetrics API", "error", err.Error())
	}
	logger.Info("Initialized BattleMetrics API")

	token := config.BattleMetricsToken()
	if token == "" {
		token = DEVELOPMENT_TOKEN
	}

	playtimeCache, stopPlaytimeCache := cache.NewPlaytimeCache(config.PlaytimeCacheTTL(), config.PlaytimeCacheCapacity())
	defer stopPlaytimeCache()

	mainExecutor := dispatch.NewDispatcher(func(recovered any) {
		ctx := logging.AddToContext(context.Background(), logger.With("component", "dispatcher"))
		reporting.Report(ctx, fmt.Errorf("callback panicked: %v", recovered))
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go mainExecutor.Run(ctx)

	workerPool := dispatch.NewWorkerPool(runtime.GOMAXPROCS(0))

	orchestrator := app.NewOrchestrator(
		battleMetricsAPI,
		battlemetrics.NewEndpoints("", config.Game(), config.PageSize()),
		playtimeCache,
		mainExecutor,
		workerPool,
	)

	http.HandleFunc(
		"GET /v1/players/{userID}/playtime",
		ports.MakeGetPlaytimeHandler(
			app.BuildAwaitPlayerTotalPlaytime(orchestrator),
			token,
			LOOKUP_TIMEOUT,
			logger.With("port", "playtime"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"GET /v1/players/{userID}/server",
		ports.MakeGetCurrentServerHandler(
			app.BuildAwaitPlayerCurrentServer(orchestrator),
			token,
			LOOKUP_TIMEOUT,
			logger.With("port", "server"),
			sentryMiddleware,
		),
	)

	http.HandleFunc(
		"GET /v1/organizations/{organizationID}/servers",
		ports.MakeGetOrganizationServersHandler(
			app.BuildAwaitOrganizationServers(orchestrator),
			token,
			LOOKUP_TIMEOUT,
			logger.With("port", "organizationservers"),
			sentryMiddleware,
		),
	)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), otelhttp.NewHandler(http.DefaultServeMux, "battlemetrics"))
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
