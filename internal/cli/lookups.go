package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/adapters/cache"
	"github.com/Amund211/battlemetrics/internal/app"
	"github.com/Amund211/battlemetrics/internal/dispatch"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type lookups struct {
	awaitPlayerTotalPlaytime app.AwaitPlayerTotalPlaytime
	awaitPlayerCurrentServer app.AwaitPlayerCurrentServer
	awaitOrganizationServers app.AwaitOrganizationServers

	stop func()
}

// One orchestrator per invocation, with the main executor running until stop is called
func newLookups(cfg *Config, logger *slog.Logger) (*lookups, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("missing token: set --token or BATTLEMETRICS_TOKEN")
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   cfg.Timeout,
	}
	api, err := battlemetrics.NewBattleMetricsAPI(httpClient, time.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize BattleMetrics API: %w", err)
	}

	mainExecutor := dispatch.NewDispatcher(func(recovered any) {
		logger.Error("Callback panicked", slog.Any("recovered", recovered))
	})
	ctx, cancel := context.WithCancel(context.Background())
	go mainExecutor.Run(ctx)

	orchestrator := app.NewOrchestrator(
		api,
		battlemetrics.NewEndpoints(cfg.APIURL, cfg.gameFilter(), cfg.PageSize),
		cache.NewBasicPlaytimeCache(),
		mainExecutor,
		dispatch.NewWorkerPool(1),
	)

	return &lookups{
		awaitPlayerTotalPlaytime: app.BuildAwaitPlayerTotalPlaytime(orchestrator),
		awaitPlayerCurrentServer: app.BuildAwaitPlayerCurrentServer(orchestrator),
		awaitOrganizationServers: app.BuildAwaitOrganizationServers(orchestrator),
		stop:                     cancel,
	}, nil
}
