package battlemetrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Amund211/battlemetrics/internal/constants"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/jsonapi"
	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/Amund211/battlemetrics/internal/reporting"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type BattleMetricsAPI interface {
	// Performs an authenticated GET and parses the response as a JSON object.
	//
	// Returns domain.ErrInvalidArgument if token or endpoint url is empty.
	// Returns domain.ErrNotFound if the API responds with 404.
	// Returns domain.ErrTemporarilyUnavailable for responses believed to be intermittent.
	GetDocument(ctx context.Context, token string, endpoint Endpoint) (jsonapi.Document, error)
}

type battleMetricsAPIMetricsCollection struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
}

func setupBattleMetricsAPIMetrics(meter metric.Meter) (battleMetricsAPIMetricsCollection, error) {
	requestCount, err := meter.Int64Counter("battlemetrics/api/request_count")
	if err != nil {
		return battleMetricsAPIMetricsCollection{}, fmt.Errorf("failed to create request count metric: %w", err)
	}

	requestDuration, err := meter.Float64Histogram(
		"battlemetrics/api/request_duration",
		metric.WithUnit("s"),
	)
	if err != nil {
		return battleMetricsAPIMetricsCollection{}, fmt.Errorf("failed to create request duration metric: %w", err)
	}

	return battleMetricsAPIMetricsCollection{
		requestCount:    requestCount,
		requestDuration: requestDuration,
	}, nil
}

type battleMetricsAPIImpl struct {
	httpClient HttpClient
	nowFunc    func() time.Time

	metrics battleMetricsAPIMetricsCollection
	tracer  trace.Tracer
}

func NewBattleMetricsAPI(httpClient HttpClient, nowFunc func() time.Time) (BattleMetricsAPI, error) {
	const name = "battlemetrics/adapters/battlemetrics"

	meter := otel.Meter(name)
	tracer := otel.Tracer(name)

	metrics, err := setupBattleMetricsAPIMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	return &battleMetricsAPIImpl{
		httpClient: httpClient,
		nowFunc:    nowFunc,

		metrics: metrics,
		tracer:  tracer,
	}, nil
}

func (api *battleMetricsAPIImpl) GetDocument(ctx context.Context, token string, endpoint Endpoint) (jsonapi.Document, error) {
	if token == "" {
		return jsonapi.Document{}, fmt.Errorf("%w: missing token", domain.ErrInvalidArgument)
	}
	if endpoint.URL == "" {
		return jsonapi.Document{}, fmt.Errorf("%w: missing url", domain.ErrInvalidArgument)
	}

	ctx, span := api.tracer.Start(ctx, "BattleMetrics.GetDocument", trace.WithAttributes(
		attribute.String("endpoint", endpoint.Name),
	))
	defer span.End()

	logger := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL, nil)
	if err != nil {
		err := fmt.Errorf("failed to create request: %w", err)
		span.SetStatus(codes.Error, err.Error())
		reporting.Report(ctx, err)
		return jsonapi.Document{}, err
	}

	req.Header.Set("User-Agent", constants.USER_AGENT)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	start := api.nowFunc()
	resp, err := api.httpClient.Do(req)
	if err != nil {
		api.recordRequest(ctx, endpoint, "error", start)
		err := fmt.Errorf("failed to send request: %w", err)
		span.SetStatus(codes.Error, err.Error())
		if !errors.Is(err, context.Canceled) {
			// Cancellation comes from the caller giving up, not from the API
			reporting.Report(ctx, err)
		}
		return jsonapi.Document{}, err
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		api.recordRequest(ctx, endpoint, "error", start)
		err := fmt.Errorf("failed to read response body: %w", err)
		span.SetStatus(codes.Error, err.Error())
		reporting.Report(ctx, err)
		return jsonapi.Document{}, err
	}

	api.recordRequest(ctx, endpoint, statusClass(resp.StatusCode), start)
	span.SetAttributes(attribute.Int("status_code", resp.StatusCode))
	logger.InfoContext(
		ctx,
		"battlemetrics request completed",
		slog.String("endpoint", endpoint.Name),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", api.nowFunc().Sub(start).String()),
	)

	doc, err := documentFromResponse(resp.StatusCode, data)
	if errors.Is(err, domain.ErrNotFound) {
		// Pass through error but don't report
		return jsonapi.Document{}, err
	} else if err != nil {
		span.SetStatus(codes.Error, err.Error())
		reporting.Report(ctx, err, map[string]string{
			"endpoint": endpoint.Name,
			"status":   strconv.Itoa(resp.StatusCode),
		})
		return jsonapi.Document{}, err
	}

	return doc, nil
}

func (api *battleMetricsAPIImpl) recordRequest(ctx context.Context, endpoint Endpoint, status string, start time.Time) {
	attributes := metric.WithAttributes(
		attribute.String("endpoint", endpoint.Name),
		attribute.String("status", status),
	)
	api.metrics.requestCount.Add(ctx, 1, attributes)
	api.metrics.requestDuration.Record(ctx, api.nowFunc().Sub(start).Seconds(), attributes)
}

func statusClass(statusCode int) string {
	return fmt.Sprintf("%dxx", statusCode/100)
}

func documentFromResponse(statusCode int, data []byte) (jsonapi.Document, error) {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return jsonapi.Document{}, fmt.Errorf("%w: battlemetrics API returned status code %d", domain.ErrTemporarilyUnavailable, statusCode)
	}

	if statusCode == http.StatusNotFound {
		return jsonapi.Document{}, fmt.Errorf("%w: battlemetrics API returned status code %d", domain.ErrNotFound, statusCode)
	}

	if statusCode < 200 || statusCode > 299 {
		return jsonapi.Document{}, fmt.Errorf("battlemetrics API returned unsupported status code: %d", statusCode)
	}

	// Cloudflare error pages
	if len(data) > 0 && data[0] == '<' {
		return jsonapi.Document{}, fmt.Errorf("battlemetrics API returned HTML (%w)", domain.ErrTemporarilyUnavailable)
	}

	doc, err := jsonapi.Parse(data)
	if err != nil {
		return jsonapi.Document{}, fmt.Errorf("failed to parse battlemetrics response: %w", err)
	}

	return doc, nil
}
