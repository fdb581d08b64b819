package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/adapters/cache"
	"github.com/Amund211/battlemetrics/internal/dispatch"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/jsonapi"
	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/Amund211/battlemetrics/internal/reporting"
)

// Playtime delivered when the total playtime could not be determined
const PlaytimeUnknown = -1

type documentGetter interface {
	GetDocument(ctx context.Context, token string, endpoint battlemetrics.Endpoint) (jsonapi.Document, error)
}

// Orchestrator chains dependent BattleMetrics requests into single lookups.
//
// Every lookup runs on its own goroutine, with the requests of one lookup issued strictly in sequence.
// Callbacks are always invoked on mainExecutor, with the exception of playtime cache hits which are
// delivered synchronously. Failures, including a missing token, are delivered as sentinel values.
// Only a nil callback panics.
type Orchestrator struct {
	api           documentGetter
	endpoints     battlemetrics.Endpoints
	playtimeCache cache.PlaytimeCache

	mainExecutor   dispatch.Executor
	workerExecutor dispatch.Executor
}

func NewOrchestrator(
	api documentGetter,
	endpoints battlemetrics.Endpoints,
	playtimeCache cache.PlaytimeCache,
	mainExecutor dispatch.Executor,
	workerExecutor dispatch.Executor,
) *Orchestrator {
	return &Orchestrator{
		api:           api,
		endpoints:     endpoints,
		playtimeCache: playtimeCache,

		mainExecutor:   mainExecutor,
		workerExecutor: workerExecutor,
	}
}

// Panics on a nil callback, as there is nowhere to deliver the result.
// An empty token is not checked here: the request fails and the sentinel is delivered.
func mustHaveCallback(operation string, callbackIsNil bool) {
	if callbackIsNil {
		panic(fmt.Errorf("%w: %s called without a callback", domain.ErrInvalidArgument, operation))
	}
}

// Tags the logs and error reports of a lookup with the user
func withUserMeta(ctx context.Context, userID uint64) context.Context {
	ctx = logging.AddUserIDToContext(ctx, userID)
	return reporting.AddUserToContext(ctx, userID)
}

func (o *Orchestrator) deliver(fn func()) {
	o.mainExecutor.Post(fn)
}

// getDocument performs a single request. Any failure gives an absent document.
func (o *Orchestrator) getDocument(ctx context.Context, token string, endpoint battlemetrics.Endpoint) jsonapi.Document {
	doc, err := o.api.GetDocument(ctx, token, endpoint)
	if errors.Is(err, domain.ErrInvalidArgument) {
		// Missing token from the caller, or a bug in the endpoint construction
		reporting.Report(ctx, fmt.Errorf("invalid battlemetrics request: %w", err))
		return jsonapi.Document{}
	} else if err != nil {
		// NOTE: BattleMetricsAPI implementations handle their own error reporting
		logging.FromContext(ctx).InfoContext(
			ctx,
			"battlemetrics request failed",
			slog.String("endpoint", endpoint.Name),
			slog.String("error", err.Error()),
		)
		return jsonapi.Document{}
	}
	return doc
}

// lookupPlayerID resolves the BattleMetrics player id of a user
func (o *Orchestrator) lookupPlayerID(ctx context.Context, token string, userID uint64) (string, bool) {
	playerDoc := o.getDocument(ctx, token, o.endpoints.PlayerSearch(userID))

	playerID, ok := battlemetrics.ExtractPlayerID(playerDoc)
	if !ok {
		logging.FromContext(ctx).InfoContext(ctx, "No battlemetrics player found")
		return "", false
	}
	return playerID, true
}
