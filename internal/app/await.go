package app

import (
	"context"
	"fmt"

	"github.com/Amund211/battlemetrics/internal/domain"
)

// Synchronous variants of the orchestrator operations for hosts that are not callback driven.
//
// NOTE: The callbacks run on the main executor. Calling these from the main executor itself deadlocks.

type AwaitPlayerTotalPlaytime func(ctx context.Context, token string, userID uint64) (int, error)

type AwaitPlayerCurrentServer func(ctx context.Context, token string, userID uint64) (string, bool, error)

type AwaitOrganizationServers func(ctx context.Context, token string, organizationID string) ([]domain.Server, error)

func awaitResult[T any](ctx context.Context, operation string, start func(callback func(T))) (T, error) {
	// Buffered so a late callback never blocks the main executor
	results := make(chan T, 1)
	start(func(result T) {
		results <- result
	})

	select {
	case result := <-results:
		return result, nil
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("%s did not complete: %w", operation, ctx.Err())
	}
}

func BuildAwaitPlayerTotalPlaytime(orchestrator *Orchestrator) AwaitPlayerTotalPlaytime {
	return func(ctx context.Context, token string, userID uint64) (int, error) {
		return awaitResult(ctx, "playtime lookup", func(callback func(int)) {
			orchestrator.GetPlayerTotalPlaytime(ctx, token, userID, callback)
		})
	}
}

func BuildAwaitPlayerCurrentServer(orchestrator *Orchestrator) AwaitPlayerCurrentServer {
	type currentServer struct {
		serverID string
		ok       bool
	}

	return func(ctx context.Context, token string, userID uint64) (string, bool, error) {
		result, err := awaitResult(ctx, "current server lookup", func(callback func(currentServer)) {
			orchestrator.GetPlayerCurrentServer(ctx, token, userID, func(serverID string, ok bool) {
				callback(currentServer{serverID: serverID, ok: ok})
			})
		})
		if err != nil {
			return "", false, err
		}
		return result.serverID, result.ok, nil
	}
}

func BuildAwaitOrganizationServers(orchestrator *Orchestrator) AwaitOrganizationServers {
	return func(ctx context.Context, token string, organizationID string) ([]domain.Server, error) {
		return awaitResult(ctx, "organization servers lookup", func(callback func([]domain.Server)) {
			orchestrator.GetOrganizationServerList(ctx, token, organizationID, callback)
		})
	}
}
