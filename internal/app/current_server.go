package app

import (
	"context"
	"log/slog"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/logging"
)

// GetPlayerCurrentServer delivers the id of the server the user is currently playing on.
// ok is false if the user is offline or the server could not be determined.
func (o *Orchestrator) GetPlayerCurrentServer(ctx context.Context, token string, userID uint64, callback func(serverID string, ok bool)) {
	mustHaveCallback("GetPlayerCurrentServer", callback == nil)
	ctx = withUserMeta(ctx, userID)

	go func() {
		serverID, ok := o.getPlayerCurrentServer(ctx, token, userID)
		o.deliver(func() {
			callback(serverID, ok)
		})
	}()
}

func (o *Orchestrator) getPlayerCurrentServer(ctx context.Context, token string, userID uint64) (string, bool) {
	logger := logging.FromContext(ctx)

	playerID, ok := o.lookupPlayerID(ctx, token, userID)
	if !ok {
		return "", false
	}

	sessionDoc := o.getDocument(ctx, token, o.endpoints.PlayerSessions(playerID))
	lastServer, ok := battlemetrics.ExtractSession(sessionDoc).LastServer()
	if !ok {
		logger.InfoContext(ctx, "No sessions found", slog.String("playerID", playerID))
		return "", false
	}

	serverDoc := o.getDocument(ctx, token, o.endpoints.PlayerServer(playerID, lastServer))
	if !battlemetrics.IsOnline(serverDoc) {
		logger.InfoContext(ctx, "Player is not online", slog.String("playerID", playerID), slog.String("serverID", lastServer))
		return "", false
	}

	return lastServer, true
}
