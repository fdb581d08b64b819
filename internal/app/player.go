package app

import (
	"context"

	"github.com/Amund211/battlemetrics/internal/jsonapi"
)

// GetPlayer searches for the user and delivers the raw player search response.
// An absent document is delivered on failure.
func (o *Orchestrator) GetPlayer(ctx context.Context, token string, userID uint64, callback func(playerDoc jsonapi.Document)) {
	mustHaveCallback("GetPlayer", callback == nil)
	ctx = withUserMeta(ctx, userID)

	go func() {
		playerDoc := o.getDocument(ctx, token, o.endpoints.PlayerSearch(userID))
		o.deliver(func() {
			callback(playerDoc)
		})
	}()
}

// GetPlayerSession delivers the raw sessions response of the user.
// An absent document is delivered if the user has no BattleMetrics player or a request fails.
func (o *Orchestrator) GetPlayerSession(ctx context.Context, token string, userID uint64, callback func(sessionDoc jsonapi.Document)) {
	mustHaveCallback("GetPlayerSession", callback == nil)
	ctx = withUserMeta(ctx, userID)

	go func() {
		sessionDoc := o.getPlayerSessionDocument(ctx, token, userID)
		o.deliver(func() {
			callback(sessionDoc)
		})
	}()
}

func (o *Orchestrator) getPlayerSessionDocument(ctx context.Context, token string, userID uint64) jsonapi.Document {
	playerID, ok := o.lookupPlayerID(ctx, token, userID)
	if !ok {
		return jsonapi.Document{}
	}
	return o.getDocument(ctx, token, o.endpoints.PlayerSessions(playerID))
}
