package app

import (
	"context"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/logging"
)

// GetPlayerTotalPlaytime delivers the total playtime of the user in seconds, or PlaytimeUnknown.
//
// Cached playtimes are delivered synchronously on the calling goroutine without any requests.
// Successful lookups are cached for the lifetime of the playtime cache.
func (o *Orchestrator) GetPlayerTotalPlaytime(ctx context.Context, token string, userID uint64, callback func(seconds int)) {
	mustHaveCallback("GetPlayerTotalPlaytime", callback == nil)
	ctx = withUserMeta(ctx, userID)
	logger := logging.FromContext(ctx)

	if playtime, ok := o.playtimeCache.Get(userID); ok {
		logger.InfoContext(ctx, "Getting player playtime", "cache", "hit")
		callback(playtime)
		return
	}
	logger.InfoContext(ctx, "Getting player playtime", "cache", "miss")

	fail := func() {
		o.deliver(func() {
			callback(PlaytimeUnknown)
		})
	}

	go func() {
		playerID, ok := o.lookupPlayerID(ctx, token, userID)
		if !ok {
			fail()
			return
		}

		playerDoc := o.getDocument(ctx, token, o.endpoints.PlayerWithServers(playerID))

		// The summation runs on the worker, the continuation on the main executor
		scheduled := battlemetrics.ExtractTotalPlaytime(playerDoc, o.workerExecutor, o.mainExecutor, func(seconds int) {
			o.playtimeCache.Put(userID, seconds)
			callback(seconds)
		})
		if !scheduled {
			logger.InfoContext(ctx, "No playtime in player response")
			fail()
		}
	}()
}
