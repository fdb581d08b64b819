package ports

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Amund211/battlemetrics/internal/app"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/logging"
)

func MakeGetPlaytimeHandler(
	awaitPlayerTotalPlaytime app.AwaitPlayerTotalPlaytime,
	token string,
	timeout time.Duration,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildLookupMiddleware(rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := domain.ParseUserID(r.PathValue("userID"))
		if err != nil {
			writeErrorResponse(ctx, w, http.StatusBadRequest, "invalid user id")
			return
		}
		rawUserID := strconv.FormatUint(userID, 10)

		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		playtime, err := awaitPlayerTotalPlaytime(lookupCtx, token, userID)
		if err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "Playtime lookup did not complete", slog.String("error", err.Error()))
			writeLookupErrorResponse(ctx, w, err)
			return
		}

		if playtime == app.PlaytimeUnknown {
			writeErrorResponse(ctx, w, http.StatusNotFound, "playtime unknown")
			return
		}

		writeJSONResponse(ctx, w, http.StatusOK, playtimeResponse{
			Success:  true,
			UserID:   rawUserID,
			Playtime: playtime,
		})
	}

	return middleware(handler)
}
