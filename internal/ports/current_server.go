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

func MakeGetCurrentServerHandler(
	awaitPlayerCurrentServer app.AwaitPlayerCurrentServer,
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

		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		serverID, online, err := awaitPlayerCurrentServer(lookupCtx, token, userID)
		if err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "Current server lookup did not complete", slog.String("error", err.Error()))
			writeLookupErrorResponse(ctx, w, err)
			return
		}

		// Offline and unknown are indistinguishable
		writeJSONResponse(ctx, w, http.StatusOK, currentServerResponse{
			Success:  true,
			UserID:   strconv.FormatUint(userID, 10),
			ServerID: serverID,
			Online:   online,
		})
	}

	return middleware(handler)
}
