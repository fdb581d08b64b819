package ports

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Amund211/battlemetrics/internal/app"
	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/Amund211/battlemetrics/internal/reporting"
)

func MakeGetOrganizationServersHandler(
	awaitOrganizationServers app.AwaitOrganizationServers,
	token string,
	timeout time.Duration,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := buildLookupMiddleware(rootLogger, sentryMiddleware)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		organizationID := strings.TrimSpace(r.PathValue("organizationID"))
		if organizationID == "" || len(organizationID) > 32 {
			writeErrorResponse(ctx, w, http.StatusBadRequest, "invalid organization id")
			return
		}
		ctx = logging.AddOrganizationIDToContext(ctx, organizationID)
		ctx = reporting.AddOrganizationToContext(ctx, organizationID)

		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		servers, err := awaitOrganizationServers(lookupCtx, token, organizationID)
		if err != nil {
			logging.FromContext(ctx).WarnContext(ctx, "Organization servers lookup did not complete", slog.String("error", err.Error()))
			writeLookupErrorResponse(ctx, w, err)
			return
		}

		writeJSONResponse(ctx, w, http.StatusOK, serversToResponse(servers))
	}

	return middleware(handler)
}
