package logging

import (
	"context"
	"log/slog"
	"os"
	"strconv"
)

// Attribute keys shared by the request middleware and the lookups
const (
	UserIDKey         = "userID"
	OrganizationIDKey = "organizationID"
)

type loggerContextKey struct{}

// FromContext returns the logger stored in ctx.
// Without one, log lines go to stdout tagged with logger=fallback so they can be found.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("logger", "fallback"))
}

func AddToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// AddMetaToContext stores a child logger carrying attrs
func AddMetaToContext(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	logger := FromContext(ctx)
	return AddToContext(ctx, slog.New(logger.Handler().WithAttrs(attrs)))
}

// AddUserIDToContext tags every log line of ctx with the Steam id of the looked up player
func AddUserIDToContext(ctx context.Context, userID uint64) context.Context {
	return AddMetaToContext(ctx, slog.String(UserIDKey, strconv.FormatUint(userID, 10)))
}

// AddOrganizationIDToContext tags every log line of ctx with the organization
func AddOrganizationIDToContext(ctx context.Context, organizationID string) context.Context {
	return AddMetaToContext(ctx, slog.String(OrganizationIDKey, organizationID))
}
