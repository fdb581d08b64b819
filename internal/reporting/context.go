package reporting

import (
	"context"
	"maps"
	"strconv"
	"time"
)

type metaContextKey struct{}

// Meta is the scope data attached to every report made with a context
type Meta struct {
	tags           map[string]string
	userID         string
	organizationID string
	startedAt      time.Time
}

// The Steam id of the looked up player, if any
func (m Meta) UserID() string {
	return m.userID
}

// The BattleMetrics organization of the lookup, if any
func (m Meta) OrganizationID() string {
	return m.organizationID
}

// MetaFromContext returns a copy of the meta in ctx, safe to modify
func MetaFromContext(ctx context.Context) Meta {
	meta, _ := ctx.Value(metaContextKey{}).(Meta)
	meta.tags = maps.Clone(meta.tags)
	if meta.tags == nil {
		meta.tags = make(map[string]string)
	}
	return meta
}

func updateMeta(ctx context.Context, update func(meta *Meta)) context.Context {
	meta := MetaFromContext(ctx)
	update(&meta)
	return context.WithValue(ctx, metaContextKey{}, meta)
}

func setStartedAtInContext(ctx context.Context, startedAt time.Time) context.Context {
	return updateMeta(ctx, func(meta *Meta) {
		meta.startedAt = startedAt
	})
}

// Unvalidated user id taken from the request path
func setRawUserIDInContext(ctx context.Context, userID string) context.Context {
	return updateMeta(ctx, func(meta *Meta) {
		meta.userID = userID
	})
}

func AddTagsToContext(ctx context.Context, tags map[string]string) context.Context {
	return updateMeta(ctx, func(meta *Meta) {
		maps.Copy(meta.tags, tags)
	})
}

// AddUserToContext makes the looked up player the user of every report made with ctx
func AddUserToContext(ctx context.Context, userID uint64) context.Context {
	return updateMeta(ctx, func(meta *Meta) {
		meta.userID = strconv.FormatUint(userID, 10)
	})
}

// AddOrganizationToContext tags every report made with ctx with the organization
func AddOrganizationToContext(ctx context.Context, organizationID string) context.Context {
	return updateMeta(ctx, func(meta *Meta) {
		meta.organizationID = organizationID
	})
}
