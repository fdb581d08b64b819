package app

import (
	"context"
	"slices"

	"github.com/Amund211/battlemetrics/internal/adapters/battlemetrics"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/Amund211/battlemetrics/internal/jsonapi"
	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/Amund211/battlemetrics/internal/reporting"
)

// GetOrganizationServers delivers the raw server list of the organization, for use with battlemetrics.ExtractServers.
// An absent document is delivered on failure.
func (o *Orchestrator) GetOrganizationServers(ctx context.Context, token string, organizationID string, callback func(serverListDoc jsonapi.Document)) {
	mustHaveCallback("GetOrganizationServers", callback == nil)
	ctx = withOrganizationMeta(ctx, organizationID)

	go func() {
		serverListDoc := o.getDocument(ctx, token, o.endpoints.OrganizationServers(organizationID))
		o.deliver(func() {
			callback(serverListDoc)
		})
	}()
}

// GetOrganizationServerList delivers the valid servers of the organization. Empty on failure.
func (o *Orchestrator) GetOrganizationServerList(ctx context.Context, token string, organizationID string, callback func(servers []domain.Server)) {
	mustHaveCallback("GetOrganizationServerList", callback == nil)

	o.GetOrganizationServers(ctx, token, organizationID, func(serverListDoc jsonapi.Document) {
		servers := slices.Collect(battlemetrics.ExtractServers(serverListDoc))
		if servers == nil {
			servers = []domain.Server{}
		}
		callback(servers)
	})
}

func withOrganizationMeta(ctx context.Context, organizationID string) context.Context {
	ctx = logging.AddOrganizationIDToContext(ctx, organizationID)
	return reporting.AddOrganizationToContext(ctx, organizationID)
}
