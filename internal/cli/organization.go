package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newOrgServersCmd(cfg *Config, state *lookups) *cobra.Command {
	return &cobra.Command{
		Use:   "org-servers <organizationID>",
		Short: "List the servers of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			organizationID := args[0]

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			servers, err := state.awaitOrganizationServers(ctx, cfg.Token, organizationID)
			if err != nil {
				return err
			}

			result := ServersResult{
				OrganizationID: organizationID,
				Servers:        make([]Server, 0, len(servers)),
			}
			for _, server := range servers {
				result.Servers = append(result.Servers, Server{
					ID:   server.ID,
					Name: server.Name,
					IP:   server.IP,
					Port: server.Port,
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
