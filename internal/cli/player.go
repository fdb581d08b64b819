package cli

import (
	"context"
	"strconv"

	"github.com/Amund211/battlemetrics/internal/app"
	"github.com/Amund211/battlemetrics/internal/domain"
	"github.com/spf13/cobra"
)

func newPlaytimeCmd(cfg *Config, state *lookups) *cobra.Command {
	return &cobra.Command{
		Use:   "playtime <steamid>",
		Short: "Show the total playtime of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := domain.ParseUserID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			playtime, err := state.awaitPlayerTotalPlaytime(ctx, cfg.Token, userID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(PlaytimeResult{
				UserID:   strconv.FormatUint(userID, 10),
				Known:    playtime != app.PlaytimeUnknown,
				Playtime: max(playtime, 0),
			})
			return nil
		},
	}
}

func newServerCmd(cfg *Config, state *lookups) *cobra.Command {
	return &cobra.Command{
		Use:   "server <steamid>",
		Short: "Show the server a player is currently playing on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := domain.ParseUserID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			serverID, online, err := state.awaitPlayerCurrentServer(ctx, cfg.Token, userID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(CurrentServerResult{
				UserID:   strconv.FormatUint(userID, 10),
				Online:   online,
				ServerID: serverID,
			})
			return nil
		},
	}
}
