package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	state := &lookups{}

	rootCmd := &cobra.Command{
		Use:   "bmlookup",
		Short: "Look up players and servers on BattleMetrics",
		Long: `bmlookup queries the BattleMetrics API for a player's total playtime,
the server a player is currently playing on and the servers of an organization.

Players are identified by their Steam id.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelInfo
			}
			logger := slog.New(logging.NewTracingLogHandler(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.AddToContext(ctx, logger))

			created, err := newLookups(cfg, logger)
			if err != nil {
				return err
			}
			*state = *created
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.stop != nil {
				state.stop()
			}
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "BattleMetrics API token (env: BATTLEMETRICS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "BattleMetrics API base url (env: BATTLEMETRICS_API_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Game, "game", cfg.Game, "Game filter for server lists, none to disable (env: BATTLEMETRICS_GAME)")
	rootCmd.PersistentFlags().IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Page size for server lists, 0 for the API default (env: BATTLEMETRICS_PAGE_SIZE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout for a lookup")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlaytimeCmd(cfg, state))
	rootCmd.AddCommand(newServerCmd(cfg, state))
	rootCmd.AddCommand(newOrgServersCmd(cfg, state))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
