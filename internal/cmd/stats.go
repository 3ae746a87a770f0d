package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joern1811/wachatview/internal/adapter/renderer"
	"github.com/joern1811/wachatview/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats <export>",
	Short: "Show per-participant message statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, filter, err := setup(cmd)
		if err != nil {
			return err
		}

		stats, err := svc.Stats(cmd.Context(), args[0], filter)
		if err != nil {
			return err
		}

		renderer.RenderStats(cmd.OutOrStdout(), stats, domain.ParseLocale(cfg.Locale))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
