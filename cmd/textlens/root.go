package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var dataDirFlag string
	var catalogFlag string

	ctx := newCommandContext(&dataDirFlag, &catalogFlag)

	rootCmd := &cobra.Command{
		Use:           "textlens",
		Short:         "Word frequency and theme distribution for Sir Gawain and the Green Knight",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", "", "Directory relative data paths resolve against (default $DATA_DIR or .)")
	rootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "", "Data catalog file (default $CATALOG_PATH)")

	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newTopCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newDistributionCommand(ctx))
	rootCmd.AddCommand(newOverlapCommand(ctx))
	rootCmd.AddCommand(newComparisonCommand(ctx))

	return rootCmd
}
