package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// execute runs the command tree and closes the log file whether or not the
// command succeeded.
func execute(cmd *cobra.Command, ctx *commandContext) error {
	err := cmd.Execute()
	if closeErr := ctx.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

func newRootCommand() (*cobra.Command, *commandContext) {
	var configFlag string
	var dataFileFlag string
	var jsonFlag bool

	ctx := newCommandContext(&configFlag, &dataFileFlag, &jsonFlag)

	rootCmd := &cobra.Command{
		Use:           "marquee",
		Short:         "Personal movie catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataFileFlag, "data-file", "", "Catalog file path (overrides paths.data_file)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Write JSON instead of tables")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newRecommendCommand(ctx))
	rootCmd.AddCommand(newGenreCommand(ctx))
	rootCmd.AddCommand(newReviewCommand(ctx))
	rootCmd.AddCommand(newGenresCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd, ctx
}
