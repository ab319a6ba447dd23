package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON, CSV or SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			return ctx.withStore(cmd, false, func(store *catalog.Store) error {
				movies := store.ListAll()
				target := strings.TrimSpace(output)
				if target == "" || target == "-" {
					return export.To(cmd.OutOrStdout(), format, movies)
				}
				if err := export.ToFile(cmd.Context(), format, target, movies); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d movie%s to %s\n", len(movies), plural(len(movies)), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", string(export.FormatJSON), "Export format: json, csv or sqlite")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (stdout when empty; required for sqlite)")
	return cmd
}
