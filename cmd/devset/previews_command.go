package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"devset/internal/previews"
)

func newPreviewsCommand(ctx *commandContext) *cobra.Command {
	previewsCmd := &cobra.Command{
		Use:   "previews",
		Short: "Preview tree utilities",
	}
	previewsCmd.AddCommand(newPreviewsScanCommand(ctx))
	return previewsCmd
}

func newPreviewsScanCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOut   bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "scan <raw-source-dir>",
		Short: "Report preview coverage for a directory of RAW files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			resolver, err := previews.NewResolver(cfg.Paths.PreviewsDir)
			if err != nil {
				return fmt.Errorf("index previews: %w", err)
			}

			coverage, err := previews.ScanCoverage(args[0], resolver, recursive)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, coverage)
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"RAW files", strconv.Itoa(coverage.RawFiles)},
				{"Unique stems", strconv.Itoa(coverage.UniqueStems)},
				{"Matched previews", strconv.Itoa(coverage.Matched)},
				{"Missing previews", strconv.Itoa(len(coverage.MissingStems))},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			colorize := shouldColorize(out)
			for _, stem := range coverage.MissingStems {
				fmt.Fprintln(out, renderStatusLine("missing", statusWarn, stem, colorize))
			}
			if len(coverage.MissingStems) == 0 {
				fmt.Fprintln(out, renderStatusLine("coverage", statusOK, "every RAW file has a preview", colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the coverage report as JSON")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into the source directory")
	return cmd
}
