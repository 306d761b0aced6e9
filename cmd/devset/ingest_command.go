package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"devset/internal/ingest"
	"devset/internal/logging"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOut     bool
		flaggedOnly bool
		colorLabel  string
		workers     int
		policy      string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Build the training dataset CSV from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			reg, err := ctx.ensureRegistry()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("flagged-only") {
				cfg.Ingest.FlaggedOnly = flaggedOnly
			}
			if cmd.Flags().Changed("color-label") {
				cfg.Ingest.ColorLabel = colorLabel
			}
			if cmd.Flags().Changed("workers") {
				cfg.Ingest.Workers = workers
			}
			if cmd.Flags().Changed("missing-preview") {
				cfg.Ingest.MissingPreviewPolicy = policy
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Keep stdout clean for the report; logs go to stderr and the
			// log file.
			logger, err := logging.New(logging.Options{
				Level:            cfg.Logging.Level,
				Format:           cfg.Logging.Format,
				OutputPaths:      []string{"stderr", filepath.Join(cfg.Paths.LogDir, "devset.log")},
				ErrorOutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}

			report, err := ingest.Run(cmd.Context(), ingest.Options{
				Config:   cfg,
				Registry: reg,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, ingestReportView(report))
			}
			return renderIngestReport(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run report as JSON")
	cmd.Flags().BoolVar(&flaggedOnly, "flagged-only", false, "Only include flagged images")
	cmd.Flags().StringVar(&colorLabel, "color-label", "", "Only include images with this color label")
	cmd.Flags().IntVar(&workers, "workers", 0, "Decode worker count (0 = number of CPUs)")
	cmd.Flags().StringVar(&policy, "missing-preview", "", "Missing preview policy: skip or keep")
	return cmd
}

type ingestReportJSON struct {
	RunID           string  `json:"run_id"`
	Output          string  `json:"output"`
	TotalImages     int     `json:"total_images"`
	RowsWritten     int     `json:"rows_written"`
	ParseFailures   int     `json:"parse_failures"`
	MissingPreviews int     `json:"missing_previews"`
	FilteredOut     int     `json:"filtered_out"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func ingestReportView(report *ingest.Report) ingestReportJSON {
	return ingestReportJSON{
		RunID:           report.RunID,
		Output:          report.OutputPath,
		TotalImages:     report.TotalImages,
		RowsWritten:     report.RowsWritten,
		ParseFailures:   len(report.ParseFailures),
		MissingPreviews: report.MissingPreviews,
		FilteredOut:     report.FilteredOut,
		DurationSeconds: report.Duration.Seconds(),
	}
}

func renderIngestReport(cmd *cobra.Command, report *ingest.Report) error {
	out := cmd.OutOrStdout()

	rows := [][]string{
		{"Run ID", report.RunID},
		{"Output", report.OutputPath},
		{"Images in catalog", strconv.Itoa(report.TotalImages)},
		{"Rows written", strconv.Itoa(report.RowsWritten)},
		{"Parse failures", strconv.Itoa(len(report.ParseFailures))},
		{"Missing previews", strconv.Itoa(report.MissingPreviews)},
		{"Filtered out", strconv.Itoa(report.FilteredOut)},
		{"Duration", report.Duration.Round(timeRounding).String()},
	}
	fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))

	colorize := shouldColorize(out)
	for _, failure := range report.ParseFailures {
		fmt.Fprintln(out, renderStatusLine("parse failure", statusWarn, failure.Error(), colorize))
	}
	if len(report.ParseFailures) == 0 && report.MissingPreviews == 0 {
		fmt.Fprintln(out, renderStatusLine("result", statusOK, "every image ingested cleanly", colorize))
	}
	return nil
}
