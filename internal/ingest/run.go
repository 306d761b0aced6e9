package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"devset/internal/catalog"
	"devset/internal/config"
	"devset/internal/dataset"
	"devset/internal/logging"
	"devset/internal/previews"
	"devset/internal/sliders"
)

// ErrLocked indicates another ingest currently owns the dataset directory.
var ErrLocked = errors.New("ingest: dataset directory is locked by another run")

// Options wires the dependencies for one ingest run.
type Options struct {
	Config   *config.Config
	Registry *sliders.Registry
	Logger   *slog.Logger
}

// Report summarizes a completed ingest run.
type Report struct {
	RunID           string
	OutputPath      string
	TotalImages     int
	RowsWritten     int
	ParseFailures   []dataset.RecordError
	MissingPreviews int
	FilteredOut     int
	Duration        time.Duration
}

// Run executes a full catalog-to-CSV ingest. The CSV is written to a
// temporary file in the dataset directory and renamed into place only after
// every row has been flushed, so a failed run never leaves a truncated
// dataset behind.
func Run(ctx context.Context, opts Options) (*Report, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("ingest: config is required")
	}
	reg := opts.Registry
	if reg == nil {
		var err error
		if reg, err = sliders.NewBuiltin(); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	started := time.Now()
	logger = logger.With(logging.String("run_id", runID))

	lock := flock.New(filepath.Join(cfg.Paths.DatasetDir, "ingest.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire dataset lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			logger.Warn("release dataset lock", logging.Error(unlockErr))
		}
	}()

	store, err := catalog.Open(cfg.Paths.CatalogPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	records, err := store.Records(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog read",
		logging.String("catalog", cfg.Paths.CatalogPath),
		logging.Int("images", len(records)))

	resolver, err := previews.NewResolver(cfg.Paths.PreviewsDir)
	if err != nil {
		return nil, fmt.Errorf("index previews: %w", err)
	}
	logger.Info("previews indexed",
		logging.String("root", cfg.Paths.PreviewsDir),
		logging.Int("files", resolver.Len()))

	policy, err := dataset.ParsePolicy(cfg.Ingest.MissingPreviewPolicy)
	if err != nil {
		return nil, err
	}
	after, until, err := cfg.CaptureWindow()
	if err != nil {
		return nil, err
	}

	assembler := &dataset.Assembler{
		Registry: reg,
		Resolver: resolver,
		Filters: dataset.Filters{
			FlaggedOnly:   cfg.Ingest.FlaggedOnly,
			ColorLabel:    cfg.Ingest.ColorLabel,
			CapturedAfter: after,
			CapturedUntil: until,
		},
		Policy:  policy,
		Workers: cfg.Ingest.Workers,
	}

	result, err := assembler.Assemble(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("assemble dataset: %w", err)
	}
	for _, failure := range result.ParseFailures {
		logger.Warn("develop settings unparseable",
			logging.Int64("image_id", failure.ImageID),
			logging.String("stem", failure.Stem),
			logging.Error(failure.Err))
	}

	outputPath := filepath.Join(cfg.Paths.DatasetDir, "devset.csv")
	if err := writeCSV(outputPath, reg, result.Rows, dataset.CSVOptions{
		SliderNames: cfg.Ingest.Sliders,
		ExifNames:   cfg.Ingest.ExifColumns,
	}); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:           runID,
		OutputPath:      outputPath,
		TotalImages:     len(records),
		RowsWritten:     len(result.Rows),
		ParseFailures:   result.ParseFailures,
		MissingPreviews: result.MissingPreviews,
		FilteredOut:     result.FilteredOut,
		Duration:        time.Since(started),
	}
	logger.Info("ingest complete",
		logging.String("output", report.OutputPath),
		logging.Int("rows", report.RowsWritten),
		logging.Int("parse_failures", len(report.ParseFailures)),
		logging.Int("missing_previews", report.MissingPreviews),
		logging.Int("filtered_out", report.FilteredOut),
		logging.Duration("duration", report.Duration))
	return report, nil
}

func writeCSV(path string, reg *sliders.Registry, rows []dataset.Row, opts dataset.CSVOptions) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".devset-*.csv")
	if err != nil {
		return fmt.Errorf("create dataset temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := dataset.WriteCSV(tmp, reg, rows, opts); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("flush dataset temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publish dataset file: %w", err)
	}
	return nil
}
