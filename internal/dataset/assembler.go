package dataset

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"devset/internal/catalog"
	"devset/internal/develop"
	"devset/internal/sliders"
)

// MissingPreviewPolicy decides what happens to a decodable record whose stem
// has no preview file.
type MissingPreviewPolicy int

const (
	// SkipRow drops the record and counts it.
	SkipRow MissingPreviewPolicy = iota
	// KeepWithNullPreview emits the row with an empty preview path.
	KeepWithNullPreview
)

// ParsePolicy parses the configuration spelling of a policy.
func ParsePolicy(value string) (MissingPreviewPolicy, error) {
	switch value {
	case "", "skip":
		return SkipRow, nil
	case "keep":
		return KeepWithNullPreview, nil
	default:
		return SkipRow, fmt.Errorf("unknown missing-preview policy %q (want skip or keep)", value)
	}
}

// Filters narrows which catalog records become dataset rows. Zero values
// leave the corresponding dimension unfiltered.
type Filters struct {
	FlaggedOnly   bool
	ColorLabel    string
	CapturedAfter time.Time
	CapturedUntil time.Time
}

func (f Filters) match(rec catalog.Record) bool {
	if f.FlaggedOnly && !rec.Flagged() {
		return false
	}
	if f.ColorLabel != "" && rec.ColorLabel != f.ColorLabel {
		return false
	}
	if !f.CapturedAfter.IsZero() || !f.CapturedUntil.IsZero() {
		captured, ok := parseCaptureTime(rec.CaptureTime)
		if !ok {
			return false
		}
		if !f.CapturedAfter.IsZero() && captured.Before(f.CapturedAfter) {
			return false
		}
		if !f.CapturedUntil.IsZero() && captured.After(f.CapturedUntil) {
			return false
		}
	}
	return true
}

// parseCaptureTime reads the catalog's timestamp text, which drops the
// timezone suffix most of the time.
func parseCaptureTime(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Row is one assembled dataset row: an image stem, its resolved preview (if
// any), the decoded slider vector, and the exif fields selected for export.
type Row struct {
	ImageID     int64
	Stem        string
	PreviewPath string
	Sliders     sliders.Vector
	Exif        catalog.Exif
}

// RecordError ties a per-record failure to the offending image.
type RecordError struct {
	ImageID int64
	Stem    string
	Err     error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("image %d (%s): %v", e.ImageID, e.Stem, e.Err)
}

// Result carries the rows plus the per-class failure tallies for one
// assemble run. Parse failures never abort a batch; they ride along here.
type Result struct {
	Rows            []Row
	ParseFailures   []RecordError
	MissingPreviews int
	FilteredOut     int
}

// Resolver resolves an image stem to a preview path.
type Resolver interface {
	Resolve(stem string) (string, bool)
}

// Assembler builds dataset rows from catalog records.
type Assembler struct {
	Registry *sliders.Registry
	Resolver Resolver
	Filters  Filters
	Policy   MissingPreviewPolicy
	// Workers sizes the decode pool; zero or negative means GOMAXPROCS.
	Workers int
}

type decodeOutcome struct {
	vector sliders.Vector
	err    error
}

// Assemble decodes every record on the worker pool and joins the outcomes
// in input order. A cancelled context stops dispatching further records;
// already-dispatched records run to completion and the partial result is
// returned alongside ctx.Err().
func (a *Assembler) Assemble(ctx context.Context, records []catalog.Record) (Result, error) {
	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(records) && len(records) > 0 {
		workers = len(records)
	}

	outcomes := make([]decodeOutcome, len(records))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				// A record without a settings blob is normal (never edited
				// in Lightroom); it decodes to an empty vector.
				if strings.TrimSpace(records[i].DevelopText) == "" {
					outcomes[i] = decodeOutcome{vector: sliders.Vector{}}
					continue
				}
				vec, err := develop.DecodeText(records[i].DevelopText, a.Registry)
				outcomes[i] = decodeOutcome{vector: vec, err: err}
			}
		}()
	}

	dispatched := len(records)
dispatch:
	for i := range records {
		select {
		case indexes <- i:
		case <-ctx.Done():
			dispatched = i
			break dispatch
		}
	}
	close(indexes)
	wg.Wait()

	result := a.join(records[:dispatched], outcomes[:dispatched])
	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// join runs the sequential fan-in pass: classify failures, apply filters,
// resolve previews, and emit rows in input order.
func (a *Assembler) join(records []catalog.Record, outcomes []decodeOutcome) Result {
	var result Result
	for i, rec := range records {
		if outcomes[i].err != nil {
			result.ParseFailures = append(result.ParseFailures, RecordError{
				ImageID: rec.ImageID,
				Stem:    rec.Stem,
				Err:     outcomes[i].err,
			})
			continue
		}
		if !a.Filters.match(rec) {
			result.FilteredOut++
			continue
		}

		row := Row{
			ImageID: rec.ImageID,
			Stem:    rec.Stem,
			Sliders: outcomes[i].vector,
			Exif:    rec.Exif,
		}
		if a.Resolver != nil {
			if path, ok := a.Resolver.Resolve(rec.Stem); ok {
				row.PreviewPath = path
			} else {
				result.MissingPreviews++
				if a.Policy == SkipRow {
					continue
				}
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}
