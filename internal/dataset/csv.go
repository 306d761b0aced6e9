package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"devset/internal/sliders"
)

// exifColumns maps the configurable exif column names to their extractors.
var exifColumns = map[string]func(Row) string{
	"aperture":      func(r Row) string { return formatFloat(r.Exif.Aperture) },
	"shutter_speed": func(r Row) string { return formatFloat(r.Exif.ShutterSpeed) },
	"iso":           func(r Row) string { return formatFloat(r.Exif.ISO) },
	"focal_length":  func(r Row) string { return formatFloat(r.Exif.FocalLength) },
	"camera":        func(r Row) string { return r.Exif.CameraModel },
	"lens":          func(r Row) string { return r.Exif.Lens },
	"date": func(r Row) string {
		if r.Exif.DateYear == 0 {
			return ""
		}
		return fmt.Sprintf("%04d-%02d-%02d", r.Exif.DateYear, r.Exif.DateMonth, r.Exif.DateDay)
	},
}

// ExifColumnNames returns the supported exif column identifiers.
func ExifColumnNames() []string {
	return []string{"aperture", "shutter_speed", "iso", "focal_length", "camera", "lens", "date"}
}

// CSVOptions selects the dataset columns. SliderNames are friendly names in
// the order the caller wants them written; empty means every registered
// slider in registry order. ExifNames picks extra metadata columns.
type CSVOptions struct {
	SliderNames []string
	ExifNames   []string
}

// WriteCSV emits one row per assembled dataset row. Slider values are
// written raw (un-normalized) so the file stays human-auditable; sliders
// absent from a record leave their cell empty.
func WriteCSV(w io.Writer, reg *sliders.Registry, rows []Row, opts CSVOptions) error {
	defs, err := selectSliders(reg, opts.SliderNames)
	if err != nil {
		return err
	}
	for _, name := range opts.ExifNames {
		if _, ok := exifColumns[name]; !ok {
			return fmt.Errorf("unknown exif column %q (supported: %s)", name, strings.Join(ExifColumnNames(), ", "))
		}
	}

	header := make([]string, 0, 1+len(defs)+len(opts.ExifNames))
	header = append(header, "stem")
	for _, def := range defs {
		header = append(header, def.FriendlyName)
	}
	header = append(header, opts.ExifNames...)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for _, row := range rows {
		record = record[:0]
		record = append(record, row.Stem)
		for _, def := range defs {
			if v, ok := row.Sliders.Get(def.ID); ok {
				record = append(record, formatFloat(v))
			} else {
				record = append(record, "")
			}
		}
		for _, name := range opts.ExifNames {
			record = append(record, exifColumns[name](row))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for %s: %w", row.Stem, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// selectSliders resolves the requested friendly names against the registry,
// preserving request order. An empty request selects everything.
func selectSliders(reg *sliders.Registry, names []string) ([]sliders.Definition, error) {
	if len(names) == 0 {
		return reg.All(), nil
	}
	defs := make([]sliders.Definition, 0, len(names))
	for _, name := range names {
		def, ok := reg.ByFriendlyName(name)
		if !ok {
			return nil, fmt.Errorf("unknown slider %q", name)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
