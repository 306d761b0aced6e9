package dataset

import (
	"context"
	"fmt"
	"testing"
	"time"

	"devset/internal/catalog"
	"devset/internal/sliders"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(stem string) (string, bool) {
	path, ok := m[stem]
	return path, ok
}

func testRegistry(t *testing.T) *sliders.Registry {
	t.Helper()
	reg, err := sliders.NewBuiltin()
	if err != nil {
		t.Fatalf("NewBuiltin failed: %v", err)
	}
	return reg
}

func record(id int64, stem, text string) catalog.Record {
	return catalog.Record{ImageID: id, Stem: stem, FileName: stem + ".CR3", DevelopText: text}
}

func TestAssemblePreservesInputOrder(t *testing.T) {
	t.Parallel()
	records := make([]catalog.Record, 50)
	resolver := mapResolver{}
	for i := range records {
		stem := fmt.Sprintf("IMG_%04d", i)
		records[i] = record(int64(i+1), stem, fmt.Sprintf("s = {exposure = 0.1, contrast = %d}", i%20))
		resolver[stem] = "/previews/" + stem + ".jpg"
	}

	a := &Assembler{Registry: testRegistry(t), Resolver: resolver, Workers: 8}
	result, err := a.Assemble(context.Background(), records)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(result.Rows) != len(records) {
		t.Fatalf("expected %d rows, got %d", len(records), len(result.Rows))
	}
	for i, row := range result.Rows {
		if row.ImageID != int64(i+1) {
			t.Fatalf("row %d out of order: image id %d", i, row.ImageID)
		}
		if got, _ := row.Sliders.Get("Contrast2012"); got != float64(i%20) {
			t.Fatalf("row %d contrast: got %v want %d", i, got, i%20)
		}
	}
}

func TestAssembleCountsFailureClassesSeparately(t *testing.T) {
	t.Parallel()
	records := []catalog.Record{
		record(1, "good", "{exposure = 0.5}"),
		record(2, "broken", "{exposure = "),
		record(3, "orphan", "{exposure = 0.25}"),
	}
	resolver := mapResolver{
		"good": "/previews/good.jpg",
		// "orphan" has no preview on purpose.
	}

	a := &Assembler{Registry: testRegistry(t), Resolver: resolver, Policy: SkipRow}
	result, err := a.Assemble(context.Background(), records)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0].Stem != "good" {
		t.Fatalf("rows: %+v", result.Rows)
	}
	if len(result.ParseFailures) != 1 || result.ParseFailures[0].ImageID != 2 {
		t.Fatalf("parse failures: %+v", result.ParseFailures)
	}
	if result.MissingPreviews != 1 {
		t.Fatalf("missing previews: got %d want 1", result.MissingPreviews)
	}
}

func TestAssembleKeepWithNullPreview(t *testing.T) {
	t.Parallel()
	records := []catalog.Record{record(1, "orphan", "{exposure = 0.5}")}

	a := &Assembler{Registry: testRegistry(t), Resolver: mapResolver{}, Policy: KeepWithNullPreview}
	result, err := a.Assemble(context.Background(), records)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0].PreviewPath != "" {
		t.Fatalf("rows: %+v", result.Rows)
	}
	// The miss is still counted even when the row is kept.
	if result.MissingPreviews != 1 {
		t.Fatalf("missing previews: got %d want 1", result.MissingPreviews)
	}
}

func TestAssembleEmptyDevelopText(t *testing.T) {
	t.Parallel()
	records := []catalog.Record{record(1, "virgin", "")}
	a := &Assembler{Registry: testRegistry(t), Resolver: mapResolver{"virgin": "/p/virgin.jpg"}}
	result, err := a.Assemble(context.Background(), records)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(result.ParseFailures) != 0 {
		t.Fatalf("a missing blob is not a parse failure: %+v", result.ParseFailures)
	}
	if len(result.Rows) != 1 || len(result.Rows[0].Sliders) != 0 {
		t.Fatalf("rows: %+v", result.Rows)
	}
}

func TestAssembleFilters(t *testing.T) {
	t.Parallel()
	records := []catalog.Record{
		{ImageID: 1, Stem: "a", DevelopText: "{exposure=0.1}", Pick: 1, ColorLabel: "green", CaptureTime: "2024-05-01T10:00:00"},
		{ImageID: 2, Stem: "b", DevelopText: "{exposure=0.2}", Pick: 0, ColorLabel: "green", CaptureTime: "2024-05-02T10:00:00"},
		{ImageID: 3, Stem: "c", DevelopText: "{exposure=0.3}", Pick: 1, ColorLabel: "red", CaptureTime: "2024-05-03T10:00:00"},
		{ImageID: 4, Stem: "d", DevelopText: "{exposure=0.4}", Pick: 1, ColorLabel: "green", CaptureTime: "2020-01-01T00:00:00"},
	}
	resolver := mapResolver{"a": "a.jpg", "b": "b.jpg", "c": "c.jpg", "d": "d.jpg"}

	a := &Assembler{
		Registry: testRegistry(t),
		Resolver: resolver,
		Filters: Filters{
			FlaggedOnly:   true,
			ColorLabel:    "green",
			CapturedAfter: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	result, err := a.Assemble(context.Background(), records)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0].Stem != "a" {
		t.Fatalf("rows: %+v", result.Rows)
	}
	if result.FilteredOut != 3 {
		t.Fatalf("filtered: got %d want 3", result.FilteredOut)
	}
}

func TestAssembleCancelledContext(t *testing.T) {
	t.Parallel()
	records := make([]catalog.Record, 100)
	for i := range records {
		records[i] = record(int64(i+1), fmt.Sprintf("s%d", i), "{exposure = 0.1}")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &Assembler{Registry: testRegistry(t), Policy: KeepWithNullPreview}
	result, err := a.Assemble(ctx, records)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(result.Rows) == len(records) {
		t.Fatal("cancelled run should not have processed every record")
	}
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	if p, err := ParsePolicy(""); err != nil || p != SkipRow {
		t.Fatalf("empty: %v %v", p, err)
	}
	if p, err := ParsePolicy("keep"); err != nil || p != KeepWithNullPreview {
		t.Fatalf("keep: %v %v", p, err)
	}
	if _, err := ParsePolicy("bogus"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
