package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"devset/internal/testsupport"
)

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()

	catalogPath := filepath.Join(base, "catalog.lrcat")
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
catalog_path = %q
previews_dir = %q
dataset_dir = %q
log_dir = %q

[ingest]
missing_preview_policy = "keep"

[logging]
format = "json"
level = "error"
`,
		catalogPath,
		filepath.Join(base, "previews"),
		filepath.Join(base, "dataset"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return configPath
}

func TestIngestCommandJSON(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	testsupport.WriteCatalog(t, filepath.Join(base, "catalog.lrcat"), []testsupport.CatalogImage{
		{ID: 1, FileName: "IMG_0001.CR3", BaseName: "IMG_0001", DevelopText: `s = {Exposure2012 = 0.5}`},
		{ID: 2, FileName: "IMG_0002.CR3", BaseName: "IMG_0002", DevelopText: `{broken = `},
	})

	out, _, err := runCLI(t, []string{"ingest", "--json"}, configPath, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	var report struct {
		RunID         string `json:"run_id"`
		RowsWritten   int    `json:"rows_written"`
		ParseFailures int    `json:"parse_failures"`
		Output        string `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse report: %v\noutput: %s", err, out)
	}
	if report.RunID == "" {
		t.Error("expected a run id")
	}
	if report.RowsWritten != 1 {
		t.Errorf("rows written = %d, want 1", report.RowsWritten)
	}
	if report.ParseFailures != 1 {
		t.Errorf("parse failures = %d, want 1", report.ParseFailures)
	}
	if _, err := os.Stat(report.Output); err != nil {
		t.Errorf("dataset file missing: %v", err)
	}
}

func TestIngestCommandFlagOverrides(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	testsupport.WriteCatalog(t, filepath.Join(base, "catalog.lrcat"), []testsupport.CatalogImage{
		{ID: 1, FileName: "A.CR3", BaseName: "A", DevelopText: `{Exposure2012 = 1}`, Pick: 1},
		{ID: 2, FileName: "B.CR3", BaseName: "B", DevelopText: `{Exposure2012 = 1}`},
	})

	out, _, err := runCLI(t, []string{"ingest", "--json", "--flagged-only"}, configPath, "")
	if err != nil {
		t.Fatalf("ingest --flagged-only: %v", err)
	}

	var report struct {
		RowsWritten int `json:"rows_written"`
		FilteredOut int `json:"filtered_out"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse report: %v", err)
	}
	if report.RowsWritten != 1 || report.FilteredOut != 1 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestIngestCommandTableOutput(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	testsupport.WriteCatalog(t, filepath.Join(base, "catalog.lrcat"), []testsupport.CatalogImage{
		{ID: 1, FileName: "IMG_0001.CR3", BaseName: "IMG_0001", DevelopText: `{Exposure2012 = 0.5}`},
	})
	testsupport.WriteFile(t, filepath.Join(base, "previews", "img_0001.jpg"))

	out, _, err := runCLI(t, []string{"ingest"}, configPath, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "Rows written")
	requireContains(t, out, "[OK] every image ingested cleanly")
}

func TestIngestCommandReportsParseFailures(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	testsupport.WriteCatalog(t, filepath.Join(base, "catalog.lrcat"), []testsupport.CatalogImage{
		{ID: 1, FileName: "IMG_0001.CR3", BaseName: "IMG_0001", DevelopText: `{broken = `},
	})

	out, _, err := runCLI(t, []string{"ingest"}, configPath, "")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "[WARN]")
	requireContains(t, out, "IMG_0001")
}

func TestIngestCommandRejectsBadPolicy(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)
	testsupport.WriteCatalog(t, filepath.Join(base, "catalog.lrcat"), nil)

	if _, _, err := runCLI(t, []string{"ingest", "--missing-preview", "bogus"}, configPath, ""); err == nil {
		t.Fatal("expected policy validation error")
	}
}
