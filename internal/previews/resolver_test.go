package previews

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResolverCaseInsensitive(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "IMG_0001.jpg")

	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	for _, stem := range []string{"IMG_0001", "img_0001", "Img_0001"} {
		path, ok := r.Resolve(stem)
		if !ok {
			t.Fatalf("stem %q did not resolve", stem)
		}
		if path != filepath.Join(root, "IMG_0001.jpg") {
			t.Fatalf("stem %q resolved to %q", stem, path)
		}
	}
}

func TestResolverRecursive(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "2024/05/shoot/DSC100.webp")

	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	if _, ok := r.Resolve("dsc100"); !ok {
		t.Fatal("nested preview did not resolve")
	}
}

func TestResolverDeterministicTieBreak(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	// Same stem in different cases and extensions; the shortest relative
	// path must win, lexicographic order breaking length ties.
	writeFiles(t, root, "sub/IMG_0001.CR3", "img_0001.dng", "IMG_0001.jpg")

	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	path, ok := r.Resolve("IMG_0001")
	if !ok {
		t.Fatal("stem did not resolve")
	}
	// "IMG_0001.jpg" and "img_0001.dng" are both 12 bytes; uppercase sorts
	// first. The longer "sub/..." path never wins.
	if path != filepath.Join(root, "IMG_0001.jpg") {
		t.Fatalf("tie-break picked %q", path)
	}

	// Repeated lookups return the same answer.
	again, _ := r.Resolve("img_0001")
	if again != path {
		t.Fatalf("lookup not deterministic: %q vs %q", again, path)
	}
}

func TestResolverMissingStem(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "a.jpg")

	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	if _, ok := r.Resolve("missing"); ok {
		t.Fatal("missing stem must not resolve")
	}
}

func TestEnumerateRaw(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "a.CR3", "b.jpg", "deep/c.dng", "d.txt")

	all, err := EnumerateRaw(root, true)
	if err != nil {
		t.Fatalf("EnumerateRaw failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 RAW files, got %d: %v", len(all), all)
	}

	top, err := EnumerateRaw(root, false)
	if err != nil {
		t.Fatalf("EnumerateRaw failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("non-recursive scan expected 1 RAW file, got %d: %v", len(top), top)
	}
}

func TestScanCoverage(t *testing.T) {
	t.Parallel()
	rawRoot := t.TempDir()
	previewRoot := t.TempDir()
	writeFiles(t, rawRoot, "IMG_1.CR3", "IMG_2.NEF", "IMG_3.dng")
	writeFiles(t, previewRoot, "img_1.jpg", "IMG_3.webp")

	r, err := NewResolver(previewRoot)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	cov, err := ScanCoverage(rawRoot, r, true)
	if err != nil {
		t.Fatalf("ScanCoverage failed: %v", err)
	}
	if cov.RawFiles != 3 || cov.UniqueStems != 3 || cov.Matched != 2 {
		t.Fatalf("coverage mismatch: %+v", cov)
	}
	if len(cov.MissingStems) != 1 || cov.MissingStems[0] != "IMG_2" {
		t.Fatalf("missing stems: %v", cov.MissingStems)
	}
}

func TestScanCoverageSharedStems(t *testing.T) {
	t.Parallel()
	rawRoot := t.TempDir()
	previewRoot := t.TempDir()
	// IMG_1 exists as both a CR3 and a DNG; the stem is counted once.
	writeFiles(t, rawRoot, "IMG_1.CR3", "IMG_1.dng", "IMG_2.NEF")
	writeFiles(t, previewRoot, "img_1.jpg")

	r, err := NewResolver(previewRoot)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	cov, err := ScanCoverage(rawRoot, r, true)
	if err != nil {
		t.Fatalf("ScanCoverage failed: %v", err)
	}
	if cov.RawFiles != 3 || cov.UniqueStems != 2 {
		t.Fatalf("coverage mismatch: %+v", cov)
	}
	if cov.Matched+len(cov.MissingStems) != cov.UniqueStems {
		t.Fatalf("stem counts do not reconcile: %+v", cov)
	}
	if cov.Matched != 1 || len(cov.MissingStems) != 1 || cov.MissingStems[0] != "IMG_2" {
		t.Fatalf("unexpected coverage: %+v", cov)
	}
}
