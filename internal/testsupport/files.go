package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path with placeholder content, making parent directories
// as needed.
func WriteFile(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("fixture"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WritePreviewTree creates a preview root populated with the given relative
// file paths and returns the root directory.
func WritePreviewTree(t testing.TB, relPaths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, rel := range relPaths {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return root
}
