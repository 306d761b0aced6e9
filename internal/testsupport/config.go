package testsupport

import (
	"path/filepath"
	"testing"

	"devset/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogPath = filepath.Join(base, "catalog.lrcat")
	cfg.Paths.PreviewsDir = filepath.Join(base, "previews")
	cfg.Paths.DatasetDir = filepath.Join(base, "dataset")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
