package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeIngest()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.CatalogPath) != "" {
		if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
			return fmt.Errorf("paths.catalog_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.PreviewsDir) == "" {
		c.Paths.PreviewsDir = defaultPreviewsDir
	}
	if c.Paths.PreviewsDir, err = expandPath(c.Paths.PreviewsDir); err != nil {
		return fmt.Errorf("paths.previews_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatasetDir) == "" {
		c.Paths.DatasetDir = defaultDatasetDir
	}
	if c.Paths.DatasetDir, err = expandPath(c.Paths.DatasetDir); err != nil {
		return fmt.Errorf("paths.dataset_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeIngest() {
	c.Ingest.ColorLabel = strings.ToLower(strings.TrimSpace(c.Ingest.ColorLabel))
	c.Ingest.MissingPreviewPolicy = strings.ToLower(strings.TrimSpace(c.Ingest.MissingPreviewPolicy))
	if c.Ingest.MissingPreviewPolicy == "" {
		c.Ingest.MissingPreviewPolicy = defaultPolicy
	}
	for i, name := range c.Ingest.Sliders {
		c.Ingest.Sliders[i] = strings.TrimSpace(name)
	}
	for i, name := range c.Ingest.ExifColumns {
		c.Ingest.ExifColumns[i] = strings.ToLower(strings.TrimSpace(name))
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
