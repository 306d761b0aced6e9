package config

const (
	defaultPreviewsDir = "~/.local/share/devset/previews"
	defaultDatasetDir  = "~/.local/share/devset/datasets"
	defaultLogDir      = "~/.local/share/devset/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultPolicy      = "skip"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PreviewsDir: defaultPreviewsDir,
			DatasetDir:  defaultDatasetDir,
			LogDir:      defaultLogDir,
		},
		Ingest: Ingest{
			Workers:              0,
			MissingPreviewPolicy: defaultPolicy,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
