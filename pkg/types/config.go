// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultOutputDir is the folder created in the working directory when no
// output folder is configured.
const DefaultOutputDir = "Split"

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format selects the slog handler: text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// ExportFormat selects the export file format.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportConfig holds settings for the export command.
type ExportConfig struct {
	// Format is the default export format (default yaml).
	Format ExportFormat `json:"format" yaml:"format"`
}

// Config groups the settings read from paysplit.yaml, PAYSPLIT_* variables,
// and command-line flags.
type Config struct {
	// OutputDir holds the per-page PDFs and the pdf_data.db store.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	Log    LogConfig    `json:"log" yaml:"log"`
	Export ExportConfig `json:"export" yaml:"export"`
}
