// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the contents of the pay statement store to YAML,
// JSON, or an XLSX workbook.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paysplit/pkg/types"
)

// Reader is the part of a session the exporter needs.
type Reader interface {
	ListIndividuals(ctx context.Context) ([]types.Individual, error)
	ListPayRecords(ctx context.Context, individualID int64) ([]types.PayRecord, error)
}

// Entry is one individual with their pay statements.
type Entry struct {
	types.Individual `yaml:",inline"`
	Records          []Record `json:"records" yaml:"records"`
}

// Record is a pay statement as exported; the individual is implied by the
// enclosing Entry.
type Record struct {
	ID          int64  `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Filename    string `json:"filename" yaml:"filename"`
	ExtractedAt string `json:"extraction_date" yaml:"extraction_date"`
}

// Build reads every individual and their pay statements, in insertion order.
func Build(ctx context.Context, r Reader) ([]Entry, error) {
	people, err := r.ListIndividuals(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]Entry, len(people))
	for i, p := range people {
		recs, err := r.ListPayRecords(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("querying pay statements of %q for export: %w", p.Name, err)
		}
		entries[i] = Entry{Individual: p, Records: make([]Record, len(recs))}
		for j, rec := range recs {
			entries[i].Records[j] = Record{
				ID:          rec.ID,
				Date:        rec.Date,
				Filename:    rec.Filename,
				ExtractedAt: rec.ExtractedAt,
			}
		}
	}
	return entries, nil
}

// DefaultPath returns outputDir/export.<format>.
func DefaultPath(outputDir string, format types.ExportFormat) string {
	return filepath.Join(outputDir, "export."+string(format))
}

// Write exports the store to path in the given format and returns the
// number of individuals written.
func Write(ctx context.Context, r Reader, format types.ExportFormat, path string) (int, error) {
	entries, err := Build(ctx, r)
	if err != nil {
		return 0, err
	}

	var data []byte
	switch format {
	case types.ExportYAML:
		data, err = yaml.Marshal(entries)
		if err != nil {
			return 0, fmt.Errorf("marshaling YAML: %w", err)
		}
	case types.ExportJSON:
		data, err = json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("marshaling JSON: %w", err)
		}
	case types.ExportXLSX:
		data, err = workbook(entries)
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unknown export format %q (expected yaml, json, or xlsx)", format)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing export %s: %w", path, err)
	}
	return len(entries), nil
}
