// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split turns a multi-page pay statement PDF into one PDF per page,
// named after the payee and cheque date found on the page, and records each
// page in the store.
package split

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pdiddy/paysplit/internal/document"
	"github.com/pdiddy/paysplit/internal/extract"
	"github.com/pdiddy/paysplit/internal/session"
	"github.com/pdiddy/paysplit/pkg/types"
)

// Source is a paged document. Pages are numbered from 1.
type Source interface {
	NumPages() int
	PageText(n int) (string, error)
	WritePage(n int, w io.Writer) error
}

// Recorder stores one extracted pay statement.
type Recorder interface {
	UpsertRecord(ctx context.Context, name, date, filename string) (types.UpsertOutcome, error)
}

// Summary holds the outcome of one split run.
type Summary struct {
	// RunID correlates the log lines of one run.
	RunID string

	// Source is the input document path, when known.
	Source string

	// StorePath is the SQLite store the run wrote to.
	StorePath string

	Pages      int
	Inserted   int
	Duplicates int

	// Files lists the distinct artifact names written, in first-write order.
	// Pages that extract to the same name and date share one file.
	Files []string
}

// File splits the PDF at inputPath into sess's output folder. A source that
// cannot be read, an output folder that cannot be created, or a store that
// cannot be opened aborts before any page is processed.
func File(ctx context.Context, sess session.Session, inputPath string, w io.Writer, logger *slog.Logger) (Summary, error) {
	doc, err := document.Open(inputPath)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(sess.OutputDir(), 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory %s: %w", sess.OutputDir(), err)
	}
	if err := sess.EnsureSchema(ctx); err != nil {
		return Summary{}, err
	}

	summary, err := Run(ctx, doc, sess, sess.OutputDir(), w, logger)
	summary.Source = inputPath
	summary.StorePath = sess.StorePath()
	return summary, err
}

// Run processes every page of src in order. Each page is written to
// outputDir, overwriting any file of the same name, and then recorded.
// Duplicate records are counted and logged, not treated as failures. Text
// extraction, file, and storage errors stop the run; pages already handled
// stay on disk and in the store.
func Run(ctx context.Context, src Source, rec Recorder, outputDir string, w io.Writer, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	summary := Summary{RunID: uuid.NewString()}
	logger = logger.With("run_id", summary.RunID)

	seen := make(map[string]bool)
	total := src.NumPages()
	logger.Info("split started", "pages", total, "output_dir", outputDir)

	for n := 1; n <= total; n++ {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		text, err := src.PageText(n)
		if err != nil {
			return summary, fmt.Errorf("page %d: %w", n, err)
		}
		logger.Debug("page text", "page", n, "text", text)

		res := extract.Parse(text)
		logParse(logger, n, res)

		filename := extract.Filename(res.Name, res.Date)
		if err := writeArtifact(src, n, filepath.Join(outputDir, filename)); err != nil {
			return summary, fmt.Errorf("page %d: %w", n, err)
		}
		summary.Pages++
		if !seen[filename] {
			seen[filename] = true
			summary.Files = append(summary.Files, filename)
		}
		fmt.Fprintf(w, "created: %s\n", filename)

		out, err := rec.UpsertRecord(ctx, res.Name, res.Date, filename)
		if err != nil {
			logger.Error("recording page failed", "page", n, "filename", filename, "reason", out.Reason)
			return summary, fmt.Errorf("page %d: recording %s: %w", n, filename, err)
		}
		switch out.Status {
		case types.UpsertInserted:
			summary.Inserted++
			fmt.Fprintf(w, "added:   %s\n", filename)
			logger.Info("record added", "page", n, "filename", filename, "record_id", out.RecordID)
		case types.UpsertDuplicate:
			summary.Duplicates++
			fmt.Fprintf(w, "skipped: %s (duplicate)\n", filename)
			logger.Info("record skipped as duplicate", "page", n, "filename", filename)
		}
	}

	fmt.Fprintf(w, "\nSplit summary: %d pages, %d added, %d duplicates, %d files\n",
		summary.Pages, summary.Inserted, summary.Duplicates, len(summary.Files))
	logger.Info("split finished", "pages", summary.Pages, "inserted", summary.Inserted,
		"duplicates", summary.Duplicates, "files", len(summary.Files))
	return summary, nil
}

func logParse(logger *slog.Logger, page int, res extract.Result) {
	if !res.MarkerFound {
		logger.Debug("header marker not found", "page", page, "marker", extract.Marker)
	}
	switch {
	case !res.DateLabel:
		logger.Warn("no date found in the text", "page", page)
	case res.Date == types.UnknownDate:
		logger.Warn("could not parse date", "page", page, "raw_date", res.RawDate)
	}
	logger.Info("parsed page", "page", page, "name", res.Name, "date", res.Date)
}

// writeArtifact writes page n to a temp file next to dest and renames it
// over dest, so an existing file is replaced whole.
func writeArtifact(src Source, n int, dest string) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".page-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	writeErr := src.WritePage(n, tmp)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on %s: %w", dest, err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}
