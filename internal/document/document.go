// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads a multi-page PDF and hands out each page as plain
// text and as a standalone single-page PDF.
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is an opened source PDF. Pages are numbered from 1.
type Document struct {
	path string
	ctx  *model.Context
	text *pdf.Reader
}

// Open reads and validates the PDF at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source document %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing source document %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Parse builds a Document from PDF bytes already in memory.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF content")
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("validating pdf: %w", err)
	}

	text, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf for text extraction: %w", err)
	}

	return &Document{ctx: ctx, text: text}, nil
}

// Path returns the file the document was opened from, or "" for Parse.
func (d *Document) Path() string { return d.path }

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.ctx.PageCount
}

// PageText returns the plain text of page n. A page without content
// returns "" and no error.
func (d *Document) PageText(n int) (text string, err error) {
	if err := d.checkPage(n); err != nil {
		return "", err
	}

	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extracting text from page %d: %v", n, r)
		}
	}()

	page := d.text.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting text from page %d: %w", n, err)
	}
	return text, nil
}

// WritePage writes page n to w as a standalone single-page PDF.
func (d *Document) WritePage(n int, w io.Writer) error {
	if err := d.checkPage(n); err != nil {
		return err
	}
	r, err := api.ExtractPage(d.ctx, n)
	if err != nil {
		return fmt.Errorf("extracting page %d: %w", n, err)
	}
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("writing page %d: %w", n, err)
	}
	return nil
}

func (d *Document) checkPage(n int) error {
	if n < 1 || n > d.ctx.PageCount {
		return fmt.Errorf("page %d out of range (document has %d pages)", n, d.ctx.PageCount)
	}
	return nil
}
