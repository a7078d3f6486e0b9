// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paysplit/internal/document/pdftest"
)

func samplePages() [][]string {
	return [][]string{
		{"ACME PAYROLL 4300", "Jane Doe", "Cheque Date: 04/03/2024"},
		{"ACME PAYROLL 4300", "John Smith", "Cheque Date: March 5, 2023"},
		{},
	}
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statements.pdf")
	require.NoError(t, os.WriteFile(path, pdftest.Build(samplePages()...), 0o644))
	return path
}

func TestOpen(t *testing.T) {
	path := writeSample(t)

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
	assert.Equal(t, 3, doc.NumPages())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading source document")

	junk := filepath.Join(dir, "junk.pdf")
	require.NoError(t, os.WriteFile(junk, []byte("this is not a pdf"), 0o644))
	_, err = Open(junk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing source document")

	_, err = Parse(nil)
	require.Error(t, err)
}

func TestPageText(t *testing.T) {
	doc, err := Parse(pdftest.Build(samplePages()...))
	require.NoError(t, err)

	text, err := doc.PageText(1)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Cheque Date: 04/03/2024")

	text, err = doc.PageText(2)
	require.NoError(t, err)
	assert.Contains(t, text, "John Smith")
	assert.NotContains(t, text, "Jane Doe")

	text, err = doc.PageText(3)
	require.NoError(t, err)
	assert.Empty(t, bytes.TrimSpace([]byte(text)))
}

func TestPageOutOfRange(t *testing.T) {
	doc, err := Parse(pdftest.Build(samplePages()...))
	require.NoError(t, err)

	for _, n := range []int{0, -1, 4} {
		_, err := doc.PageText(n)
		assert.Error(t, err, "page %d", n)
		assert.Error(t, doc.WritePage(n, &bytes.Buffer{}), "page %d", n)
	}
}

func TestWritePage(t *testing.T) {
	doc, err := Parse(pdftest.Build(samplePages()...))
	require.NoError(t, err)

	for n := 1; n <= doc.NumPages(); n++ {
		var buf bytes.Buffer
		require.NoError(t, doc.WritePage(n, &buf))
		require.NotZero(t, buf.Len(), "page %d", n)

		count, err := api.PageCount(bytes.NewReader(buf.Bytes()), nil)
		require.NoError(t, err, "page %d", n)
		assert.Equal(t, 1, count, "page %d", n)
	}
}

func TestWritePageKeepsText(t *testing.T) {
	doc, err := Parse(pdftest.Build(samplePages()...))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WritePage(2, &buf))

	single, err := Parse(buf.Bytes())
	require.NoError(t, err)
	text, err := single.PageText(1)
	require.NoError(t, err)
	assert.Contains(t, text, "John Smith")
}
