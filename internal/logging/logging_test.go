// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paysplit/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"warn", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, types.LogConfig{Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("could not parse date", "raw_date", "someday")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "could not parse date")
	assert.Contains(t, out, "raw_date=someday")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, types.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)

	logger.Debug("page text", "page", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "page text", rec["msg"])
	assert.Equal(t, float64(2), rec["page"])
}

func TestNewInvalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, types.LogConfig{Format: "xml"})
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, types.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
