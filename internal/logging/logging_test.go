package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  log.Level
	}{
		"debug":       {input: "debug", want: log.DebugLevel},
		"info":        {input: "info", want: log.InfoLevel},
		"warn":        {input: "warn", want: log.WarnLevel},
		"error":       {input: "error", want: log.ErrorLevel},
		"upper case":  {input: "DEBUG", want: log.DebugLevel},
		"unknown":     {input: "verbose", want: log.InfoLevel},
		"empty input": {input: "", want: log.InfoLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "info", Output: &buf})

	logger.Debug("hidden detail")
	logger.Info("Created file", "file", "out/1-0-0.md")
	logger.Warn("Skipping entry, could not parse heading", "heading", "## Unreleased")

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "Created file")
	assert.Contains(t, out, "file=out/1-0-0.md")
	assert.Contains(t, out, "Skipping entry")
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Output: &buf, JSON: true})
	logger.Info("Created file", "file", "out/1-0-0.md")

	line := strings.TrimSpace(buf.String())
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "Created file", record["msg"])
	assert.Equal(t, "out/1-0-0.md", record["file"])
	assert.Equal(t, "info", record["level"])
}
