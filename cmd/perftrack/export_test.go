package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportReportWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	var out bytes.Buffer

	err := exportReport(&out, dir, func(w io.Writer) (string, error) {
		_, err := io.WriteString(w, "%PDF-1.3")
		return "Team_Performance_Report_2024-03-15.pdf", err
	})
	require.NoError(t, err)

	path := filepath.Join(dir, "Team_Performance_Report_2024-03-15.pdf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))
	assert.Equal(t, path+"\n", out.String())
}

func TestExportReportRenderFailure(t *testing.T) {
	dir := t.TempDir()

	err := exportReport(io.Discard, dir, func(w io.Writer) (string, error) {
		return "", errors.New("member not found")
	})
	assert.EqualError(t, err, "member not found")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
