package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	// Verify config file exists and is readable.
	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "csv_file: "+filepath.Join(tmpDir, "outputs", "lexicon_entries.csv"))
	assert.Contains(t, string(content), "driver: sqlite")

	info, err := os.Stat(filepath.Join(tmpDir, "outputs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.FileExists(t, filepath.Join(tmpDir, "source.txt"))
}

func TestWriteSource(t *testing.T) {
	path := WriteSource(t, filepath.Join(t.TempDir(), "source.txt"), "АБ, -ли; междометие", "БАХ, -ли; дом")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "АБ, -ли; междометие\nБАХ, -ли; дом\n", string(content))
}
