// Package testutil provides shared test helpers for creating config files and source fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleSource is a small dictionary in plain text, one paragraph per line.
var SampleSource = []string{
	"КУБАЧИНСКО-РУССКИЙ СЛОВАРЬ",
	"Предисловие, о словаре",
	"АБ // АБДИКIНЕ, -ли; междометие",
	"Слова, начинающиеся с буквы Б, идут ниже",
	"1. Пояснение к букве",
	"БАХ, -ли, -ла; дом",
	"КЕЦ2, -ли; запор",
	"КЕЦ1, -ли; замок",
	"САБА, -аддил, -алла; завтра",
	"САБА, саяти; утро",
}

// SetupTestConfig writes SampleSource and a config file that reads it and writes every output
// under tmpDir, with a SQLite database. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "outputs"), 0755))
	sourcePath := WriteSource(t, filepath.Join(tmpDir, "source.txt"), SampleSource...)

	configContent := fmt.Sprintf(`source:
  path: %s
outputs:
  csv_file: %s
  yaml_directory: %s
  markdown_file: %s
database:
  driver: sqlite
  path: %s
`,
		sourcePath,
		filepath.Join(tmpDir, "outputs", "lexicon_entries.csv"),
		filepath.Join(tmpDir, "outputs"),
		filepath.Join(tmpDir, "outputs", "lexicon.md"),
		filepath.Join(tmpDir, "kubadict.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteSource writes paragraphs as a plain text source document.
func WriteSource(t *testing.T, path string, paragraphs ...string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(paragraphs, "\n")+"\n"), 0644))
	return path
}
