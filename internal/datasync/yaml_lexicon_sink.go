package datasync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

// LexiconFileName is the file written by YAMLLexiconSink.
const LexiconFileName = "lexicon_entries.yml"

// YAMLLexiconSink writes lexicon records to a YAML file.
type YAMLLexiconSink struct {
	outputDir string
}

// NewYAMLLexiconSink creates a new YAMLLexiconSink.
func NewYAMLLexiconSink(outputDir string) *YAMLLexiconSink {
	return &YAMLLexiconSink{outputDir: outputDir}
}

// WriteAll writes records to lexicon_entries.yml and returns its path.
func (s *YAMLLexiconSink) WriteAll(records []lexicon.Record) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, LexiconFileName)
	if records == nil {
		records = []lexicon.Record{}
	}
	if err := writeYAML(path, records); err != nil {
		return "", fmt.Errorf("write %s: %w", LexiconFileName, err)
	}
	return path, nil
}

func writeYAML(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return encodeYAML(f, data)
}

// encodeYAML writes data to w and closes it, returning the first error.
func encodeYAML(w io.WriteCloser, data any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		_ = w.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
