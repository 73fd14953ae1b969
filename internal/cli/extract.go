// Package cli implements the command runners of kubadict.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kubadict/internal/document"
	"github.com/at-ishikawa/kubadict/internal/extraction"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

type ExtractOptions struct {
	Source        string
	RetryAttempts uint
	Extraction    extraction.Options
	CSVFile       string
}

// RunExtract reads the source document, extracts the lexicon and writes it as a CSV table.
func RunExtract(ctx context.Context, w io.Writer, opts ExtractOptions) (*extraction.Result, error) {
	paragraphs, err := document.Read(ctx, opts.Source, document.Options{RetryAttempts: opts.RetryAttempts})
	if err != nil {
		return nil, fmt.Errorf("document.Read() > %w", err)
	}

	result, err := extraction.Run(paragraphs, opts.Extraction)
	if err != nil {
		return nil, fmt.Errorf("extraction.Run() > %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.CSVFile), 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(opts.CSVFile), err)
	}
	if err := lexicon.WriteCSVFile(opts.CSVFile, result.Records); err != nil {
		return nil, fmt.Errorf("lexicon.WriteCSVFile() > %w", err)
	}

	fmt.Fprintf(w, "Paragraphs: %d\n", len(paragraphs))
	fmt.Fprintf(w, "Entry blocks: %d (%d rejected)\n", len(result.Blocks), result.Rejected)
	fmt.Fprintf(w, "Records: %d\n", len(result.Records))
	if len(result.Conflicts) > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Fprintf(w, "Sense conflicts (%d):\n", len(result.Conflicts))
		for _, conflict := range result.Conflicts {
			yellow.Fprintf(w, "  - %s (record %d): %s\n", conflict.Lemma, conflict.SequenceID, conflict.Reason)
		}
	}
	fmt.Fprintf(w, "Wrote %s\n", opts.CSVFile)
	return &result, nil
}
