package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/kubadict/internal/datasync"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/pdf"
)

type ExportFormat string

const (
	ExportFormatYAML ExportFormat = "yaml"
	ExportFormatPDF  ExportFormat = "pdf"
)

type ExportOptions struct {
	Format        ExportFormat
	YAMLDirectory string
	// MarkdownFile is rendered first and converted to a PDF next to it
	MarkdownFile string
	// PDFFont is a TrueType font file; empty uses pdf.DefaultFont
	PDFFont string
}

// RunExport writes records in the requested format and returns the path of the written file.
func RunExport(w io.Writer, records []lexicon.Record, opts ExportOptions) (string, error) {
	var (
		path string
		err  error
	)
	switch opts.Format {
	case ExportFormatYAML:
		path, err = datasync.NewYAMLLexiconSink(opts.YAMLDirectory).WriteAll(records)
		if err != nil {
			return "", fmt.Errorf("WriteAll() > %w", err)
		}
	case ExportFormatPDF:
		if err := pdf.WriteMarkdown(opts.MarkdownFile, records); err != nil {
			return "", fmt.Errorf("pdf.WriteMarkdown() > %w", err)
		}
		font, err := pdf.LoadFont(opts.PDFFont)
		if err != nil {
			return "", fmt.Errorf("pdf.LoadFont() > %w", err)
		}
		path, err = pdf.ConvertMarkdownToPDF(opts.MarkdownFile, font)
		if err != nil {
			return "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported export format %q", opts.Format)
	}

	fmt.Fprintf(w, "Exported %d records to %s\n", len(records), path)
	return path, nil
}
