// Package pdf renders the lexicon as a printable document.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

const title = "Kubachi–Russian lexicon"

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`")

// RenderMarkdown renders records grouped by lemma, senses in meaning id order of appearance.
func RenderMarkdown(records []lexicon.Record) string {
	groups, keys := lexicon.GroupByLemma(records)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", title)
	for _, key := range keys {
		group := groups[key]
		fmt.Fprintf(&sb, "\n## %s\n\n", markdownEscaper.Replace(group[0].Lemma))
		if group[0].IPA != "" {
			fmt.Fprintf(&sb, "[%s]\n\n", markdownEscaper.Replace(group[0].IPA))
		}
		for _, record := range group {
			fmt.Fprintf(&sb, "%d. ", record.MeaningID)
			if record.Morphology != "" {
				fmt.Fprintf(&sb, "*%s* ", markdownEscaper.Replace(record.Morphology))
			}
			sb.WriteString(markdownEscaper.Replace(record.Definition))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// WriteMarkdown writes the rendered lexicon to markdownPath.
func WriteMarkdown(markdownPath string, records []lexicon.Record) error {
	if dir := filepath.Dir(markdownPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(markdownPath, []byte(RenderMarkdown(records)), 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	return nil
}

// Font is a TrueType font used for every text style of the document. The PDF core fonts
// only cover Latin-1, so the lexicon cannot be rendered without one.
type Font struct {
	Family string
	TTF    []byte
}

// DefaultFont is Go Regular. It covers Latin, Greek and Cyrillic but few IPA letters.
func DefaultFont() Font {
	return Font{Family: "goregular", TTF: goregular.TTF}
}

// LoadFont reads a TTF file, or returns DefaultFont when path is empty.
func LoadFont(path string) (Font, error) {
	if path == "" {
		return DefaultFont(), nil
	}
	ttf, err := os.ReadFile(path)
	if err != nil {
		return Font{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return Font{
		Family: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		TTF:    ttf,
	}, nil
}

// useFont registers font on the renderer's document and points every styler at it.
func useFont(renderer *mdtopdf.PdfRenderer, font Font) error {
	for _, style := range []string{"", "B", "I", "BI"} {
		renderer.Pdf.AddUTF8FontFromBytes(font.Family, style, font.TTF)
	}
	if err := renderer.Pdf.Error(); err != nil {
		return fmt.Errorf("AddUTF8FontFromBytes(%s) > %w", font.Family, err)
	}

	for _, styler := range []*mdtopdf.Styler{
		&renderer.Normal, &renderer.Link, &renderer.Backtick, &renderer.Blockquote,
		&renderer.H1, &renderer.H2, &renderer.H3, &renderer.H4, &renderer.H5, &renderer.H6,
		&renderer.THeader, &renderer.TBody,
	} {
		styler.Font = font.Family
	}
	return nil
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package, rendering all text
// with font. The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string, font Font, opts ...mdtopdf.RenderOption) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", opts, mdtopdf.LIGHT)
	if err := useFont(renderer, font); err != nil {
		return "", err
	}
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
