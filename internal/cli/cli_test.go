package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kubadict/internal/document"
	"github.com/at-ishikawa/kubadict/internal/extraction"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/segmenter"
	"github.com/at-ishikawa/kubadict/internal/verification"
)

const sourceText = `КУБАЧИНСКО-РУССКИЙ СЛОВАРЬ
Предисловие, о словаре
АБ // АБДИКIНЕ, -ли; междометие
Слова, начинающиеся с буквы Б, идут ниже
БАХ, -ли, -ла; дом
КЕЦ2, -ли; запор
КЕЦ1, -ли; замок
`

func TestRunExtract(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.txt")
	require.NoError(t, os.WriteFile(source, []byte(sourceText), 0o644))
	csvFile := filepath.Join(dir, "outputs", "lexicon.csv")

	var buf bytes.Buffer
	result, err := RunExtract(context.Background(), &buf, ExtractOptions{
		Source:     source,
		Extraction: extraction.DefaultOptions(),
		CSVFile:    csvFile,
	})
	require.NoError(t, err)
	assert.Len(t, result.Records, 4)

	got, err := lexicon.ReadCSVFile(csvFile)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "кец", got[2].Lemma)
	assert.Equal(t, 2, got[2].MeaningID)

	for _, want := range []string{"Paragraphs: 7", "Entry blocks: 4 (0 rejected)", "Records: 4", "Wrote " + csvFile} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRunExtract_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := RunExtract(context.Background(), &bytes.Buffer{}, ExtractOptions{
		Source:     filepath.Join(dir, "missing.docx"),
		Extraction: extraction.DefaultOptions(),
	})
	assert.ErrorContains(t, err, "document.Read()")

	source := filepath.Join(dir, "source.txt")
	require.NoError(t, os.WriteFile(source, []byte("БАХ, -ли; дом\n"), 0o644))
	_, err = RunExtract(context.Background(), &bytes.Buffer{}, ExtractOptions{
		Source:     source,
		Extraction: extraction.DefaultOptions(),
		CSVFile:    filepath.Join(dir, "lexicon.csv"),
	})
	assert.ErrorIs(t, err, segmenter.ErrAnchorNotFound)
}

func TestRunVerify(t *testing.T) {
	tests := []struct {
		name      string
		records   []lexicon.Record
		inspect   []string
		wantValid bool
		want      []string
	}{
		{
			name: "contiguous meaning ids",
			records: []lexicon.Record{
				{MeaningID: 1, Lemma: "кец", Morphology: "-ли"},
				{MeaningID: 2, Lemma: "кец", Morphology: "-ли"},
				{MeaningID: 1, Lemma: "аб"},
			},
			inspect:   []string{"кец"},
			wantValid: true,
			want: []string{
				"Found 1 lemmas with multiple meanings.",
				"Total entries: 3",
				"Unique lemmas: 2",
				"Lemmas with contiguous meaning IDs: 1",
				"Lemmas with broken meaning IDs: 0",
				`Entries of "кец" (2):`,
				"id: 2, meaning_id: 2, lemma: кец, morphology: -ли",
			},
		},
		{
			name: "broken meaning ids",
			records: []lexicon.Record{
				{MeaningID: 1, Lemma: "саба"},
				{MeaningID: 1, Lemma: "саба"},
			},
			want: []string{
				"Lemmas with broken meaning IDs: 1",
				"саба: 1, 1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexicon.csv")
			require.NoError(t, lexicon.WriteCSVFile(path, tt.records))

			var buf bytes.Buffer
			report, err := RunVerify(&buf, path, verification.Options{Inspect: tt.inspect})
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, report.Valid())
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := RunVerify(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.csv"), verification.Options{})
		assert.ErrorContains(t, err, "lexicon.ReadCSVFile()")
	})
}

func TestRunInspect(t *testing.T) {
	var paragraphs []document.Paragraph
	for i, line := range strings.Split(strings.TrimSpace(sourceText), "\n") {
		paragraphs = append(paragraphs, document.Paragraph{Text: line, Index: i})
	}

	var buf bytes.Buffer
	require.NoError(t, RunInspect(&buf, paragraphs, InspectOptions{Rules: segmenter.DefaultRules(), Context: 1, Limit: 2}))
	got := buf.String()

	for _, want := range []string{
		"Total paragraphs: 7",
		"Found the first entry at paragraph 3:",
		"Line 2: Предисловие, о словаре",
		"Line 5: БАХ, -ли, -ла; дом",
		"Entry 1: Слова, начинающиеся с буквы Б, идут ниже",
		"Entry 2: БАХ, -ли, -ла; дом",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "Line 1:")
	assert.NotContains(t, got, "Line 6:")

	err := RunInspect(&bytes.Buffer{}, paragraphs[:2], InspectOptions{Rules: segmenter.DefaultRules()})
	assert.ErrorIs(t, err, segmenter.ErrAnchorNotFound)
}

func TestRunExport(t *testing.T) {
	records := []lexicon.Record{{ID: 1, MeaningID: 1, Lemma: "ab", IPA: "ab", Definition: "interjection"}}

	tests := []struct {
		name     string
		format   ExportFormat
		pdfFont  string
		wantFile string
		wantErr  bool
	}{
		{name: "yaml", format: ExportFormatYAML, wantFile: "lexicon_entries.yml"},
		{name: "pdf", format: ExportFormatPDF, wantFile: "lexicon.pdf"},
		{name: "missing pdf font", format: ExportFormatPDF, pdfFont: "missing.ttf", wantErr: true},
		{name: "unknown format", format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var buf bytes.Buffer
			path, err := RunExport(&buf, records, ExportOptions{
				Format:        tt.format,
				YAMLDirectory: dir,
				MarkdownFile:  filepath.Join(dir, "lexicon.md"),
				PDFFont:       pdfFont(dir, tt.pdfFont),
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, filepath.Base(path))
			assert.FileExists(t, path)
			assert.Contains(t, buf.String(), "Exported 1 records to ")
		})
	}
}

func pdfFont(dir, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
