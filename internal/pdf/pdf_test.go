package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

func TestRenderMarkdown(t *testing.T) {
	records := []lexicon.Record{
		{ID: 1, MeaningID: 1, Lemma: "аб // абдикІне", Morphology: "-ли", IPA: "ab // abdikʼne", Definition: "междометие"},
		{ID: 2, MeaningID: 2, Lemma: "кец", Morphology: "", IPA: "kets", Definition: "запор"},
		{ID: 3, MeaningID: 1, Lemma: "кец", Morphology: "-ли", IPA: "kets", Definition: "замок *устар.*"},
	}

	want := `# Kubachi–Russian lexicon

## аб // абдикІне

[ab // abdikʼne]

1. *-ли* междометие

## кец

[kets]

2. запор
1. *-ли* замок \*устар.\*
`
	assert.Equal(t, want, RenderMarkdown(records))
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs", "lexicon.md")
	require.NoError(t, WriteMarkdown(path, []lexicon.Record{{MeaningID: 1, Lemma: "аб", Definition: "междометие"}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Kubachi–Russian lexicon\n\n## аб\n\n1. междометие\n", string(got))
}

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name          string
		markdownPath  string
		setupFile     func(t *testing.T) string
		wantErr       bool
		wantErrMsg    string
		font          *Font
		validateAfter func(t *testing.T, pdfPath string)
	}{
		{
			name:         "invalid extension",
			markdownPath: "test.txt",
			wantErr:      true,
			wantErrMsg:   "input file must have .md extension",
		},
		{
			name:         "file not found",
			markdownPath: "nonexistent.md",
			wantErr:      true,
			wantErrMsg:   "os.ReadFile",
		},
		{
			name:       "font that is not a TrueType font",
			setupFile:  writeLexicon,
			font:       &Font{Family: "broken", TTF: []byte("not a font")},
			wantErr:    true,
			wantErrMsg: "AddUTF8FontFromBytes(broken)",
		},
		{
			name:      "cyrillic lexicon with the default font",
			setupFile: writeLexicon,
			validateAfter: func(t *testing.T, pdfPath string) {
				content, err := os.ReadFile(pdfPath)
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
				// the font is embedded instead of referencing a core font
				assert.Contains(t, string(content), "FontFile2")
			},
		},
		{
			name: "successful conversion",
			setupFile: func(t *testing.T) string {
				mdPath := filepath.Join(t.TempDir(), "lexicon.md")
				require.NoError(t, WriteMarkdown(mdPath, []lexicon.Record{
					{MeaningID: 1, Lemma: "ab", IPA: "ab", Definition: "interjection"},
				}))
				return mdPath
			},
			validateAfter: func(t *testing.T, pdfPath string) {
				_, err := os.Stat(pdfPath)
				assert.NoError(t, err, "PDF file should be created")
				assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mdPath := tt.markdownPath
			if tt.setupFile != nil {
				mdPath = tt.setupFile(t)
			}

			font := DefaultFont()
			if tt.font != nil {
				font = *tt.font
			}
			pdfPath, err := ConvertMarkdownToPDF(mdPath, font)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, pdfPath)
			if tt.validateAfter != nil {
				tt.validateAfter(t, pdfPath)
			}
		})
	}
}

func writeLexicon(t *testing.T) string {
	t.Helper()
	mdPath := filepath.Join(t.TempDir(), "lexicon.md")
	require.NoError(t, WriteMarkdown(mdPath, []lexicon.Record{
		{MeaningID: 1, Lemma: "аб // абдикІне", Morphology: "-ли", IPA: "ab // abdikʼne", Definition: "междометие"},
		{MeaningID: 1, Lemma: "кец", Morphology: "-ли", IPA: "kets", Definition: "замок"},
	}))
	return mdPath
}

func TestLoadFont(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		got, err := LoadFont("")
		require.NoError(t, err)
		assert.Equal(t, DefaultFont(), got)
	})

	t.Run("font file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "DejaVuSans.ttf")
		require.NoError(t, os.WriteFile(path, DefaultFont().TTF, 0o644))

		got, err := LoadFont(path)
		require.NoError(t, err)
		assert.Equal(t, "DejaVuSans", got.Family)
		assert.Equal(t, DefaultFont().TTF, got.TTF)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
		assert.ErrorContains(t, err, "os.ReadFile")
	})
}
