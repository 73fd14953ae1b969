package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kubadict/internal/document"
	"github.com/at-ishikawa/kubadict/internal/entry"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/segmenter"
	"github.com/at-ishikawa/kubadict/internal/sense"
)

func paragraphs(texts ...string) []document.Paragraph {
	result := make([]document.Paragraph, len(texts))
	for i, text := range texts {
		result[i] = document.Paragraph{Text: text, Index: i}
	}
	return result
}

var source = paragraphs(
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
	"Б, -ли; буква",
)

func TestRun(t *testing.T) {
	got, err := Run(source, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []lexicon.Record{
		{ID: 1, MeaningID: 1, Lemma: "аб // абдикІне", Morphology: "-ли", IPA: "ab // abdikʼne", Definition: "междометие", SequenceID: 1},
		{ID: 2, MeaningID: 1, Lemma: "бах", Morphology: "-ли, -ла", IPA: "bax", Definition: "дом", SequenceID: 2},
		{ID: 3, MeaningID: 2, Lemma: "кец", Morphology: "-ли", IPA: "kets", Definition: "запор", SequenceID: 3},
		{ID: 4, MeaningID: 1, Lemma: "кец", Morphology: "-ли", IPA: "kets", Definition: "замок", SequenceID: 4},
		{ID: 5, MeaningID: 2, Lemma: "саба", Morphology: "-аддил, -алла", IPA: "saba", Definition: "завтра", SequenceID: 5},
		{ID: 6, MeaningID: 1, Lemma: "саба", Morphology: "саяти", IPA: "saba", Definition: "утро", SequenceID: 6},
	}, got.Records)
	assert.Len(t, got.Blocks, 7)
	assert.Equal(t, 1, got.Rejected)
	assert.Empty(t, got.Conflicts)
}

func TestRun_EditorialNeverParsed(t *testing.T) {
	got, err := Run(source, DefaultOptions())
	require.NoError(t, err)
	for _, block := range got.Blocks {
		assert.NotContains(t, block.Text, "Слова, начинающиеся с")
	}
	for _, record := range got.Records {
		assert.NotContains(t, record.Definition, "буквы Б")
	}
}

func TestRun_BlockParsedAloneMatchesDocument(t *testing.T) {
	got, err := Run(source, DefaultOptions())
	require.NoError(t, err)

	parser := entry.NewParser(entry.Options{})
	drafts, _ := parser.ParseAll(got.Blocks)
	for i, block := range got.Blocks {
		alone, ok := parser.Parse(block.Text)
		if !ok {
			continue
		}
		found := false
		for _, draft := range drafts {
			if draft.Headword() == alone.Headword() && draft.Definition == alone.Definition {
				alone.SequenceID = draft.SequenceID
				assert.Equal(t, draft, alone, "block %d", i)
				found = true
			}
		}
		assert.True(t, found, "block %d", i)
	}
}

func TestRun_AnchorNotFound(t *testing.T) {
	_, err := Run(paragraphs("БАХ, -ли; дом"), DefaultOptions())
	assert.ErrorIs(t, err, segmenter.ErrAnchorNotFound)
}

func TestRun_MeaningIDsContiguous(t *testing.T) {
	got, err := Run(source, Options{
		Rules:     segmenter.DefaultRules(),
		Overrides: sense.OverrideTable{Version: sense.OverrideTableVersion},
	})
	require.NoError(t, err)

	groups, keys := lexicon.GroupByLemma(got.Records)
	for _, key := range keys {
		var ids []int
		for _, record := range groups[key] {
			ids = append(ids, record.MeaningID)
		}
		assert.True(t, sense.IsContiguous(ids), "lemma %s: %v", key, ids)
	}
}
