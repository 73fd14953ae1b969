package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

func TestVerify(t *testing.T) {
	records := []lexicon.Record{
		{ID: 1, MeaningID: 1, Lemma: "аб // абдикІне"},
		{ID: 2, MeaningID: 2, Lemma: "аб"},
		{ID: 3, MeaningID: 3, Lemma: "кец"},
		{ID: 4, MeaningID: 1, Lemma: "кец"},
		{ID: 5, MeaningID: 1, Lemma: "саба"},
		{ID: 6, MeaningID: 1, Lemma: "саба"},
		{ID: 7, MeaningID: 1, Lemma: "гъуй"},
	}

	tests := []struct {
		name string
		opts Options
		want Report
	}{
		{
			name: "defaults",
			opts: Options{},
			want: Report{
				TotalRecords:     7,
				UniqueLemmas:     4,
				MultiSenseLemmas: 3,
				Correct:          1,
				Violations: []Violation{
					{Lemma: "кец", MeaningIDs: []int{1, 3}},
					{Lemma: "саба", MeaningIDs: []int{1, 1}},
				},
				TopLemmas: []LemmaCount{
					{Lemma: "аб", Senses: 2},
					{Lemma: "кец", Senses: 2},
					{Lemma: "саба", Senses: 2},
					{Lemma: "гъуй", Senses: 1},
				},
				Inspected: map[string][]lexicon.Record{},
				Preview:   records[:5],
			},
		},
		{
			name: "inspect and limits",
			opts: Options{TopN: 1, PreviewRows: 2, Inspect: []string{"аб // абдикІне", "мез"}},
			want: Report{
				TotalRecords:     7,
				UniqueLemmas:     4,
				MultiSenseLemmas: 3,
				Correct:          1,
				Violations: []Violation{
					{Lemma: "кец", MeaningIDs: []int{1, 3}},
					{Lemma: "саба", MeaningIDs: []int{1, 1}},
				},
				TopLemmas: []LemmaCount{{Lemma: "аб", Senses: 2}},
				Inspected: map[string][]lexicon.Record{
					"аб":  {records[0], records[1]},
					"мез": nil,
				},
				Preview: records[:2],
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verify(records, tt.opts)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Valid())
		})
	}
}

func TestVerify_Empty(t *testing.T) {
	got := Verify(nil, Options{})
	assert.True(t, got.Valid())
	assert.Zero(t, got.TotalRecords)
	assert.Empty(t, got.TopLemmas)
	assert.Empty(t, got.Preview)
}
