package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLemma(t *testing.T) {
	tests := []struct {
		lemma string
		want  string
	}{
		{lemma: "аб", want: "аб"},
		{lemma: "аб // абдикІне", want: "аб"},
		{lemma: "аб// абдикІне", want: "аб"},
		{lemma: "аккват/би", want: "аккват/би"},
		{lemma: " кец ", want: "кец"},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLemma(tt.lemma))
		})
	}
}

func TestGroupByLemma(t *testing.T) {
	records := []Record{
		{ID: 1, Lemma: "кец"},
		{ID: 2, Lemma: "аб // абдикІне"},
		{ID: 3, Lemma: "кец"},
		{ID: 4, Lemma: "аб"},
	}

	groups, keys := GroupByLemma(records)
	assert.Equal(t, []string{"кец", "аб"}, keys)
	assert.Equal(t, []Record{{ID: 1, Lemma: "кец"}, {ID: 3, Lemma: "кец"}}, groups["кец"])
	assert.Equal(t, []Record{{ID: 2, Lemma: "аб // абдикІне"}, {ID: 4, Lemma: "аб"}}, groups["аб"])
}
