// Package lexicon provides the final word-sense records and their persistence.
package lexicon

import (
	"regexp"
	"strings"
)

var altFormSuffixPattern = regexp.MustCompile(`\s*//.*$`)

// Record is one word-sense of the dictionary.
type Record struct {
	// ID is the 1-based row of the CSV table. In the database it is the row's own key.
	ID         int    `db:"id" yaml:"id"`
	MeaningID  int    `db:"meaning_id" yaml:"meaning_id"`
	Lemma      string `db:"lemma" yaml:"lemma"`
	Morphology string `db:"morphology" yaml:"morphology"`
	IPA        string `db:"ipa" yaml:"ipa"`
	Definition string `db:"definition" yaml:"definition"`

	// SequenceID is the parse order of the record. It is not persisted.
	SequenceID int `db:"-" yaml:"-"`
}

// NormalizeLemma strips the alternate form, so "аб // абдикІне" groups with "аб".
func NormalizeLemma(lemma string) string {
	return strings.TrimSpace(altFormSuffixPattern.ReplaceAllString(lemma, ""))
}

// GroupByLemma groups records by normalized lemma, keeping the input order inside each group.
// The returned keys are in order of first appearance.
func GroupByLemma(records []Record) (map[string][]Record, []string) {
	groups := make(map[string][]Record)
	var keys []string
	for _, record := range records {
		key := NormalizeLemma(record.Lemma)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}
	return groups, keys
}
