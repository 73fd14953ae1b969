// Package verification checks that a persisted lexicon numbers the senses of every lemma 1..n.
package verification

import (
	"cmp"
	"slices"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

const (
	DefaultTopN        = 10
	DefaultPreviewRows = 5
)

type Options struct {
	// TopN is how many lemmas with the most senses are reported
	TopN int
	// Inspect lists lemmas whose records are returned in full
	Inspect     []string
	PreviewRows int
}

// Violation is a lemma whose meaning ids are not 1..n.
type Violation struct {
	Lemma      string
	MeaningIDs []int
}

// LemmaCount is the number of senses of a lemma
type LemmaCount struct {
	Lemma  string
	Senses int
}

// Report is the result of Verify
type Report struct {
	TotalRecords     int
	UniqueLemmas     int
	MultiSenseLemmas int
	// Correct is how many multi-sense lemmas are numbered 1..n
	Correct    int
	Violations []Violation
	TopLemmas  []LemmaCount
	Inspected  map[string][]lexicon.Record
	Preview    []lexicon.Record
}

// Valid reports whether no lemma violates the numbering
func (r Report) Valid() bool {
	return len(r.Violations) == 0
}

// Verify regroups records by normalized lemma and checks their meaning ids.
func Verify(records []lexicon.Record, opts Options) Report {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = DefaultPreviewRows
	}

	groups, keys := lexicon.GroupByLemma(records)
	report := Report{
		TotalRecords: len(records),
		UniqueLemmas: len(keys),
		Inspected:    make(map[string][]lexicon.Record),
	}

	counts := make([]LemmaCount, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		counts = append(counts, LemmaCount{Lemma: key, Senses: len(group)})
		if len(group) < 2 {
			continue
		}
		report.MultiSenseLemmas++

		ids := make([]int, len(group))
		for i, record := range group {
			ids[i] = record.MeaningID
		}
		if isContiguous(ids) {
			report.Correct++
			continue
		}
		slices.Sort(ids)
		report.Violations = append(report.Violations, Violation{Lemma: key, MeaningIDs: ids})
	}
	slices.SortFunc(report.Violations, func(a, b Violation) int {
		return cmp.Compare(a.Lemma, b.Lemma)
	})

	slices.SortStableFunc(counts, func(a, b LemmaCount) int {
		if c := cmp.Compare(b.Senses, a.Senses); c != 0 {
			return c
		}
		return cmp.Compare(a.Lemma, b.Lemma)
	})
	report.TopLemmas = counts[:min(opts.TopN, len(counts))]

	for _, lemma := range opts.Inspect {
		key := lexicon.NormalizeLemma(lemma)
		report.Inspected[key] = groups[key]
	}

	report.Preview = records[:min(opts.PreviewRows, len(records))]
	return report
}

func isContiguous(ids []int) bool {
	sorted := slices.Sorted(slices.Values(ids))
	for i, id := range sorted {
		if id != i+1 {
			return false
		}
	}
	return true
}
