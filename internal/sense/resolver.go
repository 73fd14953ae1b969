// Package sense assigns contiguous per-lemma meaning ids to parsed dictionary entries.
package sense

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/at-ishikawa/kubadict/internal/entry"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

// Reason explains why a record could not be numbered as the override table asked.
type Reason string

const (
	// ReasonUnmatched means the record belongs to an overridden lemma but matched no rule.
	// It was given the lowest meaning id not claimed by a rule.
	ReasonUnmatched Reason = "unmatched"
	// ReasonNonContiguous means the override ids of the group were not 1..n,
	// so the whole group was numbered by position instead.
	ReasonNonContiguous Reason = "non_contiguous"
)

// Conflict is a diagnostic about an overridden lemma.
type Conflict struct {
	Lemma      string
	SequenceID int
	Reason     Reason
}

// Resolution is the output of Resolve.
type Resolution struct {
	// Records are in parse order, each with a meaning id.
	Records   []lexicon.Record
	Conflicts []Conflict
}

type Resolver struct {
	table OverrideTable
}

func NewResolver(table OverrideTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve numbers the senses of every lemma 1..n.
// Senses are ordered by their raw sense tag; ties keep parse order.
func (r *Resolver) Resolve(drafts []entry.Record) Resolution {
	groups := make(map[string][]int)
	var keys []string
	for i, draft := range drafts {
		key := lexicon.NormalizeLemma(draft.Headword())
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}

	meaningIDs := make([]int, len(drafts))
	var conflicts []Conflict
	for _, key := range keys {
		group := groups[key]
		slices.SortStableFunc(group, func(a, b int) int {
			return cmp.Compare(drafts[a].SenseNumber(), drafts[b].SenseNumber())
		})

		ids := positional(len(group))
		if override, ok := r.table.lookup(key); ok {
			var groupConflicts []Conflict
			ids, groupConflicts = applyOverride(key, group, drafts, override)
			conflicts = append(conflicts, groupConflicts...)
		}
		for pos, i := range group {
			meaningIDs[i] = ids[pos]
		}
	}

	for _, conflict := range conflicts {
		slog.Warn("unresolved sense override",
			"lemma", conflict.Lemma,
			"sequence_id", conflict.SequenceID,
			"reason", conflict.Reason,
		)
	}

	order := make([]int, len(drafts))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(drafts[a].SequenceID, drafts[b].SequenceID)
	})

	records := make([]lexicon.Record, 0, len(drafts))
	for _, i := range order {
		draft := drafts[i]
		records = append(records, lexicon.Record{
			ID:         len(records) + 1,
			MeaningID:  meaningIDs[i],
			Lemma:      draft.Headword(),
			Morphology: draft.Morphology,
			IPA:        draft.IPA,
			Definition: draft.Definition,
			SequenceID: draft.SequenceID,
		})
	}
	return Resolution{
		Records:   records,
		Conflicts: conflicts,
	}
}

func applyOverride(lemma string, group []int, drafts []entry.Record, override Override) ([]int, []Conflict) {
	var conflicts []Conflict
	ids := make([]int, len(group))
	taken := make(map[int]bool, len(group))
	var unmatched []int
	for pos, i := range group {
		id, ok := override.match(drafts[i].Morphology)
		if !ok {
			unmatched = append(unmatched, pos)
			conflicts = append(conflicts, Conflict{
				Lemma:      lemma,
				SequenceID: drafts[i].SequenceID,
				Reason:     ReasonUnmatched,
			})
			continue
		}
		ids[pos] = id
		taken[id] = true
	}

	next := 1
	for _, pos := range unmatched {
		for taken[next] {
			next++
		}
		ids[pos] = next
		taken[next] = true
	}

	if !IsContiguous(ids) {
		for _, i := range group {
			conflicts = append(conflicts, Conflict{
				Lemma:      lemma,
				SequenceID: drafts[i].SequenceID,
				Reason:     ReasonNonContiguous,
			})
		}
		return positional(len(group)), conflicts
	}
	return ids, conflicts
}

// IsContiguous reports whether ids, in any order, are exactly 1..len(ids).
func IsContiguous(ids []int) bool {
	return slices.Equal(slices.Sorted(slices.Values(ids)), positional(len(ids)))
}

func positional(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}
