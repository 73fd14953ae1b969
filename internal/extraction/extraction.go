// Package extraction runs the dictionary pipeline from source paragraphs to numbered lexicon records.
package extraction

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/kubadict/internal/document"
	"github.com/at-ishikawa/kubadict/internal/entry"
	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/segmenter"
	"github.com/at-ishikawa/kubadict/internal/sense"
)

type Options struct {
	Rules     segmenter.Rules
	Parser    entry.Options
	Overrides sense.OverrideTable
}

// DefaultOptions uses the built-in segmentation rules and override table.
func DefaultOptions() Options {
	return Options{
		Rules:     segmenter.DefaultRules(),
		Overrides: sense.DefaultOverrideTable(),
	}
}

type Result struct {
	Records   []lexicon.Record
	Blocks    []segmenter.Block
	Rejected  int
	Conflicts []sense.Conflict
}

// Run segments, parses and resolves paragraphs.
func Run(paragraphs []document.Paragraph, opts Options) (Result, error) {
	blocks, err := segmenter.New(opts.Rules).Segment(paragraphs)
	if err != nil {
		return Result{}, fmt.Errorf("Segment() > %w", err)
	}
	slog.Info("segmented the source", "paragraphs", len(paragraphs), "blocks", len(blocks))

	drafts, rejected := entry.NewParser(opts.Parser).ParseAll(blocks)
	slog.Info("parsed entries", "accepted", len(drafts), "rejected", rejected)

	resolution := sense.NewResolver(opts.Overrides).Resolve(drafts)
	slog.Info("resolved senses", "records", len(resolution.Records), "conflicts", len(resolution.Conflicts))

	return Result{
		Records:   resolution.Records,
		Blocks:    blocks,
		Rejected:  rejected,
		Conflicts: resolution.Conflicts,
	}, nil
}
