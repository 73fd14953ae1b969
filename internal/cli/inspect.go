package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kubadict/internal/document"
	"github.com/at-ishikawa/kubadict/internal/segmenter"
)

const (
	DefaultInspectContext = 5
	DefaultInspectLimit   = 10
)

type InspectOptions struct {
	Rules segmenter.Rules
	// Context is how many paragraphs are printed before the anchor; three times as many follow it
	Context int
	// Limit is how many candidate and sample entries are printed
	Limit int
}

// RunInspect prints where extraction starts and what the first entries look like,
// to tune the segmentation rules against a new source.
func RunInspect(w io.Writer, paragraphs []document.Paragraph, opts InspectOptions) error {
	if opts.Context <= 0 {
		opts.Context = DefaultInspectContext
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultInspectLimit
	}
	bold := color.New(color.Bold)

	fmt.Fprintf(w, "Total paragraphs: %d\n", len(paragraphs))

	s := segmenter.New(opts.Rules)
	anchor, err := s.FindAnchor(paragraphs)
	if err != nil {
		color.New(color.FgRed).Fprintln(w, "Could not find the first entry")
		return fmt.Errorf("FindAnchor() > %w", err)
	}
	bold.Fprintf(w, "Found the first entry at paragraph %d:\n", anchor+1)
	fmt.Fprintf(w, "Line: %s\n", abbreviate(paragraphs[anchor].Text, 200))

	fmt.Fprintln(w)
	bold.Fprintln(w, "Context around the first entry:")
	start := max(0, anchor-opts.Context)
	end := min(anchor+3*opts.Context, len(paragraphs))
	for i := start; i < end; i++ {
		fmt.Fprintf(w, "Line %d: %s\n", i+1, abbreviate(paragraphs[i].Text, 100))
	}

	fmt.Fprintln(w)
	bold.Fprintf(w, "Next %d entries:\n", opts.Limit)
	count := 0
	for i := anchor + 1; i < len(paragraphs) && count < opts.Limit; i++ {
		if !segmenter.OpensEntry(paragraphs[i].Text) {
			continue
		}
		count++
		fmt.Fprintf(w, "Entry %d: %s\n", count, abbreviate(paragraphs[i].Text, 150))
	}

	fmt.Fprintln(w)
	bold.Fprintln(w, "Sample well-formed entries:")
	count = 0
	for i := anchor; i < len(paragraphs) && count < opts.Limit; i++ {
		text := paragraphs[i].Text
		if !segmenter.OpensEntry(text) || !strings.Contains(text, ";") || s.IsEditorial(text) {
			continue
		}
		count++
		fmt.Fprintf(w, "Entry %d: %s\n", count, abbreviate(text, 200))
	}
	return nil
}
