// Package segmenter splits the flat paragraph stream of the dictionary into entry blocks.
//
// The source has no delimiter grammar, so entry boundaries are inferred from two weak signals:
// a paragraph that starts with an uppercase Cyrillic letter and contains a comma opens an entry,
// everything else continues the open entry. Editorial prose is filtered with marker substrings.
package segmenter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/kubadict/internal/document"
)

// ErrAnchorNotFound is returned when no paragraph starts with any of the anchors.
var ErrAnchorNotFound = errors.New("extraction anchor not found")

var (
	DefaultAnchors = []string{"АБ //", "АБ//"}

	DefaultEditorialMarkers = []string{
		"Слова, начинающиеся с",
		"Омонимы даются",
	}

	DefaultTrailingMarkers = []string{
		"У многозначного слова",
		"В словарь в качестве",
		"Что касается слов-синонимов",
		"Слова, различающиеся",
		"Слова, начинающиеся",
		"Омонимы даются",
	}
)

var numberedNotePattern = regexp.MustCompile(`^\d+\.`)

// Rules configures the boundary heuristics.
type Rules struct {
	// Anchors mark the first real entry; everything before it is front matter.
	Anchors []string
	// EditorialMarkers identify explanatory paragraphs that look like entries.
	EditorialMarkers []string
	// TrailingMarkers identify editorial commentary glued to the end of an entry.
	TrailingMarkers []string
}

// DefaultRules returns the rules for the Kubachi–Russian dictionary layout.
func DefaultRules() Rules {
	return Rules{
		Anchors:          append([]string(nil), DefaultAnchors...),
		EditorialMarkers: append([]string(nil), DefaultEditorialMarkers...),
		TrailingMarkers:  append([]string(nil), DefaultTrailingMarkers...),
	}
}

// Block is the text of one dictionary entry assembled from one or more paragraphs.
type Block struct {
	Text string
	// Start is the index of the paragraph that opened the block.
	Start int
}

type state int

const (
	outsideEntry state = iota
	insideEntry
)

type Segmenter struct {
	rules Rules
}

func New(rules Rules) *Segmenter {
	return &Segmenter{rules: rules}
}

// FindAnchor returns the position in paragraphs of the first real entry.
func (s *Segmenter) FindAnchor(paragraphs []document.Paragraph) (int, error) {
	for i, p := range paragraphs {
		for _, anchor := range s.rules.Anchors {
			if strings.HasPrefix(p.Text, anchor) {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: tried %q", ErrAnchorNotFound, s.rules.Anchors)
}

// Segment returns the entry blocks of the document in source order.
func (s *Segmenter) Segment(paragraphs []document.Paragraph) ([]Block, error) {
	start, err := s.FindAnchor(paragraphs)
	if err != nil {
		return nil, err
	}
	slog.Debug("located extraction anchor", "paragraph", paragraphs[start].Index)

	var (
		blocks  []Block
		current strings.Builder
		opened  int
		st      = outsideEntry
	)
	emit := func() {
		if current.Len() == 0 {
			return
		}
		text := s.truncate(current.String())
		current.Reset()
		if strings.TrimSpace(text) == "" {
			// the whole block was commentary
			return
		}
		blocks = append(blocks, Block{
			Text:  text,
			Start: opened,
		})
	}

	for _, p := range paragraphs[start:] {
		if OpensEntry(p.Text) {
			if s.IsEditorial(p.Text) {
				slog.Debug("discarded editorial paragraph", "paragraph", p.Index)
				continue
			}
			emit()
			current.WriteString(p.Text)
			opened = p.Index
			st = insideEntry
			continue
		}

		if st == outsideEntry || IsNumberedNote(p.Text) {
			continue
		}
		current.WriteString(" ")
		current.WriteString(p.Text)
	}
	emit()

	return blocks, nil
}

// OpensEntry reports whether a paragraph looks like the start of a dictionary entry.
func OpensEntry(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return isUppercaseCyrillic(r) && strings.Contains(text, ",")
}

// IsNumberedNote reports whether a paragraph is a numbered explanatory note such as "3. ...".
func IsNumberedNote(text string) bool {
	return numberedNotePattern.MatchString(text)
}

// IsEditorial reports whether a paragraph contains one of the editorial markers.
func (s *Segmenter) IsEditorial(text string) bool {
	for _, marker := range s.rules.EditorialMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// truncate cuts the text at the earliest trailing marker.
func (s *Segmenter) truncate(text string) string {
	cut := -1
	for _, marker := range s.rules.TrailingMarkers {
		if i := strings.Index(text, marker); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return text
	}
	return text[:cut]
}

func isUppercaseCyrillic(r rune) bool {
	return (r >= 'А' && r <= 'Я') || r == 'Ё'
}
