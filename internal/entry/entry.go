// Package entry parses a dictionary entry block into its headword, sense tag, morphology and definition.
package entry

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/kubadict/internal/segmenter"
	"github.com/at-ishikawa/kubadict/internal/transliteration"
)

// AltFormSeparator separates a headword from its alternate orthography, as in "АБ // АБДИКIНЕ".
const AltFormSeparator = "//"

// DefaultAltFormWindow is how many leading runes of an entry are searched for AltFormSeparator.
const DefaultAltFormWindow = 20

const defaultSenseTag = "1"

var (
	// An uppercase headword, possibly hyphenated, accented or multiword, with an optional sense number.
	headPattern = regexp.MustCompile(`^([А-ЯЁIІӀ][А-ЯЁӢӮIІӀ\x{0300}-\x{036F}/\-\s]*)([0-9¹²³⁴⁵⁶⁷⁸⁹⁰]*)`)

	// A headword followed by a separate Roman homonym number, up to the first comma.
	romanHeadPattern = regexp.MustCompile(`^[А-ЯЁIІӀ][А-ЯЁӢӮIІӀ\x{0300}-\x{036F}/\-\s]*\s(?:I{1,3}|IV|VI{0,3}|IX|X)\s*$`)

	trailingDigitsPattern = regexp.MustCompile(`([0-9]+)\s*$`)
	trailingRomanPattern  = regexp.MustCompile(`\s(I{1,3}|IV|VI{0,3}|IX|X)\s*$`)

	superscriptReplacer = strings.NewReplacer(
		"⁰", "0", "¹", "1", "²", "2", "³", "3", "⁴", "4",
		"⁵", "5", "⁶", "6", "⁷", "7", "⁸", "8", "⁹", "9",
	)

	romanNumerals = map[string]string{
		"I": "1", "II": "2", "III": "3", "IV": "4", "V": "5",
		"VI": "6", "VII": "7", "VIII": "8", "IX": "9", "X": "10",
	}
)

// Record is a parsed entry before its meaning id is resolved.
type Record struct {
	// SequenceID is the 1-based position among accepted records.
	SequenceID int
	// Lemma is the lowercase primary headword without the alternate form or sense number.
	Lemma string
	// AltForm is "<primary> // <alternate>" when the entry declares an alternate orthography.
	AltForm     string
	RawSenseTag string
	Morphology  string
	Definition  string
	IPA         string
}

// Headword is the form that is stored and transliterated: the alternate form when present.
func (r Record) Headword() string {
	if r.AltForm != "" {
		return r.AltForm
	}
	return r.Lemma
}

// SenseNumber is RawSenseTag as an integer, 1 if it cannot be read.
func (r Record) SenseNumber() int {
	n, err := strconv.Atoi(r.RawSenseTag)
	if err != nil {
		return 1
	}
	return n
}

type Options struct {
	AltFormWindow int
}

type Parser struct {
	altFormWindow int
}

func NewParser(opts Options) *Parser {
	window := opts.AltFormWindow
	if window <= 0 {
		window = DefaultAltFormWindow
	}
	return &Parser{altFormWindow: window}
}

// Parse extracts a record from the text of one entry block.
// It returns false when no usable headword can be found; such blocks are expected in the source.
func (p *Parser) Parse(text string) (Record, bool) {
	head, alternate, fields := p.splitHead(text)
	tag, head := senseTag(head)
	if alternate != "" {
		var altTag string
		altTag, alternate = senseTag(alternate)
		if tag == "" {
			tag = altTag
		}
	}
	if tag == "" {
		tag = defaultSenseTag
	}

	record := Record{
		Lemma:       transliteration.Fold(strings.TrimSpace(head)),
		RawSenseTag: tag,
		Morphology:  morphology(fields),
		Definition:  definition(fields),
	}
	if alternate != "" {
		record.AltForm = record.Lemma + " " + AltFormSeparator + " " + transliteration.Fold(alternate)
	}

	headword := record.Headword()
	if record.Lemma == "" || utf8.RuneCountInString(headword) <= 1 {
		return Record{}, false
	}
	record.IPA = transliteration.Transliterate(headword)
	return record, true
}

// ParseAll parses blocks in order and numbers the accepted records.
// It returns the records and how many blocks were rejected.
func (p *Parser) ParseAll(blocks []segmenter.Block) ([]Record, int) {
	records := make([]Record, 0, len(blocks))
	nextID := 1
	rejected := 0
	for _, block := range blocks {
		record, ok := p.Parse(block.Text)
		if !ok {
			rejected++
			slog.Debug("rejected entry block", "paragraph", block.Start, "text", abbreviate(block.Text, 60))
			continue
		}
		record.SequenceID = nextID
		nextID++
		records = append(records, record)
	}
	return records, rejected
}

// splitHead separates the headword (and the alternate headword, if any) from the text the
// morphology and definition are read from.
func (p *Parser) splitHead(text string) (head, alternate, fields string) {
	if i := strings.Index(text, AltFormSeparator); i >= 0 && utf8.RuneCountInString(text[:i]) < p.altFormWindow {
		head = strings.TrimSpace(text[:i])
		rest := strings.TrimSpace(text[i+len(AltFormSeparator):])
		if rest == "" {
			return head, "", text
		}
		if j := strings.Index(rest, ","); j != 0 {
			if j < 0 {
				j = len(rest)
			}
			alternate = strings.TrimSpace(rest[:j])
		}
		return head, alternate, rest
	}

	if before, _, found := strings.Cut(text, ","); found && romanHeadPattern.MatchString(before) {
		return before, "", text
	}
	if m := headPattern.FindStringSubmatch(text); m != nil {
		head = m[1] + m[2]
	}
	return head, "", text
}

// senseTag returns the trailing sense number of a headword, or "" when there is none,
// and the headword without it.
func senseTag(head string) (string, string) {
	head = strings.TrimSpace(superscriptReplacer.Replace(head))
	if m := trailingDigitsPattern.FindStringSubmatchIndex(head); m != nil {
		return head[m[2]:m[3]], strings.TrimSpace(head[:m[0]])
	}
	if m := trailingRomanPattern.FindStringSubmatchIndex(head); m != nil {
		return romanNumerals[head[m[2]:m[3]]], strings.TrimSpace(head[:m[0]])
	}
	return "", head
}

func morphology(text string) string {
	comma := strings.Index(text, ",")
	semicolon := strings.Index(text, ";")
	if comma < 0 || semicolon < comma {
		return ""
	}
	return strings.TrimSpace(text[comma+1 : semicolon])
}

func definition(text string) string {
	_, after, found := strings.Cut(text, ";")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

func abbreviate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n]) + "..."
}
