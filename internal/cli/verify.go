package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
	"github.com/at-ishikawa/kubadict/internal/verification"
)

// RunVerify reads the CSV table at path and prints its verification report.
func RunVerify(w io.Writer, path string, opts verification.Options) (verification.Report, error) {
	records, err := lexicon.ReadCSVFile(path)
	if err != nil {
		return verification.Report{}, fmt.Errorf("lexicon.ReadCSVFile() > %w", err)
	}

	report := verification.Verify(records, opts)
	printReport(w, report, opts.Inspect)
	return report, nil
}

func printReport(w io.Writer, report verification.Report, inspect []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Found %d lemmas with multiple meanings.\n", report.MultiSenseLemmas)
	fmt.Fprintf(w, "Total entries: %d\n", report.TotalRecords)
	fmt.Fprintf(w, "Unique lemmas: %d\n", report.UniqueLemmas)

	fmt.Fprintln(w, "\nLemmas with the most meanings:")
	for _, count := range report.TopLemmas {
		fmt.Fprintf(w, "  %s: %d\n", count.Lemma, count.Senses)
	}

	fmt.Fprintln(w)
	green.Fprintf(w, "Lemmas with contiguous meaning IDs: %d\n", report.Correct)
	if report.Valid() {
		green.Fprintln(w, "Lemmas with broken meaning IDs: 0")
	} else {
		red.Fprintf(w, "Lemmas with broken meaning IDs: %d\n", len(report.Violations))
		for _, violation := range report.Violations {
			red.Fprintf(w, "  %s: %s\n", violation.Lemma, joinInts(violation.MeaningIDs))
		}
	}

	for _, lemma := range inspect {
		key := lexicon.NormalizeLemma(lemma)
		records := report.Inspected[key]
		fmt.Fprintf(w, "\nEntries of %q (%d):\n", key, len(records))
		for _, record := range records {
			fmt.Fprintf(w, "  id: %d, meaning_id: %d, lemma: %s, morphology: %s\n",
				record.ID, record.MeaningID, record.Lemma, abbreviate(record.Morphology, 50))
		}
	}

	fmt.Fprintln(w, "\nFirst entries:")
	for _, record := range report.Preview {
		fmt.Fprintf(w, "  %d, %d, %s, %s\n", record.ID, record.MeaningID, record.Lemma, abbreviate(record.Morphology, 30))
	}
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ", ")
}

func abbreviate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
