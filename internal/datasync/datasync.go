// Package datasync provides import/export orchestration between the lexicon table and the database.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/kubadict/internal/lexicon"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes lexicon records to the database.
type Importer struct {
	repo   lexicon.Repository
	writer io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repo lexicon.Repository, writer io.Writer) *Importer {
	return &Importer{
		repo:   repo,
		writer: writer,
	}
}

// ImportRecords imports records. A record already exists when the database has the same
// lemma with the same meaning id.
func (imp *Importer) ImportRecords(ctx context.Context, records []lexicon.Record, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult
	existingByLemma := make(map[string][]lexicon.Record)

	for _, record := range records {
		existingRecords, ok := existingByLemma[record.Lemma]
		if !ok {
			var err error
			existingRecords, err = imp.repo.FindByLemma(ctx, record.Lemma)
			if err != nil {
				return nil, fmt.Errorf("FindByLemma(%s) > %w", record.Lemma, err)
			}
			existingByLemma[record.Lemma] = existingRecords
		}

		existing := findByMeaningID(existingRecords, record.MeaningID)
		if existing == nil {
			if !opts.DryRun {
				if err := imp.repo.Create(ctx, &record); err != nil {
					return nil, fmt.Errorf("Create() > %w", err)
				}
			}
			fmt.Fprintf(imp.writer, "  [NEW]  %q (%d)\n", record.Lemma, record.MeaningID)
			result.New++
			continue
		}

		if !opts.UpdateExisting {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (%d)\n", record.Lemma, record.MeaningID)
			result.Skipped++
			continue
		}

		existing.Morphology = record.Morphology
		existing.IPA = record.IPA
		existing.Definition = record.Definition
		if !opts.DryRun {
			if err := imp.repo.Update(ctx, existing); err != nil {
				return nil, fmt.Errorf("Update() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%d)\n", record.Lemma, record.MeaningID)
		result.Updated++
	}

	return &result, nil
}

func findByMeaningID(records []lexicon.Record, meaningID int) *lexicon.Record {
	for i := range records {
		if records[i].MeaningID == meaningID {
			return &records[i]
		}
	}
	return nil
}

// Exporter reads the lexicon back from the database.
type Exporter struct {
	repo lexicon.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(repo lexicon.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// Export reads all records ordered by id.
func (e *Exporter) Export(ctx context.Context) ([]lexicon.Record, error) {
	records, err := e.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.FindAll() > %w", err)
	}
	return records, nil
}
