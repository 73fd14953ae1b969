package lexicon

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/lexicon/mock_repository.go -package=mock_lexicon

// Repository defines operations for managing lexicon records in a database.
type Repository interface {
	FindAll(ctx context.Context) ([]Record, error)
	FindByLemma(ctx context.Context, lemma string) ([]Record, error)
	Create(ctx context.Context, record *Record) error
	Update(ctx context.Context, record *Record) error
}

// DBRepository implements Repository on top of sqlx. Queries use "?" placeholders, which both
// the MySQL and the SQLite drivers accept.
type DBRepository struct {
	db sqlx.ExtContext
}

// NewDBRepository creates a new DBRepository on a connection or a transaction.
func NewDBRepository(db sqlx.ExtContext) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all records ordered by id.
func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := sqlx.SelectContext(ctx, r.db, &records,
		"SELECT id, meaning_id, lemma, morphology, ipa, definition FROM lexicon_entries ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lexicon_entries) > %w", err)
	}
	return records, nil
}

// FindByLemma returns the senses of a lemma ordered by meaning id.
func (r *DBRepository) FindByLemma(ctx context.Context, lemma string) ([]Record, error) {
	var records []Record
	if err := sqlx.SelectContext(ctx, r.db, &records,
		"SELECT id, meaning_id, lemma, morphology, ipa, definition FROM lexicon_entries WHERE lemma = ? ORDER BY meaning_id",
		lemma); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lexicon_entries, %s) > %w", lemma, err)
	}
	return records, nil
}

// Create inserts a record and sets its ID to the one assigned by the database.
func (r *DBRepository) Create(ctx context.Context, record *Record) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO lexicon_entries (meaning_id, lemma, morphology, ipa, definition) VALUES (?, ?, ?, ?, ?)",
		record.MeaningID, record.Lemma, record.Morphology, record.IPA, record.Definition)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert lexicon_entry %s %d) > %w", record.Lemma, record.MeaningID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = int(id)
	return nil
}

// Update overwrites the record with the same id.
func (r *DBRepository) Update(ctx context.Context, record *Record) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE lexicon_entries SET meaning_id = ?, lemma = ?, morphology = ?, ipa = ?, definition = ? WHERE id = ?",
		record.MeaningID, record.Lemma, record.Morphology, record.IPA, record.Definition, record.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update lexicon_entry %d) > %w", record.ID, err)
	}
	return nil
}
