package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// Header is the column layout of the lexicon table.
var Header = []string{"id", "meaning_id", "lemma", "morphology", "ipa", "definition"}

// ErrInvalidHeader is returned when a table does not start with Header.
var ErrInvalidHeader = errors.New("invalid lexicon table header")

// WriteCSV writes records as a table. The id column is the 1-based row position.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writer.Write(header) > %w", err)
	}
	for i, record := range records {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(record.MeaningID),
			record.Lemma,
			record.Morphology,
			record.IPA,
			record.Definition,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writer.Write(row %d) > %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush > %w", err)
	}
	return nil
}

// ReadCSV reads a table written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("reader.Read(header) > %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidHeader, header)
	}
	reader.FieldsPerRecord = len(Header)

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read > %w", err)
		}

		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", row[0], err)
		}
		meaningID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("invalid meaning_id %q for id %d: %w", row[1], id, err)
		}
		records = append(records, Record{
			ID:         id,
			MeaningID:  meaningID,
			Lemma:      row[2],
			Morphology: row[3],
			IPA:        row[4],
			Definition: row[5],
			SequenceID: len(records) + 1,
		})
	}
	return records, nil
}

// WriteCSVFile writes records to path, replacing any existing file.
func WriteCSVFile(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	if err := WriteCSV(file, records); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close(%s) > %w", path, err)
	}
	return nil
}

// ReadCSVFile reads the table at path.
func ReadCSVFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	records, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV(%s) > %w", path, err)
	}
	return records, nil
}
