// ABOUTME: CSV history store for calculation records
// ABOUTME: Writes temp-then-rename; a missing file reads back as empty history

package histfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Record is the flat, string-encoded form of one calculation as it appears
// on disk: decimal operands and result as strings, RFC 3339 timestamp.
type Record struct {
	Operation string
	Operand1  string
	Operand2  string
	Result    string
	Timestamp string
}

var header = []string{"operation", "operand1", "operand2", "result", "timestamp"}

// Store reads and writes calculation history as a CSV file.
type Store struct {
	path string
}

// New creates a Store addressing the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Save writes all records to the history file, replacing any previous
// contents. The file is written to a temp path and renamed into place so a
// failed write never truncates an existing history.
func (s *Store) Save(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".history-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Operation, rec.Operand1, rec.Operand2, rec.Result, rec.Timestamp}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}

// Load reads all records from the history file. A missing file is an empty
// history, not an error. Any malformed row fails the whole load.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing history file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if !equalRow(rows[0], header) {
		return nil, fmt.Errorf("unexpected history header %v", rows[0])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// csv.Reader already enforces the field count from the header row.
		records = append(records, Record{
			Operation: row[0],
			Operand1:  row[1],
			Operand2:  row[2],
			Result:    row[3],
			Timestamp: row[4],
		})
	}
	return records, nil
}

func equalRow(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
