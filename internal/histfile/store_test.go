// ABOUTME: Tests for the CSV history store
// ABOUTME: Covers round trips, missing files, header checks, and overwrite semantics

package histfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "history", "calculator_history.csv"))
}

func sampleRecords() []Record {
	return []Record{
		{Operation: "Addition", Operand1: "2", Operand2: "3", Result: "5", Timestamp: "2026-08-29T10:00:00Z"},
		{Operation: "Division", Operand1: "1", Operand2: "3", Result: "0.3333333333", Timestamp: "2026-08-29T10:00:01Z"},
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	want := sampleRecords()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %v, want empty", records)
	}
}

func TestStoreSaveCreatesParentDir(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	if err := s.Save(nil); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("history file not created: %v", err)
	}
}

func TestStoreSaveWritesHeader(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	if err := s.Save(sampleRecords()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("reading history file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "operation,operand1,operand2,result,timestamp" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Errorf("line count = %d, want header plus 2 records", len(lines))
	}
}

func TestStoreSaveReplacesPreviousContents(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	if err := s.Save(sampleRecords()); err != nil {
		t.Fatalf("first Save error: %v", err)
	}
	replacement := []Record{{Operation: "Power", Operand1: "2", Operand2: "10", Result: "1024", Timestamp: "2026-08-29T11:00:00Z"}}
	if err := s.Save(replacement); err != nil {
		t.Fatalf("second Save error: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got) != 1 || got[0] != replacement[0] {
		t.Errorf("records = %+v, want %+v", got, replacement)
	}
}

func TestStoreLoadRejectsBadHeader(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "op,a,b,res,when\nAddition,2,3,5,2026-08-29T10:00:00Z\n"
	if err := os.WriteFile(s.Path(), []byte(contents), 0o600); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	_, err := s.Load()
	if err == nil || !strings.Contains(err.Error(), "unexpected history header") {
		t.Errorf("error = %v, want unexpected history header", err)
	}
}

func TestStoreLoadRejectsRaggedRows(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "operation,operand1,operand2,result,timestamp\nAddition,2,3\n"
	if err := os.WriteFile(s.Path(), []byte(contents), 0o600); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if _, err := s.Load(); err == nil {
		t.Error("Load accepted a row with the wrong field count")
	}
}
