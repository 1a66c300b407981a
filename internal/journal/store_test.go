package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreAppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.json")
	s := NewFileStore(path)

	if recs, err := s.ReadAll("log"); err != nil || len(recs) != 0 {
		t.Fatalf("expected empty namespace for missing file, got %v %v", recs, err)
	}
	for i := 1; i <= 3; i++ {
		if err := s.Append("log", map[string]int{"year": i}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := s.Append("changes", map[string]string{"id": "V1"}); err != nil {
		t.Fatalf("append change: %v", err)
	}

	recs, err := NewFileStore(path).ReadAll("log")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	var last struct{ Year int }
	if err := json.Unmarshal(recs[2], &last); err != nil || last.Year != 3 {
		t.Fatalf("expected last year 3, got %+v %v", last, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 journal, got %v", info.Mode().Perm())
	}
	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	if len(leftovers) != 0 {
		t.Fatalf("expected no temp files, got %v", leftovers)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewFileStore(path)
	if _, err := s.ReadAll("log"); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := s.Append("log", map[string]int{"year": 1}); err != nil {
		t.Fatalf("expected append to replace the corrupt file, got %v", err)
	}
	recs, err := s.ReadAll("log")
	if err != nil || len(recs) != 1 {
		t.Fatalf("expected one record after recovery, got %v %v", recs, err)
	}
}

func TestFileStoreCorruptNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := os.WriteFile(path, []byte(`{"log": {"year": 1}, "changes": []}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	s := NewFileStore(path)
	if _, err := s.ReadAll("log"); err == nil {
		t.Fatalf("expected namespace parse error")
	}
	if recs, err := s.ReadAll("changes"); err != nil || len(recs) != 0 {
		t.Fatalf("expected other namespaces to stay readable, got %v %v", recs, err)
	}
}
