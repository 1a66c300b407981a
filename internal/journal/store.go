package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store is an append-only record log split into namespaces.
type Store interface {
	Append(ns string, record any) error
	ReadAll(ns string) ([]json.RawMessage, error)
}

// FileStore keeps every namespace in one JSON file, rewritten atomically
// on each append.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath is journal.json under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, "forge-and-field", "journal.json"), nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) ReadAll(ns string) ([]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return decodeNamespace(doc, ns)
}

func (s *FileStore) Append(ns string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		// An unreadable journal is replaced rather than blocking new records.
		doc = map[string]json.RawMessage{}
	}
	records, err := decodeNamespace(doc, ns)
	if err != nil {
		records = nil
	}
	records = append(records, raw)
	encoded, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encode namespace")
	}
	doc[ns] = encoded
	return s.save(doc)
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read journal")
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse journal")
	}
	return doc, nil
}

func (s *FileStore) save(doc map[string]json.RawMessage) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create journal dir")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode journal")
	}

	tmp, err := os.CreateTemp(dir, "journal-*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp journal")
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write journal")
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "chmod journal")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close journal")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrap(err, "replace journal")
	}
	cleanup = false
	return nil
}

func decodeNamespace(doc map[string]json.RawMessage, ns string) ([]json.RawMessage, error) {
	raw, ok := doc[ns]
	if !ok {
		return nil, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Wrapf(err, "parse namespace %s", ns)
	}
	return records, nil
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]json.RawMessage
	// Err, when set, fails every call.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]json.RawMessage{}}
}

func (m *MemoryStore) Append(ns string, record any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode record")
	}
	m.data[ns] = append(m.data[ns], raw)
	return nil
}

func (m *MemoryStore) ReadAll(ns string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]json.RawMessage(nil), m.data[ns]...), nil
}

// Put stores raw bytes as a record without validating them.
func (m *MemoryStore) Put(ns string, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ns] = append(m.data[ns], json.RawMessage(raw))
}
