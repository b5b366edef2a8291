package ranking

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the ranking as one JSON object per line, sorted.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file is created on the
// first Add.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// All reads every record. A missing file is an empty ranking.
func (s *FileStore) All() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add appends r, sorts the ranking and rewrites the file.
func (s *FileStore) Add(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	records = append(records, r)
	Sort(records)
	return s.write(records)
}

// Close is a no-op; the file is only open during Add and All.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ranking: read %s: %w", s.path, err)
	}

	var out []Record
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("ranking: %s line %d: %w", s.path, line, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ranking: read %s: %w", s.path, err)
	}
	return out, nil
}

func (s *FileStore) write(records []Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("ranking: encode: %w", err)
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ranking: create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("ranking: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("ranking: replace %s: %w", s.path, err)
	}
	return nil
}
