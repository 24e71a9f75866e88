package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// historyFile is the on-disk envelope: {"posted": ["LAL-0211", ...]}.
type historyFile struct {
	Posted []string `json:"posted"`
}

// FileStore keeps posted identities in a single JSON file, rewritten
// atomically after every successful post.
type FileStore struct {
	path   string
	posted map[string]struct{}
	order  []string
}

// NewFileStore loads the history file at path. A missing or unreadable file
// fails soft to an empty set: first runs and corrupted files are recoverable,
// worst case is a duplicate post, not a crash.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:   path,
		posted: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var payload historyFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return s
	}
	for _, identity := range payload.Posted {
		if _, ok := s.posted[identity]; ok {
			continue
		}
		s.posted[identity] = struct{}{}
		s.order = append(s.order, identity)
	}
	return s
}

// HasPosted reports whether the identity was recorded by any prior run.
func (s *FileStore) HasPosted(identity string) bool {
	_, ok := s.posted[identity]
	return ok
}

// RecordPosted appends the identity and rewrites the file before returning.
// Recording an already-present identity is a no-op.
func (s *FileStore) RecordPosted(identity string) error {
	if _, ok := s.posted[identity]; ok {
		return nil
	}
	s.posted[identity] = struct{}{}
	s.order = append(s.order, identity)
	return s.flush()
}

// Close is a no-op; every RecordPosted flushes synchronously.
func (s *FileStore) Close() error {
	return nil
}

// Count returns the number of recorded identities.
func (s *FileStore) Count() int {
	return len(s.posted)
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(historyFile{Posted: s.order}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	// Write-then-rename keeps a crash mid-write from corrupting the file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
