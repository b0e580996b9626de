package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"storefront-gateway/pkg/logger"

	"github.com/goccy/go-json"
)

// Store is a file-backed JSON document store: namespaced string keys to raw
// JSON documents, all held in a single file on disk. It is the gateway's
// analog of browser local storage. All operations are synchronous; writes
// are atomic (temp file + rename). A corrupt or missing backing file is
// treated as empty, never as an error.
type Store struct {
	mu   sync.Mutex
	path string
	docs map[string]json.RawMessage
}

// Open loads the store from path, creating parent directories on first
// write. Parse failures are swallowed: the store starts empty.
func Open(path string) *Store {
	s := &Store{
		path: path,
		docs: make(map[string]json.RawMessage),
	}
	s.mu.Lock()
	s.loadLocked()
	s.mu.Unlock()
	return s
}

func (s *Store) loadLocked() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	docs := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &docs); err != nil {
		logger.Warn().Str("path", s.path).Err(err).Msg("Corrupt store file, starting empty")
		return
	}
	s.docs = docs
}

// Get returns the raw document and true if the key exists.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, true
}

// Set writes the raw document for a key and persists the full store.
func (s *Store) Set(key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(json.RawMessage, len(doc))
	copy(cp, doc)
	s.docs[key] = cp
	return s.persistLocked(key)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[key]; !ok {
		return nil
	}
	delete(s.docs, key)
	return s.persistLocked(key)
}

// Clear removes all keys.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]json.RawMessage)
	return s.persistLocked("*")
}

// Reload re-reads the backing file, replacing in-memory contents. Used by
// the watcher when another process rewrites the file.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]json.RawMessage)
	s.loadLocked()
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) persistLocked(key string) error {
	raw, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		logger.StoreWrite(key, 0, err)
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.StoreWrite(key, len(raw), err)
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		logger.StoreWrite(key, len(raw), err)
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		logger.StoreWrite(key, len(raw), err)
		return fmt.Errorf("replace store: %w", err)
	}

	logger.StoreWrite(key, len(raw), nil)
	return nil
}
