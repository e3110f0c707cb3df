package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yamui/generator-backend/internal/platform/apierr"
)

// TagStore is the JSON-backed mapping from normalized asset path to an
// ordered, deduplicated tag list. Every mutation is a whole-file
// read-modify-write serialized by a mutex; concurrent writers in other
// processes remain last-writer-wins on the whole file.
type TagStore struct {
	mu   sync.Mutex
	root string
}

func NewTagStore(root string) *TagStore {
	return &TagStore{root: root}
}

// FilePath is the backing file location, or "" when no root is configured.
func (ts *TagStore) FilePath() string {
	if ts.root == "" {
		return ""
	}
	return filepath.Join(ts.root, TagStoreFileName)
}

// Read loads the full tag map. A missing, unreadable or corrupt backing
// file yields an empty map, never an error. Entries whose value is not a
// list are dropped; tag strings are trimmed and empties discarded.
func (ts *TagStore) Read() map[string][]string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.read()
}

func (ts *TagStore) read() map[string][]string {
	store := map[string][]string{}
	file := ts.FilePath()
	if file == "" {
		return store
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return store
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return store
	}
	for key, value := range payload {
		var tags []string
		if err := json.Unmarshal(value, &tags); err != nil {
			continue
		}
		cleaned := make([]string, 0, len(tags))
		for _, tag := range tags {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		store[key] = cleaned
	}
	return store
}

// Persist normalizes tags, overwrites or deletes the entry for normalized
// (empty tag list deletes), writes the whole map back and returns it.
func (ts *TagStore) Persist(normalized string, tags []string) (map[string][]string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.root == "" {
		return nil, apierr.Configuration("asset root is not configured")
	}
	store := ts.read()
	cleaned := NormalizeTags(tags)
	if len(cleaned) > 0 {
		store[normalized] = cleaned
	} else {
		delete(store, normalized)
	}
	if err := os.MkdirAll(ts.root, 0o755); err != nil {
		return nil, apierr.Configuration("create asset root: %v", err)
	}
	payload, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return nil, apierr.Configuration("encode tag store: %v", err)
	}
	if err := os.WriteFile(ts.FilePath(), payload, 0o644); err != nil {
		return nil, apierr.Configuration("write tag store: %v", err)
	}
	return store, nil
}

// NormalizeTags trims, drops empties and deduplicates preserving first-seen
// order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		normalized = append(normalized, trimmed)
	}
	return normalized
}
