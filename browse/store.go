package browse

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultMaxRecents caps the recents list when the store does not say.
const DefaultMaxRecents = 10

// Store holds the favorite and recently used directories of a browser.
type Store struct {
	Favorites  []string `yaml:"favorites"`
	Recents    []string `yaml:"recents"`
	MaxRecents int      `yaml:"max_recents,omitempty"`
}

// NewStore returns an empty store with defaults applied.
func NewStore() *Store {
	s := &Store{}
	applyDefaults(s)

	return s
}

// LoadStore reads the store at path. A missing file yields an empty store.
func LoadStore(fs afero.Fs, path string) (*Store, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat store file %s: %w", path, err)
	}

	if !exists {
		return NewStore(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}

	return ParseStore(data)
}

// ParseStore parses YAML data into a Store.
func ParseStore(data []byte) (*Store, error) {
	var s Store

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in the recents cap and drops duplicate entries.
func applyDefaults(s *Store) {
	if s.MaxRecents <= 0 {
		s.MaxRecents = DefaultMaxRecents
	}

	s.Favorites = unique(s.Favorites)
	s.Recents = unique(s.Recents)

	if len(s.Recents) > s.MaxRecents {
		s.Recents = s.Recents[:s.MaxRecents]
	}
}

// MarshalStore serializes a Store to YAML.
func MarshalStore(s *Store) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteStore writes s to path, creating parent directories.
func WriteStore(fs afero.Fs, s *Store, path string) error {
	data, err := MarshalStore(s)
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", path, err)
	}

	return nil
}

// AddFavorite appends dir unless it is already a favorite.
func (s *Store) AddFavorite(dir string) bool {
	if slices.Contains(s.Favorites, dir) {
		return false
	}

	s.Favorites = append(s.Favorites, dir)

	return true
}

// RemoveFavorite removes the i-th favorite.
func (s *Store) RemoveFavorite(i int) {
	if i >= 0 && i < len(s.Favorites) {
		s.Favorites = slices.Delete(s.Favorites, i, i+1)
	}
}

// Touch moves dir to the front of the recents, dropping the oldest entry
// beyond MaxRecents.
func (s *Store) Touch(dir string) {
	if i := slices.Index(s.Recents, dir); i >= 0 {
		s.Recents = slices.Delete(s.Recents, i, i+1)
	}

	s.Recents = slices.Insert(s.Recents, 0, dir)

	limit := s.MaxRecents
	if limit <= 0 {
		limit = DefaultMaxRecents
	}

	if len(s.Recents) > limit {
		s.Recents = s.Recents[:limit]
	}
}

// RemoveRecent removes the i-th recent directory.
func (s *Store) RemoveRecent(i int) {
	if i >= 0 && i < len(s.Recents) {
		s.Recents = slices.Delete(s.Recents, i, i+1)
	}
}

func unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]

	for _, item := range items {
		if seen[item] {
			continue
		}

		seen[item] = true
		out = append(out, item)
	}

	return out
}
