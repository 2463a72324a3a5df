package memory

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Store keeps uploaded objects in a map. Used by tests and by local runs
// without object storage credentials.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
	baseURL string
}

func NewStore(baseURL string) *Store {
	return &Store{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Store) Upload(_ context.Context, path string, body io.Reader, contentType string, overwrite bool) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read upload body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.objects[path]; exists && !overwrite {
		return fmt.Errorf("object %s already exists", path)
	}
	s.objects[path] = data
	s.types[path] = contentType

	return nil
}

func (s *Store) PublicURL(path string) string {
	return s.baseURL + "/" + path
}

func (s *Store) ListPrefix(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0)
	for path := range s.objects {
		if strings.HasPrefix(path, prefix) {
			out = append(out, path)
		}
	}
	sort.Strings(out)

	return out, nil
}

func (s *Store) Delete(_ context.Context, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range paths {
		delete(s.objects, path)
		delete(s.types, path)
	}

	return nil
}

// Object returns the stored bytes and content type for path.
func (s *Store) Object(path string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[path]
	if !ok {
		return nil, "", false
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, s.types[path], true
}
