package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/kant/landscapemetrics/pkg/landscape/internalerr"
	"github.com/kant/landscapemetrics/pkg/landscape/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	order    []string // doc IDs in insertion order
	docs     map[string]store.Doc
	urlIndex map[string]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		docs:     make(map[string]store.Doc),
		urlIndex: make(map[string]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutDoc inserts or updates a document, keyed by URL.
func (s *Store) PutDoc(ctx context.Context, d store.Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existingID, ok := s.urlIndex[d.URL]; ok {
		d.ID = existingID
		s.docs[existingID] = d
		return nil
	}

	s.order = append(s.order, d.ID)
	s.docs[d.ID] = d
	s.urlIndex[d.URL] = d.ID
	return nil
}

// GetDoc implements store.Store.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	return doc, nil
}

// GetDocByURL implements store.Store.
func (s *Store) GetDocByURL(ctx context.Context, url string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.urlIndex[url]
	if !ok {
		return store.Doc{}, false, nil
	}
	return s.docs[id], true, nil
}

// ListDocs implements store.Store.
func (s *Store) ListDocs(ctx context.Context, limit int) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []store.Doc
	for _, id := range s.order {
		if limit > 0 && len(docs) >= limit {
			break
		}
		docs = append(docs, s.docs[id])
	}
	return docs, nil
}

// CountDocs implements store.Store.
func (s *Store) CountDocs(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.order)), nil
}
