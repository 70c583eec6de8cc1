// Package memory implements the document store port in process memory.
// It mirrors the PostgreSQL driver's semantics, including store-assigned
// ascending identifiers and keyset cursors, so repositories and services can
// be tested without a database.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"harbor/internal/adapters/out/docstore"
	"harbor/internal/core/ports"
	"harbor/internal/pkg/errs"
)

// DocumentStore is an in-memory DocumentStore implementation safe for
// concurrent use.
type DocumentStore struct {
	mu     sync.RWMutex
	nextID int64
	kinds  map[string]map[int64][]byte
}

// NewDocumentStore creates an empty in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		nextID: 1,
		kinds:  make(map[string]map[int64][]byte),
	}
}

// Get fetches a document by kind and id. A missing id yields (nil, nil).
func (s *DocumentStore) Get(_ context.Context, kind string, id int64) (*ports.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.kinds[kind][id]
	if !ok {
		return nil, nil
	}

	return &ports.Document{ID: id, Data: cloneBytes(data)}, nil
}

// Save persists a new document and returns the store-assigned id.
func (s *DocumentStore) Save(_ context.Context, kind string, data []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kinds[kind] == nil {
		s.kinds[kind] = make(map[int64][]byte)
	}

	id := s.nextID
	s.nextID++
	s.kinds[kind][id] = cloneBytes(data)
	return id, nil
}

// Update replaces the full document at an existing id.
func (s *DocumentStore) Update(_ context.Context, kind string, id int64, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.kinds[kind][id]; !ok {
		return errs.NewObjectNotFoundError(kind, id)
	}

	s.kinds[kind][id] = cloneBytes(data)
	return nil
}

// Delete removes the document at the given id.
func (s *DocumentStore) Delete(_ context.Context, kind string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.kinds[kind][id]; !ok {
		return errs.NewObjectNotFoundError(kind, id)
	}

	delete(s.kinds[kind], id)
	return nil
}

// Query scans a kind in ascending id order with an optional
// attribute-equality filter, resuming strictly after the cursor position.
func (s *DocumentStore) Query(_ context.Context, kind string, filter *ports.Filter, limit int, cursor string) (ports.QueryResult, error) {
	if limit <= 0 {
		return ports.QueryResult{}, errs.NewValueIsInvalidError("limit")
	}

	lastID, err := docstore.DecodeCursor(cursor)
	if err != nil {
		return ports.QueryResult{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.matchingIDs(kind, filter)
	if err != nil {
		return ports.QueryResult{}, err
	}

	result := ports.QueryResult{Documents: make([]ports.Document, 0, limit)}
	for _, id := range ids {
		if id <= lastID {
			continue
		}
		if len(result.Documents) == limit {
			result.HasMore = true
			result.NextCursor = docstore.EncodeCursor(result.Documents[limit-1].ID)
			break
		}
		result.Documents = append(result.Documents, ports.Document{ID: id, Data: cloneBytes(s.kinds[kind][id])})
	}

	return result, nil
}

// Count returns the number of documents of the given kind matching the
// filter.
func (s *DocumentStore) Count(_ context.Context, kind string, filter *ports.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, err := s.matchingIDs(kind, filter)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// matchingIDs returns the sorted ids of the kind's documents that satisfy
// the filter. Callers must hold the lock.
func (s *DocumentStore) matchingIDs(kind string, filter *ports.Filter) ([]int64, error) {
	ids := make([]int64, 0, len(s.kinds[kind]))
	for id, data := range s.kinds[kind] {
		if filter != nil {
			match, err := attributeEquals(data, filter.Attribute, filter.Value)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// attributeEquals reports whether the document's top-level attribute equals
// the given string value.
func attributeEquals(data []byte, attribute, value string) (bool, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("decode stored document: %w", err)
	}

	attr, ok := doc[attribute]
	if !ok {
		return false, nil
	}
	str, ok := attr.(string)
	if !ok {
		return false, nil
	}
	return str == value, nil
}

func cloneBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
