// Package ports defines the outbound interfaces of the harbor core: the
// generic document store and the two repositories built on top of it.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import "context"

// Store kinds for the two entity collections.
const (
	KindVessel = "Vessel"
	KindCargo  = "Cargo"
)

// Document is a raw stored record: the store-assigned numeric id plus the
// JSON document body. The store is schemaless; interpreting Data is the
// repositories' concern.
type Document struct {
	ID   int64
	Data []byte
}

// Filter is an attribute-equality predicate over a top-level document
// attribute. The store supports no other query shape (no joins, no ranges).
type Filter struct {
	Attribute string
	Value     string
}

// QueryResult is one page of a scan. NextCursor is an opaque continuation
// token valid only for the store that produced it; it is empty when HasMore
// is false.
type QueryResult struct {
	Documents  []Document
	NextCursor string
	HasMore    bool
}

// DocumentStore is the generic adapter over the schemaless key-value store.
// It offers single-key reads and writes and attribute-filtered paginated
// scans, and nothing else: no operation is atomic across two different ids,
// and the store enforces no referential integrity.
type DocumentStore interface {
	// Get fetches a document by kind and id. A missing id yields (nil, nil),
	// never an error, so callers can distinguish absence from a transport
	// failure.
	Get(ctx context.Context, kind string, id int64) (*Document, error)

	// Save persists a new document and returns the store-assigned id.
	Save(ctx context.Context, kind string, data []byte) (int64, error)

	// Update replaces the full document at an existing id. There is no
	// partial-field merge at this layer: callers supply the merged document.
	// Updating a missing id yields an object-not-found error.
	Update(ctx context.Context, kind string, id int64, data []byte) error

	// Delete removes the document at the given id. Deleting a missing id
	// yields an object-not-found error.
	Delete(ctx context.Context, kind string, id int64) error

	// Query scans a kind with an optional attribute-equality filter,
	// returning at most limit documents from the position encoded by cursor.
	// An empty cursor starts from the beginning. Cursors are not stable
	// under concurrent mutation of the collection.
	Query(ctx context.Context, kind string, filter *Filter, limit int, cursor string) (QueryResult, error)

	// Count runs an unbounded scan with the same filter semantics as Query
	// and returns the number of matching documents.
	Count(ctx context.Context, kind string, filter *Filter) (int, error)
}
