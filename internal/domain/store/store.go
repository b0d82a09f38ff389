// Package store defines the document-store capability the repositories are
// built on. The application never reaches for a concrete client directly; a
// DocumentStore is injected at construction so an in-memory implementation
// can stand in during tests and local development.
package store

import (
	"context"

	"storefront/internal/errors"
)

// ErrDocumentNotFound is returned by Collection.Get when no document exists
// under the given id.
var ErrDocumentNotFound = errors.New("document not found")

// Document is a raw stored document: the store-assigned id plus the field
// map as persisted. Timestamp fields come back as time.Time values.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter is a single field equality/comparison predicate.
type Filter struct {
	Field string
	Op    string // "==", "<", ">", ...
	Value any
}

// Query describes an indexed range query over one collection. When
// StartAfter is set, results begin strictly after that document under the
// current ordering (sort field value, then document id as tie-breaker).
type Query struct {
	Filters    []Filter
	OrderBy    string
	Desc       bool
	Limit      int
	StartAfter *Document
}

// Collection exposes atomic per-document operations and indexed range
// queries over one named collection.
type Collection interface {
	// Get fetches a single document, or ErrDocumentNotFound.
	Get(ctx context.Context, id string) (*Document, error)

	// Query runs an indexed range query and returns matching documents in
	// query order.
	Query(ctx context.Context, q Query) ([]*Document, error)

	// Add persists a new document and returns the store-assigned id.
	Add(ctx context.Context, data map[string]any) (string, error)

	// Set writes a document under a caller-chosen id. With merge, supplied
	// top-level fields are merged onto the existing document.
	Set(ctx context.Context, id string, data map[string]any, merge bool) error

	// Update patches individual fields of an existing document. Keys may use
	// dotted paths ("inventory.total") to target nested fields without
	// replacing the enclosing object.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error
}

// DocumentStore is the injected persistence capability.
type DocumentStore interface {
	Collection(name string) Collection

	// Now returns the store's server-timestamp sentinel. The value is only
	// meaningful inside a write; the store resolves it to an authoritative
	// timestamp server-side.
	Now() any
}
