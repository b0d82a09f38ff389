// Package docstore implements the domain repositories on top of the
// DocumentStore capability. It owns the document<->entity mapping, the
// dotted-path merge semantics of partial updates, and the pagination cursor
// codec.
package docstore

import (
	"context"

	"storefront/internal/domain/store"
)

// resolveCursor turns a page token back into the document it references.
// The token is simply the id of the last document of the previous page; the
// anchor is fetched so the query can position strictly after its sort-key
// value. A token whose document no longer exists (deleted, or malformed)
// degrades to an unpositioned query from the start of the collection rather
// than failing the request.
func resolveCursor(ctx context.Context, col store.Collection, token string) *store.Document {
	if token == "" {
		return nil
	}

	doc, err := col.Get(ctx, token)
	if err != nil {
		return nil
	}

	return doc
}

// nextPageToken returns the continuation token for the page: the id of the
// last document when the page came back full, or "" when the collection is
// exhausted.
func nextPageToken(docs []*store.Document, limit int) string {
	if limit <= 0 || len(docs) < limit {
		return ""
	}

	return docs[len(docs)-1].ID
}
