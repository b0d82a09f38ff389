// Package memory provides an in-memory DocumentStore. It backs tests and
// local development, mirroring the semantics the repositories rely on:
// atomic per-document writes, dotted-path field updates and ordered range
// queries with strict start-after positioning.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/store"

	"github.com/google/uuid"
)

// serverTimestamp is the sentinel returned by Now. It is resolved to the
// current wall-clock time at write time.
type serverTimestamp struct{}

// Store is a process-local document store guarded by a single mutex.
type Store struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		collections: make(map[string]map[string]map[string]any),
	}
}

// Collection returns a handle on the named collection, creating it lazily.
func (s *Store) Collection(name string) store.Collection {
	return &collection{store: s, name: name}
}

// Now returns the server-timestamp sentinel.
func (s *Store) Now() any {
	return serverTimestamp{}
}

func (s *Store) docs(name string) map[string]map[string]any {
	docs, ok := s.collections[name]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[name] = docs
	}

	return docs
}

type collection struct {
	store *Store
	name  string
}

func (c *collection) Get(_ context.Context, id string) (*store.Document, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data, ok := c.store.docs(c.name)[id]
	if !ok {
		return nil, store.ErrDocumentNotFound
	}

	return &store.Document{ID: id, Data: copyMap(data)}, nil
}

func (c *collection) Query(_ context.Context, q store.Query) ([]*store.Document, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var matched []*store.Document
	for id, data := range c.store.docs(c.name) {
		if matchesFilters(data, q.Filters) {
			matched = append(matched, &store.Document{ID: id, Data: copyMap(data)})
		}
	}

	less := docLess(q.OrderBy, q.Desc)
	sort.Slice(matched, func(i, j int) bool { return less(matched[i], matched[j]) })

	if q.StartAfter != nil {
		anchor := q.StartAfter
		for len(matched) > 0 && !less(anchor, matched[0]) {
			matched = matched[1:]
		}
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return matched, nil
}

func (c *collection) Add(_ context.Context, data map[string]any) (string, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	c.store.docs(c.name)[id] = resolveSentinels(copyMap(data), time.Now().UTC())

	return id, nil
}

func (c *collection) Set(_ context.Context, id string, data map[string]any, merge bool) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	docs := c.store.docs(c.name)
	resolved := resolveSentinels(copyMap(data), time.Now().UTC())

	existing, ok := docs[id]
	if !merge || !ok {
		docs[id] = resolved

		return nil
	}

	mergeMap(existing, resolved)

	return nil
}

// mergeMap merges src onto dst field by field, descending into nested maps
// instead of replacing them wholesale.
func mergeMap(dst, src map[string]any) {
	for k, v := range src {
		if srcChild, ok := v.(map[string]any); ok {
			if dstChild, ok := dst[k].(map[string]any); ok {
				mergeMap(dstChild, srcChild)

				continue
			}
		}
		dst[k] = v
	}
}

func (c *collection) Update(_ context.Context, id string, fields map[string]any) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	doc, ok := c.store.docs(c.name)[id]
	if !ok {
		return store.ErrDocumentNotFound
	}

	now := time.Now().UTC()
	for path, value := range fields {
		setPath(doc, strings.Split(path, "."), resolveValue(value, now))
	}

	return nil
}

func (c *collection) Delete(_ context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	delete(c.store.docs(c.name), id)

	return nil
}

// setPath writes value at a dotted path, creating intermediate maps as
// needed, without touching sibling fields.
func setPath(doc map[string]any, segments []string, value any) {
	for len(segments) > 1 {
		child, ok := doc[segments[0]].(map[string]any)
		if !ok {
			child = make(map[string]any)
			doc[segments[0]] = child
		}
		doc = child
		segments = segments[1:]
	}
	doc[segments[0]] = value
}

func matchesFilters(data map[string]any, filters []store.Filter) bool {
	for _, f := range filters {
		value := data[f.Field]
		switch f.Op {
		case "==":
			if compareValues(value, f.Value) != 0 {
				return false
			}
		case "<":
			if compareValues(value, f.Value) >= 0 {
				return false
			}
		case ">":
			if compareValues(value, f.Value) <= 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// docLess orders documents by the sort field, tie-broken by document id so
// pagination is deterministic even with equal sort keys.
func docLess(orderBy string, desc bool) func(a, b *store.Document) bool {
	return func(a, b *store.Document) bool {
		cmp := compareValues(a.Data[orderBy], b.Data[orderBy])
		if cmp == 0 {
			cmp = strings.Compare(a.ID, b.ID)
		}
		if desc {
			return cmp > 0
		}

		return cmp < 0
	}
}

func compareValues(a, b any) int {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	if af, ok := numeric(a); ok {
		if bf, ok := numeric(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}

	// Mismatched or unsupported types sort as equal.
	return 0
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func copyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = copyValue(v)
	}

	return dst
}

func copyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return copyMap(value)
	case []any:
		dst := make([]any, len(value))
		for i, item := range value {
			dst[i] = copyValue(item)
		}

		return dst
	case []string:
		return append([]string(nil), value...)
	default:
		return v
	}
}

func resolveSentinels(data map[string]any, now time.Time) map[string]any {
	for k, v := range data {
		data[k] = resolveValue(v, now)
	}

	return data
}

func resolveValue(v any, now time.Time) any {
	switch value := v.(type) {
	case serverTimestamp:
		return now
	case map[string]any:
		return resolveSentinels(value, now)
	case []any:
		for i, item := range value {
			value[i] = resolveValue(item, now)
		}

		return value
	default:
		return v
	}
}
