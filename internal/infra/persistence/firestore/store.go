// Package firestore adapts the Cloud Firestore client to the DocumentStore
// capability. Server timestamps, dotted-path field updates and start-after
// pagination map directly onto Firestore primitives.
package firestore

import (
	"context"

	"storefront/internal/domain/store"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store wraps a Firestore client as a DocumentStore.
type Store struct {
	client *fs.Client
}

// New connects to Firestore for the given project. When credentialsFile is
// empty, application-default credentials are used.
func New(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := fs.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	return &Store{client: client}, nil
}

// Close releases the underlying client connection.
func (s *Store) Close() error {
	return errors.WithStack(s.client.Close())
}

// Collection returns a handle on the named collection.
func (s *Store) Collection(name string) store.Collection {
	return &collection{ref: s.client.Collection(name)}
}

// Now returns Firestore's server-timestamp sentinel; the backend resolves it
// to an authoritative timestamp when the write commits.
func (s *Store) Now() any {
	return fs.ServerTimestamp
}

type collection struct {
	ref *fs.CollectionRef
}

func (c *collection) Get(ctx context.Context, id string) (*store.Document, error) {
	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, store.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to get document %s/%s", c.ref.ID, id)
	}

	return &store.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (c *collection) Query(ctx context.Context, q store.Query) ([]*store.Document, error) {
	query := c.ref.Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, f.Op, f.Value)
	}

	if q.OrderBy != "" {
		dir := fs.Asc
		if q.Desc {
			dir = fs.Desc
		}
		// The document id participates in the ordering so start-after
		// positioning stays deterministic when sort keys collide.
		query = query.OrderBy(q.OrderBy, dir).OrderBy(fs.DocumentID, dir)

		if q.StartAfter != nil {
			query = query.StartAfter(q.StartAfter.Data[q.OrderBy], q.StartAfter.ID)
		}
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var docs []*store.Document
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query collection %s", c.ref.ID)
		}
		docs = append(docs, &store.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

func (c *collection) Add(ctx context.Context, data map[string]any) (string, error) {
	ref, _, err := c.ref.Add(ctx, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to add document to %s", c.ref.ID)
	}

	return ref.ID, nil
}

func (c *collection) Set(ctx context.Context, id string, data map[string]any, merge bool) error {
	var opts []fs.SetOption
	if merge {
		opts = append(opts, fs.MergeAll)
	}

	if _, err := c.ref.Doc(id).Set(ctx, data, opts...); err != nil {
		return errors.Wrapf(err, "failed to set document %s/%s", c.ref.ID, id)
	}

	return nil
}

func (c *collection) Update(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]fs.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, fs.Update{Path: path, Value: value})
	}

	if _, err := c.ref.Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrDocumentNotFound
		}

		return errors.Wrapf(err, "failed to update document %s/%s", c.ref.ID, id)
	}

	return nil
}

func (c *collection) Delete(ctx context.Context, id string) error {
	if _, err := c.ref.Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete document %s/%s", c.ref.ID, id)
	}

	return nil
}
