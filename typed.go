package oramacore

import (
	"context"
	"fmt"
)

// TypedCollection is a generic, schema-first handle on one collection.
// The document shape is inferred from T's struct tags at construction time:
//
//	type Article struct {
//	    ID      string  `orama:"id,id"`
//	    Title   string  `orama:"title,string"`
//	    Year    int     `orama:"year,number"`
//	    Summary string  `orama:"summary,embedding"`
//	}
//
// Fields tagged "embedding" become the collection's embedded document
// fields; untagged fields never leave the process.
type TypedCollection[T any] struct {
	id     string
	client *Client
	meta   *schemaMeta
}

// NewTypedCollection creates a typed handle for the given collection id.
// T must be a struct with orama tags, one of them the id. Tags are parsed
// once and cached.
func NewTypedCollection[T any](client *Client, collection string) (*TypedCollection[T], error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("typed collection %q: %w", collection, err)
	}
	return &TypedCollection[T]{id: collection, client: client, meta: meta}, nil
}

// CreateParams returns collection-creation params derived from T's schema,
// ready for Manager.CreateCollection. Embedding-tagged fields are declared
// in the embeddings config; keys and language follow the usual defaulting.
func (tc *TypedCollection[T]) CreateParams() NewCollectionParams {
	return tc.meta.collectionParams(tc.id)
}

// Insert converts items to documents and indexes them.
func (tc *TypedCollection[T]) Insert(ctx context.Context, items []T) error {
	docs := make([]Document, len(items))
	for i, item := range items {
		docs[i] = tc.meta.toDocument(item)
	}
	if err := tc.client.Documents(tc.id).Insert(ctx, docs); err != nil {
		return fmt.Errorf("typed insert: %w", err)
	}
	return nil
}

// Delete removes previously inserted items, keyed by their id field.
func (tc *TypedCollection[T]) Delete(ctx context.Context, items []T) error {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = tc.meta.itemID(item)
	}
	return tc.DeleteIDs(ctx, ids)
}

// DeleteIDs removes documents by raw id.
func (tc *TypedCollection[T]) DeleteIDs(ctx context.Context, ids []string) error {
	if err := tc.client.Documents(tc.id).Delete(ctx, ids); err != nil {
		return fmt.Errorf("typed delete: %w", err)
	}
	return nil
}
