package oramacore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestNewTypedCollection_BadType(t *testing.T) {
	c := newTestClient(respondWith(http.StatusOK, `{}`))
	if _, err := NewTypedCollection[string](c, "docs-1"); err == nil {
		t.Fatal("expected error for non-struct type")
	}
}

func TestTypedCollection_Insert(t *testing.T) {
	hc := respondWith(http.StatusOK, `{}`)
	c := newTestClient(hc, WithWriteAPIKey("w"))

	tc, err := NewTypedCollection[taggedArticle](c, "articles")
	if err != nil {
		t.Fatalf("NewTypedCollection: %v", err)
	}

	items := []taggedArticle{
		{ID: "a-1", Title: "first", Year: 2023, Summary: "one"},
		{ID: "a-2", Title: "second", Year: 2024, Summary: "two"},
	}
	if err := tc.Insert(context.Background(), items); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	req := hc.requests[0]
	if req.path != "/collections/articles/insert" {
		t.Errorf("path = %q, want /collections/articles/insert", req.path)
	}

	var sent []map[string]any
	if err := json.Unmarshal([]byte(req.body), &sent); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(sent) != 2 {
		t.Fatalf("docs = %d, want 2", len(sent))
	}
	if sent[0]["id"] != "a-1" || sent[0]["title"] != "first" {
		t.Errorf("doc 0 = %v", sent[0])
	}
	if sent[1]["year"] != float64(2024) {
		t.Errorf("doc 1 year = %v, want 2024", sent[1]["year"])
	}
}

func TestTypedCollection_Delete(t *testing.T) {
	hc := respondWith(http.StatusOK, `{}`)
	c := newTestClient(hc, WithWriteAPIKey("w"))

	tc, err := NewTypedCollection[taggedArticle](c, "articles")
	if err != nil {
		t.Fatalf("NewTypedCollection: %v", err)
	}

	items := []taggedArticle{{ID: "a-1"}, {ID: "a-2"}}
	if err := tc.Delete(context.Background(), items); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	req := hc.requests[0]
	if req.path != "/collections/articles/delete" {
		t.Errorf("path = %q, want /collections/articles/delete", req.path)
	}
	if req.body != `["a-1","a-2"]` {
		t.Errorf("body = %q, want the item ids", req.body)
	}
}

func TestTypedCollection_DeleteIDs(t *testing.T) {
	hc := respondWith(http.StatusOK, `{}`)
	c := newTestClient(hc, WithWriteAPIKey("w"))

	tc, err := NewTypedCollection[taggedArticle](c, "articles")
	if err != nil {
		t.Fatalf("NewTypedCollection: %v", err)
	}
	if err := tc.DeleteIDs(context.Background(), []string{"x"}); err != nil {
		t.Fatalf("DeleteIDs: %v", err)
	}
	if hc.requests[0].body != `["x"]` {
		t.Errorf("body = %q, want [\"x\"]", hc.requests[0].body)
	}
}

func TestTypedCollection_GuardsPropagate(t *testing.T) {
	c := newTestClient(respondWith(http.StatusOK, `{}`))

	tc, err := NewTypedCollection[taggedArticle](c, "articles")
	if err != nil {
		t.Fatalf("NewTypedCollection: %v", err)
	}
	err = tc.Insert(context.Background(), []taggedArticle{{ID: "a-1"}})
	if !errors.Is(err, ErrWriteAPIKeyNotSet) {
		t.Errorf("err = %v, want ErrWriteAPIKeyNotSet", err)
	}
}

func TestTypedCollection_CreateParams(t *testing.T) {
	c := newTestClient(respondWith(http.StatusOK, `{}`))

	tc, err := NewTypedCollection[taggedArticle](c, "articles")
	if err != nil {
		t.Fatalf("NewTypedCollection: %v", err)
	}
	p := tc.CreateParams()
	if p.ID != "articles" {
		t.Errorf("ID = %q, want articles", p.ID)
	}
	if p.Embeddings == nil || p.Embeddings.DocumentFields[0] != "summary" {
		t.Errorf("Embeddings = %+v, want summary declared", p.Embeddings)
	}
}
