package oramacore

import (
	"strings"
	"testing"
)

type taggedArticle struct {
	ID       string  `orama:"id,id"`
	Title    string  `orama:"title,string"`
	Year     int     `orama:"year,number"`
	Score    float64 `orama:"score,number"`
	Summary  string  `orama:"summary,embedding"`
	Source   string  `orama:"source"`
	Internal string
}

func TestParseSchema(t *testing.T) {
	meta, err := parseSchema[taggedArticle]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	if meta.idName != "id" {
		t.Errorf("idName = %q, want id", meta.idName)
	}
	if len(meta.mapped) != 6 {
		t.Errorf("mapped = %d, want 6 (untagged fields skipped)", len(meta.mapped))
	}
	if len(meta.embeddingFields) != 1 || meta.embeddingFields[0] != "summary" {
		t.Errorf("embeddingFields = %v, want [summary]", meta.embeddingFields)
	}
}

func TestParseSchema_Pointer(t *testing.T) {
	if _, err := parseSchema[*taggedArticle](); err != nil {
		t.Fatalf("parseSchema on pointer type: %v", err)
	}
}

func TestParseSchema_Errors(t *testing.T) {
	t.Run("not a struct", func(t *testing.T) {
		if _, err := parseSchema[int](); err == nil {
			t.Error("expected error for non-struct type")
		}
	})

	t.Run("no id tag", func(t *testing.T) {
		type noID struct {
			Title string `orama:"title,string"`
		}
		_, err := parseSchema[noID]()
		if err == nil || !strings.Contains(err.Error(), "id") {
			t.Errorf("err = %v, want missing-id error", err)
		}
	})

	t.Run("duplicate id tag", func(t *testing.T) {
		type twoIDs struct {
			A string `orama:"a,id"`
			B string `orama:"b,id"`
		}
		if _, err := parseSchema[twoIDs](); err == nil {
			t.Error("expected error for duplicate id tag")
		}
	})

	t.Run("non-string id", func(t *testing.T) {
		type numID struct {
			ID int `orama:"id,id"`
		}
		if _, err := parseSchema[numID](); err == nil {
			t.Error("expected error for numeric id field")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		type badKind struct {
			ID  string `orama:"id,id"`
			Loc string `orama:"loc,geopoint"`
		}
		if _, err := parseSchema[badKind](); err == nil {
			t.Error("expected error for unknown kind")
		}
	})

	t.Run("number kind on string field", func(t *testing.T) {
		type mismatch struct {
			ID   string `orama:"id,id"`
			Year string `orama:"year,number"`
		}
		if _, err := parseSchema[mismatch](); err == nil {
			t.Error("expected error for number kind on string field")
		}
	})

	t.Run("embedding kind on numeric field", func(t *testing.T) {
		type mismatch struct {
			ID  string `orama:"id,id"`
			Vec int    `orama:"vec,embedding"`
		}
		if _, err := parseSchema[mismatch](); err == nil {
			t.Error("expected error for embedding kind on non-string field")
		}
	})
}

func TestSchemaMeta_ToDocument(t *testing.T) {
	meta, err := parseSchema[taggedArticle]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}

	doc := meta.toDocument(taggedArticle{
		ID:       "a-1",
		Title:    "Go client",
		Year:     2024,
		Score:    4.5,
		Summary:  "a library",
		Source:   "feed",
		Internal: "secret",
	})

	if doc["id"] != "a-1" {
		t.Errorf("id = %v, want a-1", doc["id"])
	}
	if doc["title"] != "Go client" {
		t.Errorf("title = %v, want Go client", doc["title"])
	}
	if doc["year"] != float64(2024) {
		t.Errorf("year = %v (%T), want float64 2024", doc["year"], doc["year"])
	}
	if doc["score"] != 4.5 {
		t.Errorf("score = %v, want 4.5", doc["score"])
	}
	if doc["source"] != "feed" {
		t.Errorf("source = %v, want feed (mapped name, undeclared)", doc["source"])
	}
	if _, ok := doc["Internal"]; ok {
		t.Error("untagged field must not travel")
	}
	if len(doc) != 6 {
		t.Errorf("doc keys = %d, want 6", len(doc))
	}
}

func TestSchemaMeta_ItemID(t *testing.T) {
	meta, err := parseSchema[taggedArticle]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	if got := meta.itemID(taggedArticle{ID: "a-7"}); got != "a-7" {
		t.Errorf("itemID = %q, want a-7", got)
	}
	if got := meta.itemID(&taggedArticle{ID: "a-8"}); got != "a-8" {
		t.Errorf("itemID on pointer = %q, want a-8", got)
	}
}

func TestSchemaMeta_CollectionParams(t *testing.T) {
	meta, err := parseSchema[taggedArticle]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	p := meta.collectionParams("articles")
	if p.ID != "articles" {
		t.Errorf("ID = %q, want articles", p.ID)
	}
	if p.Embeddings == nil || len(p.Embeddings.DocumentFields) != 1 {
		t.Fatalf("Embeddings = %+v, want document_fields [summary]", p.Embeddings)
	}
	if p.Embeddings.DocumentFields[0] != "summary" {
		t.Errorf("DocumentFields = %v, want [summary]", p.Embeddings.DocumentFields)
	}

	type plain struct {
		ID string `orama:"id,id"`
	}
	plainMeta, err := parseSchema[plain]()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	if p := plainMeta.collectionParams("plain"); p.Embeddings != nil {
		t.Errorf("Embeddings = %+v, want nil when no embedding fields", p.Embeddings)
	}
}
