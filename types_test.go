package oramacore

import (
	"encoding/json"
	"testing"
)

func TestNewCollectionParams_JSONShape(t *testing.T) {
	full := NewCollectionParams{
		ID:          "docs-1",
		Description: "test corpus",
		WriteAPIKey: "w",
		ReadAPIKey:  "r",
		Language:    LanguageItalian,
		Embeddings: &EmbeddingsConfig{
			Model:          EmbeddingModelE5MultilangualSmall,
			DocumentFields: []string{"body"},
		},
	}
	out, err := json.Marshal(full)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "description", "write_api_key", "read_api_key", "language", "embeddings"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing %q in %s", key, out)
		}
	}
	if m["language"] != "Italian" {
		t.Errorf("language = %v, want verbatim Italian", m["language"])
	}
	emb := m["embeddings"].(map[string]any)
	if emb["model"] != "E5MultilangualSmall" {
		t.Errorf("model = %v, want verbatim E5MultilangualSmall", emb["model"])
	}
}

func TestNewCollectionParams_OptionalsOmitted(t *testing.T) {
	out, err := json.Marshal(NewCollectionParams{ID: "docs-1", WriteAPIKey: "w", ReadAPIKey: "r"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"description", "language", "embeddings"} {
		if _, ok := m[key]; ok {
			t.Errorf("optional %q should be omitted when empty: %s", key, out)
		}
	}
}

func TestExistingCollection_Decode(t *testing.T) {
	wire := `{"id":"a","description":"d","document_count":12,"fields":{"title":{"Scalar":"string"}}}`
	var col ExistingCollection
	if err := json.Unmarshal([]byte(wire), &col); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if col.ID != "a" || col.Description != "d" || col.DocumentCount != 12 {
		t.Errorf("col = %+v", col)
	}
}

func TestEmbeddingModel_Verbatim(t *testing.T) {
	models := map[EmbeddingModel]string{
		EmbeddingModelE5MultilangualSmall: "E5MultilangualSmall",
		EmbeddingModelE5MultilangualBase:  "E5MultilangualBase",
		EmbeddingModelE5MultilangualLarge: "E5MultilangualLarge",
		EmbeddingModelBGESmall:            "BGESmall",
		EmbeddingModelBGEBase:             "BGEBase",
		EmbeddingModelBGELarge:            "BGELarge",
	}
	for model, want := range models {
		out, err := json.Marshal(model)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(out) != `"`+want+`"` {
			t.Errorf("marshal = %s, want %q", out, want)
		}
	}
}
