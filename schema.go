package oramacore

import (
	"fmt"
	"reflect"
	"strings"
)

const tagKey = "orama"

// schemaMeta holds parsed struct tag metadata, cached per TypedCollection.
type schemaMeta struct {
	typ reflect.Type

	// Field index in the struct holding the document id.
	idIdx  int
	idName string

	// All fields that travel in the document, id included.
	mapped []fieldMapping

	// Document fields the service should embed.
	embeddingFields []string
}

type fieldMapping struct {
	structIdx int
	name      string
	kind      string // "", "id", "string", "number", "embedding"
}

// parseSchema reflects on T and extracts orama struct tag metadata.
func parseSchema[T any]() (*schemaMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("oramacore: type %v is not a struct", t)
	}

	meta := &schemaMeta{typ: t, idIdx: -1}

	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		if err := applyTag(meta, i, f, tag); err != nil {
			return nil, err
		}
	}

	if meta.idIdx == -1 {
		return nil, fmt.Errorf("oramacore: no field with `orama:\"...,id\"` tag in %s", t)
	}
	return meta, nil
}

// applyTag processes a single struct field's orama tag.
func applyTag(meta *schemaMeta, idx int, f reflect.StructField, tag string) error {
	parts := strings.SplitN(tag, ",", 2)
	name := parts[0]
	kind := ""
	if len(parts) == 2 {
		kind = parts[1]
	}
	if name == "" {
		name = f.Name
	}

	switch kind {
	case "id":
		if meta.idIdx != -1 {
			return fmt.Errorf("oramacore: duplicate id tag on field %s", f.Name)
		}
		if f.Type.Kind() != reflect.String {
			return fmt.Errorf("oramacore: id field %s must be a string", f.Name)
		}
		meta.idIdx = idx
		meta.idName = name
	case "string":
		if f.Type.Kind() != reflect.String {
			return fmt.Errorf("oramacore: string field %s must be a string", f.Name)
		}
	case "number":
		if !isNumeric(f.Type.Kind()) {
			return fmt.Errorf("oramacore: number field %s must be numeric", f.Name)
		}
	case "embedding":
		if f.Type.Kind() != reflect.String {
			return fmt.Errorf("oramacore: embedding field %s must be a string", f.Name)
		}
		meta.embeddingFields = append(meta.embeddingFields, name)
	case "":
		// Mapped name only, stored as-is.
	default:
		return fmt.Errorf("oramacore: unknown kind %q on field %s", kind, f.Name)
	}

	meta.mapped = append(meta.mapped, fieldMapping{structIdx: idx, name: name, kind: kind})
	return nil
}

// collectionParams builds creation params from parsed schema.
func (m *schemaMeta) collectionParams(collection string) NewCollectionParams {
	p := NewCollectionParams{ID: collection}
	if len(m.embeddingFields) > 0 {
		p.Embeddings = &EmbeddingsConfig{DocumentFields: m.embeddingFields}
	}
	return p
}

// toDocument converts a typed struct to a Document using schema metadata.
func (m *schemaMeta) toDocument(item any) Document {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	doc := make(Document, len(m.mapped))
	for _, fm := range m.mapped {
		fv := v.Field(fm.structIdx)
		switch fm.kind {
		case "number":
			doc[fm.name] = toFloat64(fv)
		default:
			doc[fm.name] = fv.Interface()
		}
	}
	return doc
}

// itemID extracts the document id from a typed struct.
func (m *schemaMeta) itemID(item any) string {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v.Field(m.idIdx).String()
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return 0
	}
}
