package oramacore

import (
	"encoding/json"
	"fmt"
)

// ScalarType is the declared type of a plain collection field.
type ScalarType string

// Scalar field types.
const (
	ScalarString ScalarType = "string"
	ScalarNumber ScalarType = "number"
)

// ComplexType is the declared type of a structured collection field.
type ComplexType string

// Complex field types.
const (
	ComplexEmbedding ComplexType = "embedding"
)

// FieldType is the declared type of one collection field as reported by the
// service. Exactly one of Scalar or Complex is set.
//
// Wire encoding is a single-key object naming the variant:
//
//	{"Scalar":"string"}
//	{"Scalar":"number"}
//	{"Complex":"embedding"}
type FieldType struct {
	Scalar  ScalarType
	Complex ComplexType
}

// ScalarField returns a FieldType for a scalar field.
func ScalarField(t ScalarType) FieldType { return FieldType{Scalar: t} }

// ComplexField returns a FieldType for a complex field.
func ComplexField(t ComplexType) FieldType { return FieldType{Complex: t} }

// String returns the bare kind name ("string", "number", "embedding").
func (f FieldType) String() string {
	switch {
	case f.Scalar != "":
		return string(f.Scalar)
	case f.Complex != "":
		return string(f.Complex)
	default:
		return "invalid"
	}
}

// MarshalJSON encodes the variant as its single-key wrapper object.
func (f FieldType) MarshalJSON() ([]byte, error) {
	switch {
	case f.Scalar != "" && f.Complex != "":
		return nil, fmt.Errorf("field type: both Scalar and Complex set")
	case f.Scalar == ScalarString, f.Scalar == ScalarNumber:
		return json.Marshal(map[string]ScalarType{"Scalar": f.Scalar})
	case f.Scalar != "":
		return nil, fmt.Errorf("field type: unknown scalar type %q", f.Scalar)
	case f.Complex == ComplexEmbedding:
		return json.Marshal(map[string]ComplexType{"Complex": f.Complex})
	case f.Complex != "":
		return nil, fmt.Errorf("field type: unknown complex type %q", f.Complex)
	default:
		return nil, fmt.Errorf("field type: neither Scalar nor Complex set")
	}
}

// UnmarshalJSON decodes the single-key wrapper object, rejecting unknown
// variants and kinds so malformed schemas fail loudly instead of decoding
// to a zero value.
func (f *FieldType) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("field type: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("field type: want exactly one variant key, got %d", len(raw))
	}
	for variant, kind := range raw {
		switch variant {
		case "Scalar":
			st := ScalarType(kind)
			if st != ScalarString && st != ScalarNumber {
				return fmt.Errorf("field type: unknown scalar type %q", kind)
			}
			*f = FieldType{Scalar: st}
		case "Complex":
			ct := ComplexType(kind)
			if ct != ComplexEmbedding {
				return fmt.Errorf("field type: unknown complex type %q", kind)
			}
			*f = FieldType{Complex: ct}
		default:
			return fmt.Errorf("field type: unknown variant %q", variant)
		}
	}
	return nil
}
