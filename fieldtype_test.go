package oramacore

import (
	"encoding/json"
	"testing"
)

func TestFieldType_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		wire string
	}{
		{"scalar string", `{"Scalar":"string"}`},
		{"scalar number", `{"Scalar":"number"}`},
		{"complex embedding", `{"Complex":"embedding"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FieldType
			if err := json.Unmarshal([]byte(tc.wire), &ft); err != nil {
				t.Fatalf("decode: %v", err)
			}
			out, err := json.Marshal(ft)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if string(out) != tc.wire {
				t.Errorf("round trip = %s, want %s", out, tc.wire)
			}
		})
	}
}

func TestFieldType_Decode(t *testing.T) {
	var ft FieldType
	if err := json.Unmarshal([]byte(`{"Scalar":"number"}`), &ft); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ft.Scalar != ScalarNumber {
		t.Errorf("Scalar = %q, want number", ft.Scalar)
	}
	if ft.Complex != "" {
		t.Errorf("Complex = %q, want empty", ft.Complex)
	}
}

func TestFieldType_DecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		wire string
	}{
		{"unknown variant", `{"Vector":"f32"}`},
		{"unknown scalar kind", `{"Scalar":"boolean"}`},
		{"unknown complex kind", `{"Complex":"geo"}`},
		{"two variants", `{"Scalar":"string","Complex":"embedding"}`},
		{"empty object", `{}`},
		{"not an object", `"string"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FieldType
			if err := json.Unmarshal([]byte(tc.wire), &ft); err == nil {
				t.Errorf("decoded %s into %+v, want error", tc.wire, ft)
			}
		})
	}
}

func TestFieldType_MarshalErrors(t *testing.T) {
	cases := []struct {
		name string
		ft   FieldType
	}{
		{"empty", FieldType{}},
		{"both set", FieldType{Scalar: ScalarString, Complex: ComplexEmbedding}},
		{"bad scalar", FieldType{Scalar: "boolean"}},
		{"bad complex", FieldType{Complex: "geo"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if out, err := json.Marshal(tc.ft); err == nil {
				t.Errorf("marshaled %+v to %s, want error", tc.ft, out)
			}
		})
	}
}

func TestFieldType_Constructors(t *testing.T) {
	s := ScalarField(ScalarString)
	if s.Scalar != ScalarString || s.Complex != "" {
		t.Errorf("ScalarField = %+v", s)
	}
	c := ComplexField(ComplexEmbedding)
	if c.Complex != ComplexEmbedding || c.Scalar != "" {
		t.Errorf("ComplexField = %+v", c)
	}
}

func TestFieldType_String(t *testing.T) {
	cases := []struct {
		ft   FieldType
		want string
	}{
		{ScalarField(ScalarString), "string"},
		{ScalarField(ScalarNumber), "number"},
		{ComplexField(ComplexEmbedding), "embedding"},
		{FieldType{}, "invalid"},
	}
	for _, tc := range cases {
		if got := tc.ft.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFieldType_InsideCollection(t *testing.T) {
	wire := `{"id":"docs-1","document_count":3,"fields":{"title":{"Scalar":"string"},"year":{"Scalar":"number"},"vec":{"Complex":"embedding"}}}`
	var col ExistingCollection
	if err := json.Unmarshal([]byte(wire), &col); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(col.Fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(col.Fields))
	}
	if col.Fields["year"].Scalar != ScalarNumber {
		t.Errorf("year = %+v, want scalar number", col.Fields["year"])
	}
	if col.Fields["vec"].Complex != ComplexEmbedding {
		t.Errorf("vec = %+v, want embedding", col.Fields["vec"])
	}
}
