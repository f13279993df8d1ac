package oramacore

// NewCollectionParams describes a collection to create. ID is required;
// CreateCollection fills in every omitted field before sending.
type NewCollectionParams struct {
	ID          string            `json:"id"`
	Description string            `json:"description,omitempty"`
	WriteAPIKey string            `json:"write_api_key"`
	ReadAPIKey  string            `json:"read_api_key"`
	Language    Language          `json:"language,omitempty"`
	Embeddings  *EmbeddingsConfig `json:"embeddings,omitempty"`
}

// NewCollectionResponse carries the effective parameters of a created
// collection, including any keys the Manager generated. Keep the keys: the
// service does not return them again.
type NewCollectionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	WriteAPIKey string `json:"write_api_key"`
	ReadAPIKey  string `json:"read_api_key"`
}

// ExistingCollection is collection metadata as reported by the service.
type ExistingCollection struct {
	ID            string               `json:"id"`
	Description   string               `json:"description,omitempty"`
	DocumentCount int                  `json:"document_count"`
	Fields        map[string]FieldType `json:"fields"`
}

// Document is a schemaless JSON document. By convention the "id" key holds
// the caller-assigned identifier; the client does not enforce it.
type Document map[string]any
