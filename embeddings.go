package oramacore

// EmbeddingModel identifies a server-side embedding model. Values are the
// service's own identifiers and travel on the wire verbatim.
type EmbeddingModel string

// Embedding models offered by the service.
const (
	EmbeddingModelE5MultilangualSmall EmbeddingModel = "E5MultilangualSmall"
	EmbeddingModelE5MultilangualBase  EmbeddingModel = "E5MultilangualBase"
	EmbeddingModelE5MultilangualLarge EmbeddingModel = "E5MultilangualLarge"
	EmbeddingModelBGESmall            EmbeddingModel = "BGESmall"
	EmbeddingModelBGEBase             EmbeddingModel = "BGEBase"
	EmbeddingModelBGELarge            EmbeddingModel = "BGELarge"
)

// EmbeddingsConfig declares which document fields the service embeds on
// insert and with which model. Omitted fields fall back to service defaults.
type EmbeddingsConfig struct {
	Model          EmbeddingModel `json:"model,omitempty"`
	DocumentFields []string       `json:"document_fields,omitempty"`
}
